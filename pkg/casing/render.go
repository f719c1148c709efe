// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package casing

import "strings"

// Render joins tokens under the target rule. Position checks use the index in
// the token slice, so a leading Delimiter keeps CapitalizeFirst from applying
// to the first character.
func Render(tokens []Token, rule StyleRule) string {
	f := newFolder()
	var b strings.Builder
	b.Grow(len(tokens))
	for i, tok := range tokens {
		switch t := tok.(type) {
		case Delimiter:
			b.WriteString(rule.Delimiter)
		case Character:
			if t.Raw != "" {
				b.WriteString(t.Raw)
			} else if shouldUpper(tokens, i, rule) {
				b.WriteString(f.toUpper(t.Value))
			} else {
				b.WriteString(f.toLower(t.Value))
			}
		}
	}
	return b.String()
}

func shouldUpper(tokens []Token, i int, rule StyleRule) bool {
	return rule.CapitalizeAll ||
		(rule.CapitalizeFirst && i == 0) ||
		(rule.CapitalizeRest && followsDelimiter(tokens, i))
}

func followsDelimiter(tokens []Token, i int) bool {
	if i == 0 {
		return false
	}
	_, ok := tokens[i-1].(Delimiter)
	return ok
}
