// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package casing

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenize splits input into Delimiter and Character tokens according to the
// source rule. In delimiter-less styles every upper-case character after the
// first input position opens a new word. Runs of delimiters are kept as is.
// Bytes that are not valid UTF-8 become Characters that render unchanged.
func Tokenize(input string, rule StyleRule) []Token {
	f := newFolder()
	tokens := make([]Token, 0, len(input))
	for i, pos := 0, 0; pos < len(input); i++ {
		c, size := utf8.DecodeRuneInString(input[pos:])
		switch {
		case c == utf8.RuneError && size == 1:
			tokens = append(tokens, Character{Value: c, Raw: input[pos : pos+1]})
		case rule.Delimiter != "" && string(c) == rule.Delimiter:
			tokens = append(tokens, Delimiter{})
		default:
			if i != 0 && rule.Delimiter == "" && f.isUpper(c) {
				tokens = append(tokens, Delimiter{})
			}
			tokens = append(tokens, Character{Value: c})
		}
		pos += size
	}
	return tokens
}

// folder applies full Unicode case mappings to single characters. A Caser
// keeps state between calls, so each conversion builds its own.
type folder struct {
	upper cases.Caser
	lower cases.Caser
}

func newFolder() *folder {
	return &folder{
		upper: cases.Upper(language.Und),
		lower: cases.Lower(language.Und),
	}
}

func (f *folder) toUpper(c rune) string {
	return f.upper.String(string(c))
}

func (f *folder) toLower(c rune) string {
	return f.lower.String(string(c))
}

// isUpper reports whether c has distinct case forms and is already upper case.
func (f *folder) isUpper(c rune) bool {
	s := string(c)
	up := f.toUpper(c)
	return up != f.toLower(c) && s == up
}
