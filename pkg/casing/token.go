// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package casing

// Token is one element of the style-neutral intermediate form produced by
// Tokenize. It is either a Delimiter or a Character.
type Token interface {
	isToken()
}

// Delimiter marks a word boundary, explicit or implied by an upper-case letter.
type Delimiter struct{}

// Character carries one input character exactly as it was typed. A byte that
// is not valid UTF-8 is kept in Raw and written back without case mapping.
type Character struct {
	Value rune
	Raw   string
}

func (Delimiter) isToken() {}
func (Character) isToken() {}
