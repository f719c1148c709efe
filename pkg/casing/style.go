// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package casing

// Style identifies a capitalization style. The zero value is not a valid style.
type Style uint8

const (
	Human Style = iota + 1
	Camel
	Snake
	Kebab
	Upper
	Pascal

	numStyles
)

// StyleRule describes how a style joins words and which characters it
// upper-cases. Delimiter is empty or exactly one character.
type StyleRule struct {
	CapitalizeFirst bool
	CapitalizeRest  bool
	CapitalizeAll   bool
	Delimiter       string
}

var styleNames = [numStyles]string{
	Human:  "human",
	Camel:  "camel",
	Snake:  "snake",
	Kebab:  "kebab",
	Upper:  "upper",
	Pascal: "pascal",
}

var styleTable = [numStyles]StyleRule{
	Human:  {Delimiter: " "},
	Camel:  {CapitalizeRest: true},
	Snake:  {Delimiter: "_"},
	Kebab:  {Delimiter: "-"},
	Upper:  {CapitalizeAll: true, Delimiter: "_"},
	Pascal: {CapitalizeFirst: true, CapitalizeRest: true},
}

// Styles returns every supported style in table order.
func Styles() []Style {
	out := make([]Style, 0, numStyles-1)
	for s := Human; s < numStyles; s++ {
		out = append(out, s)
	}
	return out
}

// ParseStyle looks up a style identifier. Matching is exact: "Human" is not
// a style.
func ParseStyle(name string) (Style, bool) {
	for s := Human; s < numStyles; s++ {
		if styleNames[s] == name {
			return s, true
		}
	}
	return 0, false
}

// Valid reports whether s is one of the six known styles.
func (s Style) Valid() bool {
	return s >= Human && s < numStyles
}

// Rule returns the rendering rule for s and whether s is known.
func (s Style) Rule() (StyleRule, bool) {
	if !s.Valid() {
		return StyleRule{}, false
	}
	return styleTable[s], true
}

// String returns the style identifier, or "" for an invalid style.
func (s Style) String() string {
	if !s.Valid() {
		return ""
	}
	return styleNames[s]
}
