// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStyle(t *testing.T) {
	for _, name := range []string{"human", "camel", "snake", "kebab", "upper", "pascal"} {
		s, ok := ParseStyle(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, s.String())
	}
	for _, name := range []string{"", "Human", "PASCAL", "screaming", " snake"} {
		_, ok := ParseStyle(name)
		assert.False(t, ok, name)
	}
}

func TestStyles(t *testing.T) {
	got := Styles()
	assert.Equal(t, []Style{Human, Camel, Snake, Kebab, Upper, Pascal}, got)

	got[0] = Pascal
	assert.Equal(t, Human, Styles()[0], "Styles must return a copy")
}

func TestStyleRule(t *testing.T) {
	tests := []struct {
		style Style
		want  StyleRule
	}{
		{Human, StyleRule{Delimiter: " "}},
		{Camel, StyleRule{CapitalizeRest: true}},
		{Snake, StyleRule{Delimiter: "_"}},
		{Kebab, StyleRule{Delimiter: "-"}},
		{Upper, StyleRule{CapitalizeAll: true, Delimiter: "_"}},
		{Pascal, StyleRule{CapitalizeFirst: true, CapitalizeRest: true}},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			got, ok := tt.style.Rule()
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := Style(0).Rule()
	assert.False(t, ok)

	_, ok = numStyles.Rule()
	assert.False(t, ok)
}

func TestStyle_Invalid(t *testing.T) {
	var zero Style
	assert.False(t, zero.Valid())
	assert.Equal(t, "", zero.String())
	assert.False(t, numStyles.Valid())
	assert.True(t, Pascal.Valid())
}
