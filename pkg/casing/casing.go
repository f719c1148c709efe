// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package casing converts strings between capitalization styles: human
// ("aaa bbb"), camel ("aaaBbb"), snake ("aaa_bbb"), kebab ("aaa-bbb"),
// upper ("AAA_BBB") and pascal ("AaaBbb").
//
// Conversion is two pure steps. Tokenize reads the input under the source
// style and produces Delimiter and Character tokens; Render writes those
// tokens out under the target style. Convert and ConvertValue never fail: an
// unknown style or a non-string input comes back unchanged. ConvertStrict
// reports unknown styles as errors instead.
//
// Input is read as UTF-8. Bytes that do not form valid UTF-8 are copied to
// the output unchanged and never start a word.
//
// All functions are safe for concurrent use.
package casing

import (
	"errors"
	"fmt"
)

// ErrUnknownStyle is returned by ConvertStrict for an unrecognized style.
var ErrUnknownStyle = errors.New("unknown style")

// Convert renders input, written in the source style, in the target style.
// If either style is unknown the input is returned unchanged.
func Convert(input, source, target string) string {
	from, ok := ruleFor(source)
	if !ok {
		return input
	}
	to, ok := ruleFor(target)
	if !ok {
		return input
	}
	return Render(Tokenize(input, from), to)
}

// ConvertValue is Convert for callers holding an untyped value. Anything
// other than a string, nil included, is returned as is.
func ConvertValue(input any, source, target string) any {
	s, ok := input.(string)
	if !ok {
		return input
	}
	return Convert(s, source, target)
}

// ConvertStrict behaves like Convert but returns an error wrapping
// ErrUnknownStyle when either style is not recognized.
func ConvertStrict(input, source, target string) (string, error) {
	from, ok := ruleFor(source)
	if !ok {
		return "", fmt.Errorf("source style %q: %w", source, ErrUnknownStyle)
	}
	to, ok := ruleFor(target)
	if !ok {
		return "", fmt.Errorf("target style %q: %w", target, ErrUnknownStyle)
	}
	return Render(Tokenize(input, from), to), nil
}

func ruleFor(name string) (StyleRule, bool) {
	s, ok := ParseStyle(name)
	if !ok {
		return StyleRule{}, false
	}
	return s.Rule()
}
