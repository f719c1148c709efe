// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for convert-case: configuration,
// batch job items, and journal entries.
package types

import "time"

// ConversionStatus is the outcome of converting one item.
type ConversionStatus string

const (
	ConversionDone      ConversionStatus = "converted"
	ConversionUnchanged ConversionStatus = "unchanged"
	ConversionFailed    ConversionStatus = "failed"
)

// Item is one string to convert. Empty From or To fall back to the job defaults.
type Item struct {
	Input string `json:"input" yaml:"input"`
	From  string `json:"from,omitempty" yaml:"from,omitempty"`
	To    string `json:"to,omitempty" yaml:"to,omitempty"`
}

// ItemResult records the outcome of converting one Item.
type ItemResult struct {
	Input  string           `json:"input" yaml:"input"`
	Output string           `json:"output" yaml:"output"`
	From   string           `json:"from" yaml:"from"`
	To     string           `json:"to" yaml:"to"`
	Status ConversionStatus `json:"status" yaml:"status"`
	Error  string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// Entry is one row of the conversion journal.
type Entry struct {
	ID        int64     `json:"id" yaml:"id"`
	Input     string    `json:"input" yaml:"input"`
	Output    string    `json:"output" yaml:"output"`
	From      string    `json:"from" yaml:"from"`
	To        string    `json:"to" yaml:"to"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
