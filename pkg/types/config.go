// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CaseConfig holds the default styles used when a command or job item does
// not name its own.
type CaseConfig struct {
	// From is the source style identifier (default "human").
	From string `json:"from" yaml:"from" mapstructure:"from"`

	// To is the target style identifier (default "snake").
	To string `json:"to" yaml:"to" mapstructure:"to"`

	// Strict turns unknown styles into errors instead of passing input through.
	Strict bool `json:"strict" yaml:"strict" mapstructure:"strict"`
}

// HistoryConfig holds settings for the conversion journal.
type HistoryConfig struct {
	// Enabled records every CLI conversion in the journal.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Dir is the directory holding history.db (default ".convert-case").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default number of entries returned by queries (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// AppConfig groups all configuration read from convert-case.yaml.
type AppConfig struct {
	Case    CaseConfig    `json:"case" yaml:"case" mapstructure:"case"`
	History HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`
}

const (
	DefaultFrom       = "human"
	DefaultTo         = "snake"
	DefaultHistoryDir = ".convert-case"
	DefaultMaxResults = 20
)

// DefaultAppConfig returns the configuration used when no file or
// environment overrides are present.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Case: CaseConfig{From: DefaultFrom, To: DefaultTo},
		History: HistoryConfig{
			Dir:        DefaultHistoryDir,
			MaxResults: DefaultMaxResults,
		},
	}
}
