// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/convert-case/pkg/types"
)

// JobFile is the on-disk description of a batch conversion.
//
//	defaults:
//	  from: camel
//	  to: snake
//	items:
//	  - input: userId
//	  - input: user id
//	    from: human
type JobFile struct {
	Defaults types.CaseConfig `yaml:"defaults"`
	Items    []types.Item     `yaml:"items"`
}

// Report is the on-disk record of a finished job.
type Report struct {
	Defaults types.CaseConfig   `yaml:"defaults"`
	Results  []types.ItemResult `yaml:"results"`
	Summary  ReportSummary      `yaml:"summary"`
}

// ReportSummary stores result counts and a timestamp.
type ReportSummary struct {
	Total     int       `yaml:"total"`
	Converted int       `yaml:"converted"`
	Unchanged int       `yaml:"unchanged"`
	Failed    int       `yaml:"failed"`
	Timestamp time.Time `yaml:"timestamp"`
}

// ReadJobFile loads a job file from disk.
func ReadJobFile(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var jf JobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}
	return &jf, nil
}

// RunJob converts every item in jf. Defaults missing from the job file are
// taken from fallback. The job's Strict flag is honored in addition to the
// strict argument.
func RunJob(jf *JobFile, fallback types.CaseConfig, strict bool, w io.Writer) Report {
	defaults := jf.Defaults
	if defaults.From == "" {
		defaults.From = fallback.From
	}
	if defaults.To == "" {
		defaults.To = fallback.To
	}
	defaults.Strict = defaults.Strict || strict

	results, summary := ConvertBatch(ForMode(defaults.Strict), jf.Items, defaults, w)
	return Report{
		Defaults: defaults,
		Results:  results,
		Summary: ReportSummary{
			Total:     summary.Total(),
			Converted: summary.Converted,
			Unchanged: summary.Unchanged,
			Failed:    summary.Failed,
			Timestamp: time.Now().UTC(),
		},
	}
}

// WriteReport saves a job report as YAML.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
