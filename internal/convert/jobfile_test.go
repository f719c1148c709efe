// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/convert-case/pkg/types"
)

func writeJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadJobFile(t *testing.T) {
	path := writeJob(t, `
defaults:
  from: camel
  to: kebab
items:
  - input: userId
  - input: user name
    from: human
    to: pascal
`)
	jf, err := ReadJobFile(path)
	require.NoError(t, err)

	assert.Equal(t, "camel", jf.Defaults.From)
	assert.Equal(t, "kebab", jf.Defaults.To)
	require.Len(t, jf.Items, 2)
	assert.Equal(t, types.Item{Input: "user name", From: "human", To: "pascal"}, jf.Items[1])
}

func TestReadJobFile_Errors(t *testing.T) {
	_, err := ReadJobFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading job file")

	_, err = ReadJobFile(writeJob(t, "items: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing job file")
}

func TestRunJob(t *testing.T) {
	jf := &JobFile{
		Defaults: types.CaseConfig{From: "camel"},
		Items: []types.Item{
			{Input: "userId"},
			{Input: "user name", From: "human", To: "pascal"},
			{Input: "x", To: "unknown"},
		},
	}

	var log bytes.Buffer
	report := RunJob(jf, types.CaseConfig{From: "human", To: "upper"}, false, &log)

	assert.Equal(t, "camel", report.Defaults.From)
	assert.Equal(t, "upper", report.Defaults.To)
	require.Len(t, report.Results, 3)
	assert.Equal(t, "USER_ID", report.Results[0].Output)
	assert.Equal(t, "UserName", report.Results[1].Output)
	assert.Equal(t, types.ConversionUnchanged, report.Results[2].Status)
	assert.Equal(t, 3, report.Summary.Total)
	assert.Equal(t, 2, report.Summary.Converted)
	assert.False(t, report.Summary.Timestamp.IsZero())
}

func TestRunJob_StrictFromFile(t *testing.T) {
	jf := &JobFile{
		Defaults: types.CaseConfig{From: "human", To: "snake", Strict: true},
		Items:    []types.Item{{Input: "x", To: "unknown"}},
	}
	report := RunJob(jf, types.CaseConfig{}, false, &bytes.Buffer{})
	assert.Equal(t, 1, report.Summary.Failed)
}

func TestWriteReport(t *testing.T) {
	jf := &JobFile{Items: []types.Item{{Input: "hello world"}}}
	report := RunJob(jf, types.CaseConfig{From: "human", To: "kebab"}, false, &bytes.Buffer{})

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, WriteReport(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Len(t, got.Results, 1)
	assert.Equal(t, "hello-world", got.Results[0].Output)
	assert.Equal(t, types.ConversionDone, got.Results[0].Status)
	assert.Equal(t, 1, got.Summary.Converted)
}
