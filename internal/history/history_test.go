// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/convert-case/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	cfg := types.HistoryConfig{
		Dir:        filepath.Join(t.TempDir(), "history"),
		MaxResults: 20,
	}
	store, err := NewStore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return store
}

func seed(t *testing.T, s *Store) {
	t.Helper()
	entries := []types.Entry{
		{Input: "user id", Output: "user_id", From: "human", To: "snake"},
		{Input: "userId", Output: "user-id", From: "camel", To: "kebab"},
		{Input: "order total", Output: "OrderTotal", From: "human", To: "pascal"},
	}
	for _, e := range entries {
		_, err := s.Record(context.Background(), e)
		require.NoError(t, err)
	}
}

// --- tests ---

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	store, err := NewStore(types.HistoryConfig{Dir: dir})
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, filepath.Join(dir, dbFile))
	assert.Equal(t, dir, store.Dir())
	assert.Equal(t, types.DefaultMaxResults, store.maxResults)

	// Reopening an existing database keeps the schema.
	again, err := NewStore(types.HistoryConfig{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestRecordAndRecent(t *testing.T) {
	s := testStore(t)
	seed(t, s)

	entries, err := s.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "order total", entries[0].Input)
	assert.Equal(t, "userId", entries[1].Input)
	assert.True(t, entries[0].CreatedAt.After(entries[1].CreatedAt))

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRecord_KeepsExplicitTimestamp(t *testing.T) {
	s := testStore(t)
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	id, err := s.Record(context.Background(), types.Entry{Input: "a", Output: "A", From: "human", To: "upper", CreatedAt: at})
	require.NoError(t, err)

	entries, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].ID)
	assert.True(t, at.Equal(entries[0].CreatedAt))
}

func TestRecordAll(t *testing.T) {
	s := testStore(t)
	err := s.RecordAll(context.Background(), []types.Entry{
		{Input: "a b", Output: "a_b", From: "human", To: "snake"},
		{Input: "c d", Output: "c_d", From: "human", To: "snake"},
	})
	require.NoError(t, err)

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSearch(t *testing.T) {
	s := testStore(t)
	seed(t, s)

	tests := []struct {
		name string
		opts QueryOptions
		want []string
	}{
		{"text matches input", QueryOptions{Text: "order"}, []string{"order total"}},
		{"text matches output", QueryOptions{Text: "user-id"}, []string{"userId"}},
		{"text is case sensitive", QueryOptions{Text: "USER"}, nil},
		{"from filter", QueryOptions{From: "human"}, []string{"order total", "user id"}},
		{"to filter", QueryOptions{To: "kebab"}, []string{"userId"}},
		{"combined", QueryOptions{Text: "user", From: "human"}, []string{"user id"}},
		{"limit", QueryOptions{MaxResults: 1}, []string{"order total"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := s.Search(context.Background(), tt.opts)
			require.NoError(t, err)
			var got []string
			for _, e := range entries {
				got = append(got, e.Input)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryOptions_IsEmpty(t *testing.T) {
	assert.True(t, QueryOptions{MaxResults: 5}.IsEmpty())
	assert.False(t, QueryOptions{Text: "x"}.IsEmpty())
	assert.False(t, QueryOptions{To: "snake"}.IsEmpty())
}

func TestClear(t *testing.T) {
	s := testStore(t)
	seed(t, s)

	removed, err := s.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestExportJSON(t *testing.T) {
	s := testStore(t)
	seed(t, s)

	var buf bytes.Buffer
	require.NoError(t, s.ExportJSON(context.Background(), &buf, QueryOptions{From: "human"}))

	var got []types.Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "OrderTotal", got[0].Output)
}

func TestExportYAML(t *testing.T) {
	s := testStore(t)
	seed(t, s)

	var buf bytes.Buffer
	require.NoError(t, s.ExportYAML(context.Background(), &buf, QueryOptions{}))

	var got []types.Entry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "user_id", got[2].Output)
}

func TestExportJSON_Empty(t *testing.T) {
	s := testStore(t)

	var buf bytes.Buffer
	require.NoError(t, s.ExportJSON(context.Background(), &buf, QueryOptions{}))
	assert.Equal(t, "[]\n", buf.String())
}
