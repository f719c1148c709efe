// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/convert-case/pkg/types"
)

// QueryOptions holds parameters for journal queries.
type QueryOptions struct {
	// Text matches entries whose input or output contains it.
	Text string

	// From and To filter by style identifier.
	From string
	To   string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search text or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Text == "" && q.From == "" && q.To == ""
}

// Recent returns the newest entries first.
func (s *Store) Recent(ctx context.Context, limit int) ([]types.Entry, error) {
	return s.Search(ctx, QueryOptions{MaxResults: limit})
}

// Search returns entries matching opts, newest first.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]types.Entry, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT id, input, output, from_style, to_style, created_at
		FROM conversions WHERE 1=1`)

	if opts.Text != "" {
		qb.WriteString(` AND (instr(input, ?) > 0 OR instr(output, ?) > 0)`)
		args = append(args, opts.Text, opts.Text)
	}
	if opts.From != "" {
		qb.WriteString(` AND from_style = ?`)
		args = append(args, opts.From)
	}
	if opts.To != "" {
		qb.WriteString(` AND to_style = ?`)
		args = append(args, opts.To)
	}

	qb.WriteString(` ORDER BY id DESC LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []types.Entry
	for rows.Next() {
		var (
			e       types.Entry
			created string
		)
		if err := rows.Scan(&e.ID, &e.Input, &e.Output, &e.From, &e.To, &created); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at of entry %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of entries in the journal.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM conversions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting history: %w", err)
	}
	return n, nil
}

// Clear deletes every entry and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM conversions`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return res.RowsAffected()
}
