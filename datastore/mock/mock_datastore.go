/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.Backend for testing
package mock

import (
	"context"
	"sync"

	"github.com/innovexadevelopment/admin-panel-sub000/errors"
	"github.com/innovexadevelopment/admin-panel-sub000/storagemodels"
)

// Backend is an in-memory datastore.Backend. Like a hosted backend it caps
// every ranged request at a fixed number of rows.
type Backend struct {
	mu            sync.RWMutex
	tables        map[string][]storagemodels.Row
	maxRows       int
	pageLocal     bool
	counts        map[string]*int64
	countError    error
	rangeError    error
	rangeErrAfter int
	countCalls    int
	queries       []storagemodels.RangeQuery
}

// New creates a new mock Backend that returns at most maxRows rows per Range call.
// A non-positive maxRows means no ceiling.
func New(maxRows int) *Backend {
	return &Backend{
		tables:  make(map[string][]storagemodels.Row),
		maxRows: maxRows,
		counts:  make(map[string]*int64),
	}
}

// WithTable stores rows for table in the given order
func (m *Backend) WithTable(table string, rows []storagemodels.Row) *Backend {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]storagemodels.Row, len(rows))
	copy(cp, rows)
	m.tables[table] = cp
	return m
}

// WithCount makes Count report n for table regardless of its contents.
func (m *Backend) WithCount(table string, n int64) *Backend {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[table] = &n
	return m
}

// WithUnknownCount makes Count answer nil without an error for table.
func (m *Backend) WithUnknownCount(table string) *Backend {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[table] = nil
	return m
}

// WithCountError makes Count operations return an error
func (m *Backend) WithCountError(err error) *Backend {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countError = err
	return m
}

// WithRangeErrorAfter makes Range succeed n times, then return err.
func (m *Backend) WithRangeErrorAfter(n int, err error) *Backend {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rangeErrAfter = n
	m.rangeError = err
	return m
}

// WithPageLocalOrder sorts each returned page on its own instead of sorting the
// whole table first, so concatenated pages are ordered only within a page.
func (m *Backend) WithPageLocalOrder() *Backend {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pageLocal = true
	return m
}

// Count returns the number of rows in table
func (m *Backend) Count(ctx context.Context, table string) (*int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countCalls++

	if err := ctx.Err(); err != nil {
		return nil, errors.NewBackendError("count", table, "", err)
	}
	if m.countError != nil {
		return nil, m.countError
	}
	if n, ok := m.counts[table]; ok {
		return n, nil
	}
	rows, ok := m.tables[table]
	if !ok {
		return nil, errors.NewBackendError("count", table, "42P01", errors.NewNotFoundError("table", table))
	}
	n := int64(len(rows))
	return &n, nil
}

// Range returns the rows in the window, capped at the backend ceiling
func (m *Backend) Range(ctx context.Context, q storagemodels.RangeQuery) ([]storagemodels.Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, q)

	if err := ctx.Err(); err != nil {
		return nil, errors.NewBackendError("range", q.Table, "", err)
	}
	if m.rangeError != nil && len(m.queries) > m.rangeErrAfter {
		return nil, m.rangeError
	}
	rows, ok := m.tables[q.Table]
	if !ok {
		return nil, errors.NewBackendError("range", q.Table, "42P01", errors.NewNotFoundError("table", q.Table))
	}

	src := rows
	if q.OrderBy != "" && !m.pageLocal {
		src = make([]storagemodels.Row, len(rows))
		copy(src, rows)
		storagemodels.SortRows(src, q.OrderBy, q.Direction)
	}

	limit := q.Limit()
	if m.maxRows > 0 && limit > int64(m.maxRows) {
		limit = int64(m.maxRows)
	}
	start := q.Start
	if start < 0 || start >= int64(len(src)) || limit == 0 {
		return []storagemodels.Row{}, nil
	}
	end := start + limit
	if end > int64(len(src)) {
		end = int64(len(src))
	}

	page := make([]storagemodels.Row, end-start)
	copy(page, src[start:end])
	if q.OrderBy != "" && m.pageLocal {
		storagemodels.SortRows(page, q.OrderBy, q.Direction)
	}
	return page, nil
}

// Helper methods for testing

// CountCalls returns the number of Count calls
func (m *Backend) CountCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.countCalls
}

// Queries returns a copy of every Range query received
func (m *Backend) Queries() []storagemodels.RangeQuery {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]storagemodels.RangeQuery, len(m.queries))
	copy(out, m.queries)
	return out
}

// Reset clears call counters
func (m *Backend) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countCalls = 0
	m.queries = nil
}
