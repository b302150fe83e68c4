/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// Row is one record of an arbitrary table. No fixed schema.
type Row map[string]any

// Direction is the sort direction applied to an order column.
type Direction int

const (
	// Ascending is the default direction.
	Ascending Direction = iota
	// Descending inverts the comparison of non-nil values.
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// RangeQuery defines one ranged select against a table.
// Start and End are zero-based and inclusive, so a query for rows 0..999
// returns at most 1000 rows.
type RangeQuery struct {
	// Table is the physical table name.
	Table string
	// OrderBy is the optional order column. Empty means backend order.
	OrderBy string
	// Direction applies to OrderBy.
	Direction Direction
	// Start is the first row offset (inclusive).
	Start int64
	// End is the last row offset (inclusive).
	End int64
}

// Limit returns the number of rows the range spans.
func (q RangeQuery) Limit() int64 {
	if q.End < q.Start {
		return 0
	}
	return q.End - q.Start + 1
}

// PageResult is one ranged fetch.
type PageResult struct {
	Rows []Row
	// HasMore is true when the page came back full and another page may exist.
	HasMore bool
}

// ErrorInfo is the caller-facing error shape: the raw message plus an
// optional implementation-defined code.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (e *ErrorInfo) Error() string {
	return e.Message
}

// FetchResult is the outcome of an exhaustive table read.
type FetchResult struct {
	// Rows is nil on failure and an empty, non-nil slice for an empty table.
	Rows []Row `json:"rows"`
	// Error is nil on success.
	Error *ErrorInfo `json:"error,omitempty"`
	// TotalCount is the backend-reported row count, nil when unknown.
	TotalCount *int64 `json:"total_count"`
	// Pages is the number of ranged queries issued.
	Pages int `json:"pages"`
	// Truncated is set when the page ceiling stopped the read before the
	// table was exhausted.
	Truncated bool `json:"truncated"`
}

// OK reports whether the read succeeded.
func (r FetchResult) OK() bool {
	return r.Error == nil && r.Rows != nil
}
