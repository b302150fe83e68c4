/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/innovexadevelopment/admin-panel-sub000/storagemodels"
)

// Backend is the query surface the reader consumes.
type Backend interface {
	// Count returns the number of rows in table. A nil count with a nil
	// error means the backend could not tell.
	Count(ctx context.Context, table string) (*int64, error)

	// Range returns the rows in the inclusive window [q.Start, q.End],
	// ordered by q.OrderBy when the backend supports it.
	Range(ctx context.Context, q storagemodels.RangeQuery) ([]storagemodels.Row, error)
}
