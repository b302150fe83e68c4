/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package reader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/innovexadevelopment/admin-panel-sub000/datastore"
	"github.com/innovexadevelopment/admin-panel-sub000/errors"
	"github.com/innovexadevelopment/admin-panel-sub000/storagemodels"
)

// Reader reads whole tables through a backend that caps rows per request.
// A Reader holds no per-call state and is safe for concurrent use.
type Reader struct {
	backend  datastore.Backend
	logger   *zap.Logger
	defaults storagemodels.FetchOptions
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithDefaults sets read options applied before per-call options.
func WithDefaults(opts ...storagemodels.FetchOption) Option {
	return func(r *Reader) {
		for _, o := range opts {
			o(&r.defaults)
		}
	}
}

// New creates a Reader over backend.
func New(backend datastore.Backend, opts ...Option) *Reader {
	r := &Reader{
		backend:  backend,
		logger:   zap.NewNop(),
		defaults: storagemodels.DefaultFetchOptions(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// FetchAll returns every row of table. It never panics and never returns a
// partial table as a success: any page failure yields nil rows and the error.
// A failed count only costs the total; the short-page rule still ends the read.
func (r *Reader) FetchAll(ctx context.Context, table string, opts ...storagemodels.FetchOption) (res storagemodels.FetchResult) {
	o := r.defaults
	for _, opt := range opts {
		opt(&o)
	}

	log := r.logger.With(
		zap.String("fetch_id", uuid.NewString()),
		zap.String("table", table),
	)

	defer func() {
		if p := recover(); p != nil {
			log.Error("fetch panicked", zap.Any("panic", p))
			res = storagemodels.FetchResult{
				Error:      &storagemodels.ErrorInfo{Message: fmt.Sprint(p), Code: errors.CodePanic},
				TotalCount: res.TotalCount,
				Pages:      res.Pages,
			}
		}
	}()

	if table == "" {
		return storagemodels.FetchResult{Error: errors.Info(errors.NewValidationError("table", "table name is required"))}
	}

	total, err := r.backend.Count(ctx, table)
	if err != nil {
		log.Warn("count query failed, reading until a short page", zap.Error(err))
		total = nil
	}
	res.TotalCount = total

	pageSize := int64(o.MaxPageSize)
	if total != nil && *total > 0 && *total < pageSize {
		pageSize = *total
	}

	acc := make([]storagemodels.Row, 0, initialCap(total, o))
	for page := 0; ; page++ {
		if page >= o.MaxPages {
			if total == nil && !r.rowAt(ctx, log, table, int64(page)*pageSize) {
				break
			}
			res.Truncated = true
			log.Warn("page ceiling reached, returning degraded result",
				zap.Int("pages", page),
				zap.Int("rows", len(acc)),
				zap.Int64p("total_count", total),
			)
			break
		}

		q := storagemodels.RangeQuery{
			Table:     table,
			OrderBy:   o.OrderBy,
			Direction: o.Direction,
			Start:     int64(page) * pageSize,
			End:       int64(page+1)*pageSize - 1,
		}
		res.Pages++
		p, err := r.fetchPage(ctx, q, pageSize)
		if err != nil {
			log.Error("page query failed",
				zap.Int("page", page),
				zap.Int64("start", q.Start),
				zap.Int64("end", q.End),
				zap.Error(err),
			)
			return storagemodels.FetchResult{
				Error:      errors.Info(err),
				TotalCount: total,
				Pages:      res.Pages,
			}
		}
		acc = append(acc, p.Rows...)

		if !p.HasMore {
			break
		}
		if total != nil && int64(len(acc)) >= *total {
			break
		}
	}

	if o.OrderBy != "" {
		storagemodels.SortRows(acc, o.OrderBy, o.Direction)
	}

	if total != nil && int64(len(acc)) != *total && !res.Truncated {
		log.Warn("row count differs from reported total",
			zap.Int("rows", len(acc)),
			zap.Int64("total_count", *total),
		)
	}
	log.Debug("fetch complete",
		zap.Int("rows", len(acc)),
		zap.Int("pages", res.Pages),
		zap.Bool("truncated", res.Truncated),
	)

	res.Rows = acc
	return res
}

// fetchPage runs one ranged query. A page is full, and more may follow, only
// when it holds exactly pageSize rows.
func (r *Reader) fetchPage(ctx context.Context, q storagemodels.RangeQuery, pageSize int64) (storagemodels.PageResult, error) {
	if err := ctx.Err(); err != nil {
		return storagemodels.PageResult{}, errors.NewBackendError("range", q.Table, "", err)
	}
	rows, err := r.backend.Range(ctx, q)
	if err != nil {
		return storagemodels.PageResult{}, err
	}
	return storagemodels.PageResult{
		Rows:    rows,
		HasMore: int64(len(rows)) == pageSize,
	}, nil
}

// rowAt reports whether table has a row at offset. With no count to compare
// against, this tells a complete read of exactly MaxPages full pages apart from
// a truncated one. A failed check counts as more rows.
func (r *Reader) rowAt(ctx context.Context, log *zap.Logger, table string, offset int64) bool {
	p, err := r.fetchPage(ctx, storagemodels.RangeQuery{Table: table, Start: offset, End: offset}, 1)
	if err != nil {
		log.Warn("page ceiling check failed", zap.Int64("start", offset), zap.Error(err))
		return true
	}
	return len(p.Rows) > 0
}

func initialCap(total *int64, o storagemodels.FetchOptions) int {
	if total == nil || *total <= 0 {
		return 0
	}
	limit := int64(o.MaxPageSize) * int64(o.MaxPages)
	if *total > limit {
		return int(limit)
	}
	return int(*total)
}
