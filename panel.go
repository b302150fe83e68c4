/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package adminpanel

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/innovexadevelopment/admin-panel-sub000/datastore"
	"github.com/innovexadevelopment/admin-panel-sub000/errors"
	"github.com/innovexadevelopment/admin-panel-sub000/reader"
	"github.com/innovexadevelopment/admin-panel-sub000/registry"
	"github.com/innovexadevelopment/admin-panel-sub000/site"
	"github.com/innovexadevelopment/admin-panel-sub000/storagemodels"
)

// Panel serves the dashboard's list pages: it resolves the table for an
// explicit site, reads it completely and narrows shared tables to that site.
type Panel struct {
	reader *reader.Reader
	tables *registry.Registry
	logger *zap.Logger
}

type panelOptions struct {
	logger     *zap.Logger
	readerOpts []reader.Option
}

// Option configures a Panel.
type Option func(*panelOptions)

// WithLogger sets the logger used by the panel and its reader.
func WithLogger(l *zap.Logger) Option {
	return func(o *panelOptions) {
		o.logger = l
	}
}

// WithReaderOptions passes options through to the reader.
func WithReaderOptions(opts ...reader.Option) Option {
	return func(o *panelOptions) {
		o.readerOpts = append(o.readerOpts, opts...)
	}
}

// New builds a Panel. The table registry is validated first so a broken
// table map fails at startup rather than on the first page load.
func New(backend datastore.Backend, tables *registry.Registry, opts ...Option) (*Panel, error) {
	o := panelOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if backend == nil {
		return nil, errors.NewValidationError("backend", "backend is required")
	}
	if tables == nil {
		tables = registry.Default()
	}
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table map: %w", err)
	}

	readerOpts := append([]reader.Option{reader.WithLogger(o.logger)}, o.readerOpts...)
	return &Panel{
		reader: reader.New(backend, readerOpts...),
		tables: tables,
		logger: o.logger,
	}, nil
}

// Tables returns the panel's table registry.
func (p *Panel) Tables() *registry.Registry {
	return p.tables
}

// List returns every row of entity e on site s. For shared tables only rows
// whose site column matches s are kept; TotalCount is still the table's count.
func (p *Panel) List(ctx context.Context, s site.Site, e registry.Entity, opts ...storagemodels.FetchOption) storagemodels.FetchResult {
	if !s.Valid() {
		return storagemodels.FetchResult{
			Error: errors.Info(errors.NewValidationError("site", fmt.Sprintf("unknown site %q", s))),
		}
	}

	entry, err := p.tables.Lookup(s, e)
	if err != nil {
		p.logger.Warn("table lookup failed",
			zap.Stringer("site", s),
			zap.Stringer("entity", e),
			zap.Error(err),
		)
		return storagemodels.FetchResult{Error: errors.Info(err)}
	}

	res := p.reader.FetchAll(ctx, entry.Table, opts...)
	if res.Rows != nil && entry.Shared {
		res.Rows = site.FilterSite(res.Rows, s)
	}
	return res
}
