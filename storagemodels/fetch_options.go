/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// Defaults for exhaustive reads.
const (
	// DefaultMaxPageSize is the backend's per-request row ceiling.
	DefaultMaxPageSize = 1000
	// DefaultMaxPages bounds the number of ranged queries one read may issue.
	DefaultMaxPages = 100
)

// FetchOptions configures a single exhaustive read
type FetchOptions struct {
	OrderBy     string    // Optional order column
	Direction   Direction // Direction for OrderBy (default: Ascending)
	MaxPageSize int       // Rows per ranged query ceiling (default: 1000)
	MaxPages    int       // Safety ceiling on ranged queries (default: 100)
}

// FetchOption is a functional option for configuring a read
type FetchOption func(*FetchOptions)

// DefaultFetchOptions returns default read options
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{
		Direction:   Ascending,
		MaxPageSize: DefaultMaxPageSize,
		MaxPages:    DefaultMaxPages,
	}
}

// WithOrder sets the order column and direction
func WithOrder(column string, dir Direction) FetchOption {
	return func(opts *FetchOptions) {
		opts.OrderBy = column
		opts.Direction = dir
	}
}

// WithMaxPageSize overrides the per-request row ceiling. Non-positive values are ignored.
func WithMaxPageSize(size int) FetchOption {
	return func(opts *FetchOptions) {
		if size > 0 {
			opts.MaxPageSize = size
		}
	}
}

// WithMaxPages overrides the page ceiling. Non-positive values are ignored.
func WithMaxPages(pages int) FetchOption {
	return func(opts *FetchOptions) {
		if pages > 0 {
			opts.MaxPages = pages
		}
	}
}
