/*
Package datastore defines the backend interface consumed by the exhaustive table reader.

	type Backend interface {
	    Count(ctx context.Context, table string) (*int64, error)
	    Range(ctx context.Context, q storagemodels.RangeQuery) ([]storagemodels.Row, error)
	}

Count has SELECT count(*) semantics, Range has SELECT * ... ORDER BY ... LIMIT/OFFSET
semantics expressed as a zero-based inclusive row window.

Implementations:
  - ddb: DynamoDB implementation over paginated scans
  - mongo: MongoDB implementation over CountDocuments/Find
  - mock: In-memory implementation for testing, with a per-request ceiling and error injection

Backends only need to honor the window; global ordering is re-established by the reader.
*/
package datastore
