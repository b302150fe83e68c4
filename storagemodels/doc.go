/*
Package storagemodels defines the data structures shared by the reader, the site filter
and the backends.

Key Types:

Row:
One schema-agnostic record:

	row := storagemodels.Row{"id": 7, "site": "ngo", "created_at": "2025-03-01T10:00:00Z"}

RangeQuery:
A ranged select with a zero-based inclusive window:

	q := storagemodels.RangeQuery{
	    Table:     "company_projects",
	    OrderBy:   "created_at",
	    Direction: storagemodels.Descending,
	    Start:     1000,
	    End:       1999,
	}

FetchResult:
The outcome of an exhaustive read. Rows is nil when the read failed, Error carries the
{message, code} shape, TotalCount is nil when the count query could not answer.

FetchOptions:
Configuration for a read:

	opts := []FetchOption{
	    WithOrder("created_at", Descending),
	    WithMaxPageSize(500),
	    WithMaxPages(20),
	}
*/
package storagemodels
