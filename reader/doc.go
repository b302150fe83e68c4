/*
Package reader implements the exhaustive table read used by the dashboard's list pages.

Hosted backends cap the rows returned by one request. FetchAll works around the cap:

 1. count the table (a failed count leaves the total unknown, it is not treated as zero)
 2. pick the page size: the total when it fits in one request, else the ceiling
 3. request consecutive windows [p*size, (p+1)*size-1] until a short page arrives,
    the accumulated rows reach the total, or the page ceiling (100 by default) trips
 4. re-sort the merged rows when an order column was requested, because per-page
    backend ordering does not make the concatenation globally ordered

Usage:

	r := reader.New(backend, reader.WithLogger(logger))
	res := r.FetchAll(ctx, "company_projects",
	    storagemodels.WithOrder("created_at", storagemodels.Descending))
	if res.Error != nil {
	    // res.Rows is nil, res.Error.Message is the backend's text
	}

Pages are fetched sequentially. A ceiling trip returns what was read with
Truncated set and a warning logged.
*/
package reader
