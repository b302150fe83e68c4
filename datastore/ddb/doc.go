/*
Package ddb provides a DynamoDB implementation of the datastore.Backend interface.

Count runs a Select=COUNT scan and sums the page counts. Range emulates an
offset/limit window over a paginated scan, resuming from the scan page boundary
reached by the previous window so a full read scans the table once:

	backend, err := ddb.NewDynamodbBackend(ctx, accessKey, secretKey, "eu-west-1")
	rows, err := backend.Range(ctx, storagemodels.RangeQuery{
	    Table: "company_projects",
	    Start: 1000,
	    End:   1999,
	})

DynamoDB scans have no ORDER BY, so RangeQuery.OrderBy is ignored here; the reader's
in-memory re-sort establishes the order. Errors keep the AWS error code
(for example "ResourceNotFoundException") so it reaches FetchResult.Error.Code.
*/
package ddb
