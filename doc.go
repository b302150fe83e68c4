/*
Package adminpanel is the data-access layer of a dashboard that manages content for
two tenant websites ("company" and "ngo") sharing one backend.

The library is organized around a few pieces:
  - reader: reads a whole table through a backend that caps rows per request
  - site: tenant type and the normalized site-column filter for shared tables
  - registry: typed site/entity to table lookup, validated at startup
  - datastore: the backend interface, with DynamoDB, MongoDB and in-memory implementations
  - config: environment and .env driven configuration

Basic Usage:

	backend, _ := ddb.NewDynamodbBackend(ctx, accessKey, secretKey, region)
	panel, err := adminpanel.New(backend, registry.Default(),
	    adminpanel.WithLogger(logger))

	res := panel.List(ctx, site.NGO, registry.Event,
	    storagemodels.WithOrder("starts_at", storagemodels.Descending))
	if res.Error != nil {
	    // show res.Error.Message
	}

The site is always an argument. Nothing in the library keeps a current site.
*/
package adminpanel
