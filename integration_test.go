//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package adminpanel_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	adminpanel "github.com/innovexadevelopment/admin-panel-sub000"
	"github.com/innovexadevelopment/admin-panel-sub000/config"
	"github.com/innovexadevelopment/admin-panel-sub000/datastore"
	"github.com/innovexadevelopment/admin-panel-sub000/datastore/ddb"
	"github.com/innovexadevelopment/admin-panel-sub000/datastore/mongo"
	"github.com/innovexadevelopment/admin-panel-sub000/reader"
	"github.com/innovexadevelopment/admin-panel-sub000/registry"
	"github.com/innovexadevelopment/admin-panel-sub000/site"
)

func setupPanel(t *testing.T) *adminpanel.Panel {
	if os.Getenv("ADMINPANEL_INTEGRATION") == "" {
		t.Skip("ADMINPANEL_INTEGRATION not set, skipping integration test")
	}

	cfg, err := config.Load("")
	require.NoError(t, err)
	tables, err := cfg.Registry()
	require.NoError(t, err)

	b := adminpanel.NewBackends()
	require.NoError(t, b.Register(config.BackendDynamoDB, func(ctx context.Context) (datastore.Backend, func(context.Context) error, error) {
		backend, err := ddb.NewDynamodbBackend(ctx, cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.AWSRegion)
		return backend, nil, err
	}))
	require.NoError(t, b.Register(config.BackendMongo, func(ctx context.Context) (datastore.Backend, func(context.Context) error, error) {
		return mongo.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	}))

	backend, closer, err := b.Open(context.Background(), cfg.Backend)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer(context.Background()) })

	p, err := adminpanel.New(backend, tables,
		adminpanel.WithLogger(zaptest.NewLogger(t)),
		adminpanel.WithReaderOptions(reader.WithDefaults(cfg.FetchOptions()...)),
	)
	require.NoError(t, err)
	return p
}

func TestIntegrationListCatalog(t *testing.T) {
	p := setupPanel(t)

	for _, s := range site.All() {
		for _, e := range registry.Catalog(s) {
			t.Run(string(s)+"/"+string(e), func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
				defer cancel()

				res := p.List(ctx, s, e)
				if res.Error != nil {
					t.Skipf("table not provisioned: %s", res.Error.Message)
				}
				assert.False(t, res.Truncated)
				entry, err := p.Tables().Lookup(s, e)
				require.NoError(t, err)
				if res.TotalCount != nil && !entry.Shared {
					assert.Len(t, res.Rows, int(*res.TotalCount))
				}
			})
		}
	}
}
