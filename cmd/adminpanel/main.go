package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	adminpanel "github.com/innovexadevelopment/admin-panel-sub000"
	"github.com/innovexadevelopment/admin-panel-sub000/config"
	"github.com/innovexadevelopment/admin-panel-sub000/datastore"
	"github.com/innovexadevelopment/admin-panel-sub000/datastore/ddb"
	"github.com/innovexadevelopment/admin-panel-sub000/datastore/mongo"
	"github.com/innovexadevelopment/admin-panel-sub000/reader"
	"github.com/innovexadevelopment/admin-panel-sub000/registry"
	"github.com/innovexadevelopment/admin-panel-sub000/site"
	"github.com/innovexadevelopment/admin-panel-sub000/storagemodels"
)

type output struct {
	TotalCount *int64              `json:"total_count"`
	Rows       []storagemodels.Row `json:"rows"`
	Truncated  bool                `json:"truncated"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, defaultBackends)
	stop()
	os.Exit(code)
}

// defaultBackends registers the hosted backends against cfg.
func defaultBackends(cfg config.Config) *adminpanel.Backends {
	b := adminpanel.NewBackends()
	_ = b.Register(config.BackendDynamoDB, func(ctx context.Context) (datastore.Backend, func(context.Context) error, error) {
		var opts []ddb.Option
		if cfg.DDBConsistentRead {
			opts = append(opts, ddb.WithConsistentRead())
		}
		backend, err := ddb.NewDynamodbBackend(ctx, cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.AWSRegion, opts...)
		if err != nil {
			return nil, nil, err
		}
		return backend, nil, nil
	})
	_ = b.Register(config.BackendMongo, func(ctx context.Context) (datastore.Backend, func(context.Context) error, error) {
		return mongo.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	})
	return b
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, backends func(config.Config) *adminpanel.Backends) int {
	fs := flag.NewFlagSet("adminpanel", flag.ContinueOnError)
	fs.SetOutput(stderr)
	versionFlag := fs.Bool("version", false, "Show version information")
	vFlag := fs.Bool("v", false, "Show version information (short)")
	siteFlag := fs.String("site", "", "Site to list: company or ngo")
	entityFlag := fs.String("entity", "", "Entity to list, e.g. project, event, category")
	orderFlag := fs.String("order", "", "Column to order rows by")
	descFlag := fs.Bool("desc", false, "Order descending")
	envFlag := fs.String("env", "", "Path to a .env file (default .env)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag || *vFlag {
		info := adminpanel.GetVersionInfo()
		fmt.Fprintf(stdout, "adminpanel version %s\n", info.Version)
		fmt.Fprintf(stdout, "Git commit: %s\n", info.GitCommit)
		fmt.Fprintf(stdout, "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(stdout, "Go version: %s\n", info.GoVersion)
		return 0
	}

	s, err := site.Parse(*siteFlag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *entityFlag == "" {
		fmt.Fprintln(stderr, "-entity is required")
		return 1
	}

	cfg, err := config.Load(*envFlag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	tables, err := cfg.Registry()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	backend, closeBackend, err := backends(cfg).Open(ctx, cfg.Backend)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() {
		if err := closeBackend(context.Background()); err != nil {
			logger.Warn("failed to close backend", zap.Error(err))
		}
	}()

	panel, err := adminpanel.New(backend, tables,
		adminpanel.WithLogger(logger),
		adminpanel.WithReaderOptions(reader.WithDefaults(cfg.FetchOptions()...)),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var fetchOpts []storagemodels.FetchOption
	if *orderFlag != "" {
		dir := storagemodels.Ascending
		if *descFlag {
			dir = storagemodels.Descending
		}
		fetchOpts = append(fetchOpts, storagemodels.WithOrder(*orderFlag, dir))
	}

	res := panel.List(ctx, s, registry.Entity(*entityFlag), fetchOpts...)
	if res.Error != nil {
		fmt.Fprintln(stderr, res.Error.Message)
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output{TotalCount: res.TotalCount, Rows: res.Rows, Truncated: res.Truncated}); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
