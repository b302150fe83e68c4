/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	apperrors "github.com/innovexadevelopment/admin-panel-sub000/errors"
	"github.com/innovexadevelopment/admin-panel-sub000/registry"
	"github.com/innovexadevelopment/admin-panel-sub000/storagemodels"
)

// Backend names.
const (
	BackendDynamoDB = "dynamodb"
	BackendMongo    = "mongo"
)

// Environment variable names.
const (
	EnvBackend       = "ADMINPANEL_BACKEND"
	EnvMaxPageSize   = "ADMINPANEL_MAX_PAGE_SIZE"
	EnvMaxPages      = "ADMINPANEL_MAX_PAGES"
	EnvTablesFile    = "ADMINPANEL_TABLES_FILE"
	EnvAWSAccessKey  = "AWS_ACCESS_KEY"
	EnvAWSSecretKey  = "AWS_SECRET_KEY"
	EnvAWSRegion     = "AWS_REGION"
	EnvDDBConsistent = "DDB_CONSISTENT_READ"
	EnvMongoURI      = "MONGO_URI"
	EnvMongoDatabase = "MONGO_DATABASE"
	EnvLogLevel      = "LOG_LEVEL"
)

const (
	defaultBackend   = BackendDynamoDB
	defaultAWSRegion = "us-east-1"
	defaultMongoDB   = "adminpanel"
	defaultLogLevel  = "info"
)

// Config holds runtime settings.
type Config struct {
	Backend string

	AWSAccessKey      string
	AWSSecretKey      string
	AWSRegion         string
	DDBConsistentRead bool

	MongoURI      string
	MongoDatabase string

	MaxPageSize int
	MaxPages    int
	TablesFile  string
	LogLevel    string
}

// Load reads envFile (".env" when empty) into the process environment, if it
// exists, then builds the config from the environment.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds and validates a config from lookup.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	c := Config{
		Backend:       strings.ToLower(get(EnvBackend, defaultBackend)),
		AWSAccessKey:  get(EnvAWSAccessKey, ""),
		AWSSecretKey:  get(EnvAWSSecretKey, ""),
		AWSRegion:     get(EnvAWSRegion, defaultAWSRegion),
		MongoURI:      get(EnvMongoURI, ""),
		MongoDatabase: get(EnvMongoDatabase, defaultMongoDB),
		TablesFile:    get(EnvTablesFile, ""),
		LogLevel:      strings.ToLower(get(EnvLogLevel, defaultLogLevel)),
	}

	var err error
	if c.MaxPageSize, err = intVar(EnvMaxPageSize, get(EnvMaxPageSize, ""), storagemodels.DefaultMaxPageSize); err != nil {
		return Config{}, err
	}
	if c.MaxPages, err = intVar(EnvMaxPages, get(EnvMaxPages, ""), storagemodels.DefaultMaxPages); err != nil {
		return Config{}, err
	}
	if raw := get(EnvDDBConsistent, ""); raw != "" {
		if c.DDBConsistentRead, err = strconv.ParseBool(raw); err != nil {
			return Config{}, apperrors.NewValidationError(EnvDDBConsistent, fmt.Sprintf("not a boolean: %q", raw))
		}
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the settings needed by the selected backend.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendDynamoDB:
		if c.AWSRegion == "" {
			return apperrors.NewValidationError(EnvAWSRegion, "region is required for the dynamodb backend")
		}
		if (c.AWSAccessKey == "") != (c.AWSSecretKey == "") {
			return apperrors.NewValidationError(EnvAWSAccessKey, "access key and secret key must be set together")
		}
	case BackendMongo:
		if c.MongoURI == "" {
			return apperrors.NewValidationError(EnvMongoURI, "uri is required for the mongo backend")
		}
	default:
		return apperrors.NewValidationError(EnvBackend, fmt.Sprintf("unknown backend %q", c.Backend))
	}
	if c.MaxPageSize <= 0 {
		return apperrors.NewValidationError(EnvMaxPageSize, "must be positive")
	}
	if c.MaxPages <= 0 {
		return apperrors.NewValidationError(EnvMaxPages, "must be positive")
	}
	return nil
}

// FetchOptions returns the read defaults implied by the config.
func (c Config) FetchOptions() []storagemodels.FetchOption {
	return []storagemodels.FetchOption{
		storagemodels.WithMaxPageSize(c.MaxPageSize),
		storagemodels.WithMaxPages(c.MaxPages),
	}
}

// Registry returns the default table registry with TablesFile overrides applied.
func (c Config) Registry() (*registry.Registry, error) {
	if c.TablesFile == "" {
		return registry.Default(), nil
	}
	return registry.LoadFile(c.TablesFile)
}

func intVar(key, raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError(key, fmt.Sprintf("not an integer: %q", raw))
	}
	return n, nil
}
