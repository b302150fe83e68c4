// Package config loads admin panel settings from the environment, optionally seeded
// from a .env file.
//
//	ADMINPANEL_BACKEND        dynamodb (default) or mongo
//	ADMINPANEL_MAX_PAGE_SIZE  backend rows-per-request ceiling (default 1000)
//	ADMINPANEL_MAX_PAGES      page ceiling per read (default 100)
//	ADMINPANEL_TABLES_FILE    optional YAML table map overrides
//	AWS_ACCESS_KEY, AWS_SECRET_KEY, AWS_REGION, DDB_CONSISTENT_READ
//	MONGO_URI, MONGO_DATABASE
//	LOG_LEVEL                 debug, info, warn, error
package config
