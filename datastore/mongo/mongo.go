/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/innovexadevelopment/admin-panel-sub000/errors"
	"github.com/innovexadevelopment/admin-panel-sub000/storagemodels"
)

// MongoBackend implements datastore.Backend over a MongoDB database.
// Each logical table is a collection of the same name.
type MongoBackend struct {
	db *driver.Database
}

// Connect opens a client for uri and returns a backend for database.
func Connect(ctx context.Context, uri, database string) (*MongoBackend, func(context.Context) error, error) {
	client, err := driver.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return New(client.Database(database)), client.Disconnect, nil
}

// New wraps an existing database handle.
func New(db *driver.Database) *MongoBackend {
	return &MongoBackend{db: db}
}

// Count returns the number of documents in the collection.
func (m *MongoBackend) Count(ctx context.Context, table string) (*int64, error) {
	n, err := m.db.Collection(table).CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, wrapError("count", table, err)
	}
	return &n, nil
}

// Range returns the documents in the window, sorted server-side by q.OrderBy.
// _id breaks ties so consecutive windows do not overlap.
func (m *MongoBackend) Range(ctx context.Context, q storagemodels.RangeQuery) ([]storagemodels.Row, error) {
	limit := q.Limit()
	if limit <= 0 {
		return []storagemodels.Row{}, nil
	}

	opts := options.Find().
		SetSkip(q.Start).
		SetLimit(limit).
		SetSort(sortFor(q))

	cur, err := m.db.Collection(q.Table).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, wrapError("range", q.Table, err)
	}
	defer cur.Close(ctx)

	rows := make([]storagemodels.Row, 0, limit)
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, wrapError("range", q.Table, err)
		}
		rows = append(rows, toRow(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, wrapError("range", q.Table, err)
	}
	return rows, nil
}

func sortFor(q storagemodels.RangeQuery) bson.D {
	dir := 1
	if q.Direction == storagemodels.Descending {
		dir = -1
	}
	if q.OrderBy == "" || q.OrderBy == "_id" {
		return bson.D{{Key: "_id", Value: dir}}
	}
	return bson.D{{Key: q.OrderBy, Value: dir}, {Key: "_id", Value: 1}}
}

// toRow converts driver types into plain values the reader can sort and
// the CLI can encode.
func toRow(doc bson.M) storagemodels.Row {
	row := make(storagemodels.Row, len(doc))
	for k, v := range doc {
		row[k] = plain(v)
	}
	return row
}

func plain(v any) any {
	switch tv := v.(type) {
	case primitive.ObjectID:
		return tv.Hex()
	case primitive.DateTime:
		return tv.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(tv.T), 0).UTC()
	case primitive.Decimal128:
		if f, err := strconv.ParseFloat(tv.String(), 64); err == nil {
			return f
		}
		return tv.String()
	case primitive.Null, primitive.Undefined:
		return nil
	case bson.M:
		return map[string]any(toRow(tv))
	case bson.D:
		out := make(map[string]any, len(tv))
		for _, e := range tv {
			out[e.Key] = plain(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = plain(e)
		}
		return out
	}
	return v
}

// wrapError keeps the server error code so callers can report it.
func wrapError(op, table string, err error) error {
	code := ""
	var cmdErr driver.CommandError
	var srvErr driver.ServerError
	switch {
	case errors.As(err, &cmdErr):
		code = cmdErr.Name
		if code == "" {
			code = strconv.Itoa(int(cmdErr.Code))
		}
	case errors.As(err, &srvErr):
		if codes := srvErr.ErrorCodes(); len(codes) > 0 {
			code = strconv.Itoa(codes[0])
		}
	}
	return apperrors.NewBackendError(op, table, code, err)
}
