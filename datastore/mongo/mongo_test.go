/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongo

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/innovexadevelopment/admin-panel-sub000/datastore"
	apperrors "github.com/innovexadevelopment/admin-panel-sub000/errors"
	"github.com/innovexadevelopment/admin-panel-sub000/storagemodels"
)

var _ datastore.Backend = (*MongoBackend)(nil)

func TestSortFor(t *testing.T) {
	tests := []struct {
		name string
		q    storagemodels.RangeQuery
		want bson.D
	}{
		{
			name: "no order column",
			q:    storagemodels.RangeQuery{},
			want: bson.D{{Key: "_id", Value: 1}},
		},
		{
			name: "descending column with id tiebreak",
			q:    storagemodels.RangeQuery{OrderBy: "created_at", Direction: storagemodels.Descending},
			want: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}},
		},
		{
			name: "id column",
			q:    storagemodels.RangeQuery{OrderBy: "_id", Direction: storagemodels.Descending},
			want: bson.D{{Key: "_id", Value: -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sortFor(tt.q))
		})
	}
}

func TestToRow(t *testing.T) {
	id := primitive.NewObjectID()
	when := time.Date(2025, 5, 4, 12, 30, 0, 0, time.UTC)
	dec, err := primitive.ParseDecimal128("12.5")
	require.NoError(t, err)

	row := toRow(bson.M{
		"_id":        id,
		"created_at": primitive.NewDateTimeFromTime(when),
		"price":      dec,
		"deleted":    primitive.Null{},
		"site":       "ngo",
		"tags":       bson.A{"a", primitive.NewDateTimeFromTime(when)},
		"meta":       bson.M{"author": id},
		"seo":        bson.D{{Key: "title", Value: "Home"}},
	})

	assert.Equal(t, id.Hex(), row["_id"])
	created, ok := row["created_at"].(time.Time)
	require.True(t, ok)
	assert.True(t, when.Equal(created))
	assert.Equal(t, 12.5, row["price"])
	assert.Nil(t, row["deleted"])
	assert.Equal(t, "ngo", row["site"])
	tags, ok := row["tags"].([]any)
	require.True(t, ok)
	require.Len(t, tags, 2)
	assert.Equal(t, "a", tags[0])
	assert.IsType(t, time.Time{}, tags[1])
	assert.Equal(t, map[string]any{"author": id.Hex()}, row["meta"])
	assert.Equal(t, map[string]any{"title": "Home"}, row["seo"])
}

func TestWrapError(t *testing.T) {
	err := wrapError("count", "ngo_events", driver.CommandError{Code: 13, Name: "Unauthorized", Message: "not authorized"})
	assert.True(t, apperrors.IsBackendError(err))
	assert.Equal(t, "Unauthorized", apperrors.Info(err).Code)

	err = wrapError("range", "ngo_events", driver.CommandError{Code: 50, Message: "operation exceeded time limit"})
	assert.Equal(t, "50", apperrors.Info(err).Code)

	err = wrapError("range", "ngo_events", errors.New("connection refused"))
	assert.Empty(t, apperrors.Info(err).Code)
	assert.Contains(t, apperrors.Info(err).Message, "connection refused")
}
