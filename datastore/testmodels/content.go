// Package testmodels holds fixture rows shaped like the panel's content tables.
package testmodels

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"

	"github.com/innovexadevelopment/admin-panel-sub000/storagemodels"
)

type ContentItem struct {

	// Unique identifier.
	// Required: true
	ID string `json:"id"`

	// Display title.
	// Required: true
	Title string `json:"title"`

	// Owning site, only set on shared tables.
	Site string `json:"site,omitempty"`

	// Manual display position.
	Position int `json:"position"`

	// Timestamp when the item was created.
	// Required: true
	// Format: date-time
	CreatedAt strfmt.DateTime `json:"created_at"`
}

// Items returns n items created one minute apart starting at from, with
// positions running n-1 down to 0.
func Items(prefix, site string, n int, from time.Time) []ContentItem {
	out := make([]ContentItem, n)
	for i := range out {
		out[i] = ContentItem{
			ID:        fmt.Sprintf("%s-%04d", prefix, i),
			Title:     fmt.Sprintf("%s %d", prefix, i),
			Site:      site,
			Position:  n - 1 - i,
			CreatedAt: strfmt.DateTime(from.Add(time.Duration(i) * time.Minute).UTC()),
		}
	}
	return out
}

// Row renders the item the way a backend hands it to the reader.
func (c ContentItem) Row() storagemodels.Row {
	row := storagemodels.Row{
		"id":         c.ID,
		"title":      c.Title,
		"position":   c.Position,
		"created_at": c.CreatedAt,
	}
	if c.Site != "" {
		row["site"] = c.Site
	}
	return row
}

// Item renders the item as a DynamoDB item, with created_at as an RFC 3339 string.
func (c ContentItem) Item() (map[string]types.AttributeValue, error) {
	row := c.Row()
	row["created_at"] = c.CreatedAt.String()
	return attributevalue.MarshalMap(map[string]any(row))
}

// Rows converts items to rows.
func Rows(items []ContentItem) []storagemodels.Row {
	out := make([]storagemodels.Row, len(items))
	for i, it := range items {
		out[i] = it.Row()
	}
	return out
}
