/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	apperrors "github.com/innovexadevelopment/admin-panel-sub000/errors"
	"github.com/innovexadevelopment/admin-panel-sub000/storagemodels"
)

// scanPageLimit caps the items evaluated by one Scan request.
const scanPageLimit int32 = 1000

// DynamodbBackend implements datastore.Backend with paginated DynamoDB scans.
// Each logical table is a DynamoDB table of the same name.
type DynamodbBackend struct {
	client         sdk.ScanAPIClient
	consistentRead bool

	mu      sync.Mutex
	cursors map[string][]cursor // per table, ascending by offset
}

// cursor is a scan position: key resumes the scan after the first offset items.
type cursor struct {
	offset int64
	key    map[string]types.AttributeValue
}

// Option configures a DynamodbBackend.
type Option func(*DynamodbBackend)

// WithConsistentRead makes scans strongly consistent.
func WithConsistentRead() Option {
	return func(d *DynamodbBackend) {
		d.consistentRead = true
	}
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
// Empty keys fall back to the default credential chain.
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(awsRegion)}
	if awsAccessKey != "" && awsSecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// NewDynamodbBackend constructs a backend with a client built from static credentials.
func NewDynamodbBackend(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string, opts ...Option) (*DynamodbBackend, error) {
	client, err := NewDynamoDBClient(ctx, awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewWithClient(client, opts...), nil
}

// NewWithClient wraps an existing scan client.
func NewWithClient(client sdk.ScanAPIClient, opts ...Option) *DynamodbBackend {
	d := &DynamodbBackend{
		client:  client,
		cursors: make(map[string][]cursor),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Count scans the table with Select=COUNT and sums the per-page counts.
func (d *DynamodbBackend) Count(ctx context.Context, table string) (*int64, error) {
	p := sdk.NewScanPaginator(d.client, &sdk.ScanInput{
		TableName:      aws.String(table),
		Select:         types.SelectCount,
		ConsistentRead: aws.Bool(d.consistentRead),
	})

	var total int64
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, wrapError("count", table, err)
		}
		total += int64(out.Count)
	}
	return &total, nil
}

// Range returns up to q.Limit() rows starting at item q.Start of the scan.
// Scans are unordered; q.OrderBy is left to the caller's re-sort.
//
// Every scan page boundary is remembered, so consecutive windows resume from
// the closest boundary at or before q.Start instead of rescanning the table.
// A window starting at 0 begins a new read and forgets earlier boundaries.
func (d *DynamodbBackend) Range(ctx context.Context, q storagemodels.RangeQuery) ([]storagemodels.Row, error) {
	want := q.Limit()
	if want <= 0 {
		return []storagemodels.Row{}, nil
	}

	from := d.resume(q.Table, q.Start)
	skip := q.Start - from.offset
	scanned := from.offset
	key := from.key

	rows := make([]storagemodels.Row, 0, min64(want, int64(scanPageLimit)))
	for int64(len(rows)) < want {
		out, err := d.client.Scan(ctx, &sdk.ScanInput{
			TableName:         aws.String(q.Table),
			Limit:             aws.Int32(scanPageLimit),
			ConsistentRead:    aws.Bool(d.consistentRead),
			ExclusiveStartKey: key,
		})
		if err != nil {
			return nil, wrapError("range", q.Table, err)
		}
		scanned += int64(len(out.Items))

		items := out.Items
		if skip >= int64(len(items)) {
			skip -= int64(len(items))
			items = nil
		} else if skip > 0 {
			items = items[skip:]
			skip = 0
		}

		for _, item := range items {
			if int64(len(rows)) == want {
				break
			}
			row, err := unmarshalRow(item)
			if err != nil {
				return nil, apperrors.NewBackendError("range", q.Table, "", err)
			}
			rows = append(rows, row)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		key = out.LastEvaluatedKey
		d.remember(q.Table, cursor{offset: scanned, key: key})
	}
	return rows, nil
}

// resume returns the last remembered boundary at or before start, or the
// beginning of the table.
func (d *DynamodbBackend) resume(table string, start int64) cursor {
	d.mu.Lock()
	defer d.mu.Unlock()

	if start == 0 {
		delete(d.cursors, table)
		return cursor{}
	}
	cs := d.cursors[table]
	i := sort.Search(len(cs), func(i int) bool { return cs[i].offset > start })
	if i == 0 {
		return cursor{}
	}
	return cs[i-1]
}

func (d *DynamodbBackend) remember(table string, c cursor) {
	d.mu.Lock()
	defer d.mu.Unlock()

	cs := d.cursors[table]
	i := sort.Search(len(cs), func(i int) bool { return cs[i].offset >= c.offset })
	if i < len(cs) && cs[i].offset == c.offset {
		cs[i] = c
		return
	}
	cs = append(cs, cursor{})
	copy(cs[i+1:], cs[i:])
	cs[i] = c
	d.cursors[table] = cs
}

func unmarshalRow(item map[string]types.AttributeValue) (storagemodels.Row, error) {
	var row map[string]any
	if err := attributevalue.UnmarshalMap(item, &row); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return storagemodels.Row(row), nil
}

// wrapError keeps the AWS error code so callers can report it.
func wrapError(op, table string, err error) error {
	code := ""
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code = apiErr.ErrorCode()
	}
	var rnf *types.ResourceNotFoundException
	if errors.As(err, &rnf) {
		err = fmt.Errorf("%w: %w", apperrors.NewNotFoundError("table", table), err)
	}
	return apperrors.NewBackendError(op, table, code, err)
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
