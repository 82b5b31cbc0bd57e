// Package smeta loads summary metadata exported alongside simulation runs.
//
// Currently this is limited to per-vector historical flags, kept in a small
// DynamoDB table written by the ensemble export pipeline.
//
// Table schema:
//   - Partition key: vector (string) - the full vector code, e.g. "WOPRH:OP_1"
//   - Attribute: is_historical (bool)
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name smry-meta \
//	  --attribute-definitions AttributeName=vector,AttributeType=S \
//	  --key-schema AttributeName=vector,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
package smeta

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/subsurf/simterms"
	"golang.org/x/time/rate"
)

// Client is the interface for the DynamoDB operations used by Store.
// *dynamodb.Client satisfies it.
type Client interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Options configures a Store.
type Options struct {
	// PageLimit caps the number of items per Scan page. Zero means the
	// DynamoDB default.
	PageLimit int32

	// PagesPerSecond throttles Scan pagination so a full table walk does
	// not exhaust provisioned read capacity shared with the exporters.
	// Zero disables throttling.
	PagesPerSecond float64
}

// Store reads summary metadata from DynamoDB.
type Store struct {
	client  Client
	table   string
	limit   int32
	limiter *rate.Limiter
}

// NewStore creates a Store for the given table.
func NewStore(client Client, table string, optFns ...func(*Options)) *Store {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Store{
		client: client,
		table:  table,
		limit:  opts.PageLimit,
	}
	if opts.PagesPerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.PagesPerSecond), 1)
	}
	return s
}

// HistoricalFlags walks the table and returns the per-vector is_historical
// flags. Vectors without the attribute are recorded as false.
func (s *Store) HistoricalFlags(ctx context.Context) (simterms.HistoricalFlags, error) {
	flags := make(simterms.HistoricalFlags)

	var startKey map[string]types.AttributeValue
	for {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		input := &dynamodb.ScanInput{
			TableName:         aws.String(s.table),
			ExclusiveStartKey: startKey,
		}
		if s.limit > 0 {
			input.Limit = aws.Int32(s.limit)
		}

		page, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.table, err)
		}

		for _, item := range page.Items {
			vec, ok := item["vector"].(*types.AttributeValueMemberS)
			if !ok {
				continue
			}
			hist, _ := item["is_historical"].(*types.AttributeValueMemberBOOL)
			flags[vec.Value] = hist != nil && hist.Value
		}

		startKey = page.LastEvaluatedKey
		if len(startKey) == 0 {
			break
		}
	}

	return flags, nil
}
