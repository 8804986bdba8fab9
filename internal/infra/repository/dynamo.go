package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/BruksfildServices01/table-booking/internal/httperr"
)

// DynamoAPI is the slice of the DynamoDB client the item stores use.
type DynamoAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// scanAll reads every page of a table and decodes the items into T.
// DynamoDB returns numbers as decimals; decoding into the typed model is
// where they become plain ints.
func scanAll[T any](ctx context.Context, client DynamoAPI, table string) ([]T, error) {
	p := dynamodb.NewScanPaginator(client, &dynamodb.ScanInput{
		TableName: aws.String(table),
	})

	out := []T{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, httperr.Upstream("dynamodb", fmt.Errorf("scan %s: %w", table, err))
		}

		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, httperr.Upstream("dynamodb", fmt.Errorf("decode %s: %w", table, err))
		}
		out = append(out, items...)
	}
	return out, nil
}
