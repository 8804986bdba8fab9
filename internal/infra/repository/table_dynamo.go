package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
	"github.com/BruksfildServices01/table-booking/internal/models"
)

// TableDynamoRepository stores tables keyed by the numeric "id" attribute.
type TableDynamoRepository struct {
	client DynamoAPI
	table  string
}

func NewTableDynamoRepository(client DynamoAPI, table string) *TableDynamoRepository {
	return &TableDynamoRepository{client: client, table: table}
}

func (r *TableDynamoRepository) ListTables(ctx context.Context) ([]models.Table, error) {
	return scanAll[models.Table](ctx, r.client, r.table)
}

func (r *TableDynamoRepository) GetTable(ctx context.Context, id int) (*models.Table, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
	})
	if err != nil {
		return nil, httperr.Upstream("dynamodb", fmt.Errorf("get table %d: %w", id, err))
	}
	if len(out.Item) == 0 {
		return nil, domain.ErrNotFound
	}

	var t models.Table
	if err := attributevalue.UnmarshalMap(out.Item, &t); err != nil {
		return nil, httperr.Upstream("dynamodb", fmt.Errorf("decode table %d: %w", id, err))
	}
	return &t, nil
}

func (r *TableDynamoRepository) PutTable(ctx context.Context, t *models.Table) error {
	item, err := attributevalue.MarshalMap(t)
	if err != nil {
		return fmt.Errorf("encode table %d: %w", t.ID, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return httperr.Upstream("dynamodb", fmt.Errorf("put table %d: %w", t.ID, err))
	}
	return nil
}

var _ domain.TableRepository = (*TableDynamoRepository)(nil)
