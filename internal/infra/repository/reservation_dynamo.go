package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
	"github.com/BruksfildServices01/table-booking/internal/models"
)

type ReservationDynamoRepository struct {
	client DynamoAPI
	table  string
}

func NewReservationDynamoRepository(client DynamoAPI, table string) *ReservationDynamoRepository {
	return &ReservationDynamoRepository{client: client, table: table}
}

func (r *ReservationDynamoRepository) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return scanAll[models.Reservation](ctx, r.client, r.table)
}

func (r *ReservationDynamoRepository) PutReservation(ctx context.Context, res *models.Reservation) error {
	item, err := attributevalue.MarshalMap(res)
	if err != nil {
		return fmt.Errorf("encode reservation %s: %w", res.ID, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return httperr.Upstream("dynamodb", fmt.Errorf("reservation %s already exists", res.ID))
		}
		return httperr.Upstream("dynamodb", fmt.Errorf("put reservation %s: %w", res.ID, err))
	}
	return nil
}

var _ domain.ReservationRepository = (*ReservationDynamoRepository)(nil)
