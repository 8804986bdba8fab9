package lock

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
)

type DynamoLockAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// DynamoLocker keeps one item per held key in a table whose partition key
// is lockKey. An item past its expiresAt may be taken over.
type DynamoLocker struct {
	client DynamoLockAPI
	table  string
	ttl    time.Duration
	wait   time.Duration
	log    logrus.FieldLogger
	now    func() time.Time
}

func NewDynamoLocker(client DynamoLockAPI, table string, ttl, wait time.Duration, log logrus.FieldLogger) *DynamoLocker {
	return &DynamoLocker{client: client, table: table, ttl: ttl, wait: wait, log: log, now: time.Now}
}

func (l *DynamoLocker) Lock(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()

	err := acquire(ctx, l.wait, func(ctx context.Context) error {
		now := l.now()
		_, err := l.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(l.table),
			Item: map[string]types.AttributeValue{
				"lockKey":   &types.AttributeValueMemberS{Value: key},
				"token":     &types.AttributeValueMemberS{Value: token},
				"expiresAt": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Add(l.ttl).Unix(), 10)},
			},
			ConditionExpression: aws.String("attribute_not_exists(lockKey) OR expiresAt < :now"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
			},
		})

		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return errHeld
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_, err := l.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName: aws.String(l.table),
				Key: map[string]types.AttributeValue{
					"lockKey": &types.AttributeValueMemberS{Value: key},
				},
				ConditionExpression: aws.String("#t = :token"),
				ExpressionAttributeNames: map[string]string{
					"#t": "token",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":token": &types.AttributeValueMemberS{Value: token},
				},
			})
			if err != nil {
				l.log.WithError(err).WithField("key", key).Warn("lock release failed")
			}
		})
	}, nil
}

var _ domain.Locker = (*DynamoLocker)(nil)
