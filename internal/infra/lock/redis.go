package lock

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
)

// releaseScript deletes the key only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker holds keys with SET NX PX so a crashed holder expires after ttl.
type RedisLocker struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	wait   time.Duration
	log    logrus.FieldLogger
}

func NewRedisLocker(client redis.UniversalClient, ttl, wait time.Duration, log logrus.FieldLogger) *RedisLocker {
	return &RedisLocker{client: client, prefix: "booking:lock:", ttl: ttl, wait: wait, log: log}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	name := l.prefix + key
	token := uuid.NewString()

	err := acquire(ctx, l.wait, func(ctx context.Context) error {
		ok, err := l.client.SetNX(ctx, name, token, l.ttl).Result()
		if err != nil {
			return err
		}
		if !ok {
			return errHeld
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// The request context may already be cancelled here.
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := releaseScript.Run(ctx, l.client, []string{name}, token).Err(); err != nil {
				l.log.WithError(err).WithField("key", name).Warn("lock release failed")
			}
		})
	}, nil
}

var _ domain.Locker = (*RedisLocker)(nil)
