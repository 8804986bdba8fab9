package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-booking/internal/audit"
	"github.com/BruksfildServices01/table-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/table-booking/internal/db"
	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/domain/identity"
	infraIdentity "github.com/BruksfildServices01/table-booking/internal/infra/identity"
	"github.com/BruksfildServices01/table-booking/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/table-booking/internal/infra/repository"
	"github.com/BruksfildServices01/table-booking/internal/routes"
)

// clients holds lazily opened connections so each backend is dialed once.
type clients struct {
	ctx context.Context
	cfg *config.Config

	sql    *gorm.DB
	aws    *aws.Config
	closer []func()
}

func (c *clients) gorm() (*gorm.DB, error) {
	if c.sql == nil {
		db, err := dbpkg.NewDB(c.cfg)
		if err != nil {
			return nil, err
		}
		c.sql = db
		c.closer = append(c.closer, func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		})
	}
	return c.sql, nil
}

func (c *clients) awsConfig() (aws.Config, error) {
	if c.aws == nil {
		cfg, err := dbpkg.NewAWSConfig(c.ctx, c.cfg)
		if err != nil {
			return aws.Config{}, fmt.Errorf("aws config: %w", err)
		}
		c.aws = &cfg
	}
	return *c.aws, nil
}

func (c *clients) close() {
	for i := len(c.closer) - 1; i >= 0; i-- {
		c.closer[i]()
	}
}

// wire builds every collaborator named by cfg. The returned func releases
// connections and drains the audit queue.
func wire(ctx context.Context, cfg *config.Config, log *logrus.Logger) (routes.Deps, func(), error) {
	c := &clients{ctx: ctx, cfg: cfg}
	deps := routes.Deps{Config: cfg, Log: log}

	fail := func(err error) (routes.Deps, func(), error) {
		c.close()
		return routes.Deps{}, nil, err
	}

	// ======================================================
	// ITEM STORE
	// ======================================================
	switch cfg.ItemStore {
	case config.StoreDynamoDB:
		awsCfg, err := c.awsConfig()
		if err != nil {
			return fail(err)
		}
		client := dbpkg.NewDynamoClient(awsCfg, cfg)
		deps.Tables = infraRepo.NewTableDynamoRepository(client, cfg.TablesTable)
		deps.Reservations = infraRepo.NewReservationDynamoRepository(client, cfg.ReservationsTable)

	case config.StorePostgres:
		db, err := c.gorm()
		if err != nil {
			return fail(err)
		}
		deps.Tables = infraRepo.NewTableGormRepository(db)
		deps.Reservations = infraRepo.NewReservationGormRepository(db)

	default:
		deps.Tables = infraRepo.NewTableMemoryRepository()
		deps.Reservations = infraRepo.NewReservationMemoryRepository()
	}

	// ======================================================
	// IDENTITY
	// ======================================================
	switch cfg.IdentityProvider {
	case config.IdentityCognito:
		awsCfg, err := c.awsConfig()
		if err != nil {
			return fail(err)
		}
		deps.Identity = infraIdentity.NewCognito(dbpkg.NewCognitoClient(awsCfg, cfg), infraIdentity.CognitoConfig{
			PoolName:   cfg.UserPoolName,
			ClientName: cfg.UserPoolClientName,
			PoolID:     cfg.UserPoolID,
			ClientID:   cfg.UserPoolClientID,
		}, log)

	default:
		var users identity.UserRepository = infraRepo.NewUserMemoryRepository()
		if cfg.ItemStore == config.StorePostgres {
			db, err := c.gorm()
			if err != nil {
				return fail(err)
			}
			users = infraRepo.NewUserGormRepository(db)
		}
		local := infraIdentity.NewLocal(users, cfg.JWTSecret, cfg.TokenTTL)
		deps.Identity = local
		deps.Verifier = local
	}

	// ======================================================
	// LOCKING
	// ======================================================
	locker, err := newLocker(c, log)
	if err != nil {
		return fail(err)
	}
	deps.Locker = locker

	// ======================================================
	// AUDIT
	// ======================================================
	sinks := []audit.Sink{audit.NewLogSink(log)}
	switch cfg.AuditSink {
	case config.AuditDB:
		db, err := c.gorm()
		if err != nil {
			return fail(err)
		}
		sinks = append(sinks, audit.NewGormSink(db))
	case config.AuditAMQP:
		sink, err := audit.NewAMQPSink(cfg.AMQPURL, cfg.AuditQueue)
		if err != nil {
			return fail(err)
		}
		sinks = append(sinks, sink)
		c.closer = append(c.closer, func() { _ = sink.Close() })
	}
	dispatcher := audit.NewDispatcher(audit.New(sinks...), log, 256)
	deps.Audit = dispatcher

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			dispatcher.Close()
			c.close()
		})
	}
	return deps, cleanup, nil
}

func newLocker(c *clients, log *logrus.Logger) (domain.Locker, error) {
	cfg := c.cfg
	switch cfg.LockBackend {
	case config.LockRedis:
		client, err := dbpkg.NewRedisClient(c.ctx, cfg)
		if err != nil {
			return nil, err
		}
		c.closer = append(c.closer, func() { _ = client.Close() })
		return lock.NewRedisLocker(client, cfg.LockTTL, cfg.LockWait, log), nil

	case config.LockDynamoDB:
		awsCfg, err := c.awsConfig()
		if err != nil {
			return nil, err
		}
		return lock.NewDynamoLocker(dbpkg.NewDynamoClient(awsCfg, cfg), cfg.LocksTable, cfg.LockTTL, cfg.LockWait, log), nil

	default:
		if cfg.Mode == config.ModeLambda {
			log.Warn("in-memory booking lock does not span concurrent lambda instances")
		}
		return lock.NewMemoryLocker(cfg.LockWait), nil
	}
}
