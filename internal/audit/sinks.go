package audit

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-booking/internal/models"
)

// ======================================================
// LOG
// ======================================================

type LogSink struct {
	log logrus.FieldLogger
}

func NewLogSink(log logrus.FieldLogger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Write(_ context.Context, ev Event) error {
	s.log.WithFields(logrus.Fields{
		"action":    ev.Action,
		"entity":    ev.Entity,
		"entity_id": ev.EntityID,
		"metadata":  metadataJSON(ev.Metadata),
	}).Info("audit")
	return nil
}

// ======================================================
// DATABASE
// ======================================================

type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Write(ctx context.Context, ev Event) error {
	row := models.AuditLog{
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metadataJSON(ev.Metadata),
		CreatedAt: ev.At,
	}
	return s.db.WithContext(ctx).Create(&row).Error
}
