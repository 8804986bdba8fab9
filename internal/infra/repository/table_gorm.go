package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
	"github.com/BruksfildServices01/table-booking/internal/models"
)

type TableGormRepository struct {
	db *gorm.DB
}

func NewTableGormRepository(db *gorm.DB) *TableGormRepository {
	return &TableGormRepository{db: db}
}

func (r *TableGormRepository) ListTables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := r.db.WithContext(ctx).Find(&tables).Error; err != nil {
		return nil, httperr.Upstream("postgres", err)
	}
	return tables, nil
}

func (r *TableGormRepository) GetTable(ctx context.Context, id int) (*models.Table, error) {
	var t models.Table
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, httperr.Upstream("postgres", err)
	}
	return &t, nil
}

// PutTable upserts on the primary key so a repeated id overwrites.
func (r *TableGormRepository) PutTable(ctx context.Context, t *models.Table) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(t).Error
	return httperr.Upstream("postgres", err)
}

var _ domain.TableRepository = (*TableGormRepository)(nil)
