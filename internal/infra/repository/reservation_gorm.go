package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
	"github.com/BruksfildServices01/table-booking/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

func (r *ReservationGormRepository) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).Find(&reservations).Error; err != nil {
		return nil, httperr.Upstream("postgres", err)
	}
	return reservations, nil
}

func (r *ReservationGormRepository) PutReservation(ctx context.Context, res *models.Reservation) error {
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.Upstream("postgres", fmt.Errorf("reservation %s already exists: %w", res.ID, err))
		}
		return httperr.Upstream("postgres", err)
	}
	return nil
}

var _ domain.ReservationRepository = (*ReservationGormRepository)(nil)
