package booking

import (
	"context"

	"github.com/BruksfildServices01/table-booking/internal/models"
)

type TableRepository interface {
	// ListTables returns every stored table in no particular order.
	ListTables(ctx context.Context) ([]models.Table, error)

	// GetTable fails with ErrNotFound for an unknown id.
	GetTable(ctx context.Context, id int) (*models.Table, error)

	// PutTable stores t, replacing any table with the same id.
	PutTable(ctx context.Context, t *models.Table) error
}

type ReservationRepository interface {
	ListReservations(ctx context.Context) ([]models.Reservation, error)

	// PutReservation must not overwrite an existing id.
	PutReservation(ctx context.Context, r *models.Reservation) error
}

// Locker serializes work on a key across concurrent requests. The returned
// release func must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}
