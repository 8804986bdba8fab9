package reservation

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/models"
)

// Ledger is the append-only record of reservations. It does not check
// overlaps; BookTable does.
type Ledger struct {
	repo domain.ReservationRepository
}

func NewLedger(repo domain.ReservationRepository) *Ledger {
	return &Ledger{repo: repo}
}

func (l *Ledger) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return l.repo.ListReservations(ctx)
}

// InsertReservation stores r under a fresh id and returns it. Any id already
// set on r is ignored.
func (l *Ledger) InsertReservation(ctx context.Context, r models.Reservation) (string, error) {
	r.ID = uuid.NewString()
	if err := l.repo.PutReservation(ctx, &r); err != nil {
		return "", err
	}
	return r.ID, nil
}
