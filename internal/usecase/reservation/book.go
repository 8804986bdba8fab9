package reservation

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-booking/internal/audit"
	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookTableInput struct {
	TableNumber   int
	ClientName    string
	PhoneNumber   string
	Date          string
	SlotTimeStart string
	SlotTimeEnd   string
}

// TableLookup is the part of the table directory booking needs.
type TableLookup interface {
	TableExists(ctx context.Context, number int) (bool, error)
}

// ======================================================
// USE CASE
// ======================================================

type BookTable struct {
	tables TableLookup
	ledger *Ledger
	locker domain.Locker
	audit  *audit.Dispatcher
	log    logrus.FieldLogger
}

func NewBookTable(
	tables TableLookup,
	ledger *Ledger,
	locker domain.Locker,
	audit *audit.Dispatcher,
	log logrus.FieldLogger,
) *BookTable {
	return &BookTable{
		tables: tables,
		ledger: ledger,
		locker: locker,
		audit:  audit,
		log:    log,
	}
}

// Execute books the slot and returns the new reservation id. Bookings for
// the same table and date run one at a time.
func (uc *BookTable) Execute(ctx context.Context, in BookTableInput) (string, error) {
	if _, err := domain.ParseClock("slotTimeStart", in.SlotTimeStart); err != nil {
		return "", err
	}
	if _, err := domain.ParseClock("slotTimeEnd", in.SlotTimeEnd); err != nil {
		return "", err
	}

	exists, err := uc.tables.TableExists(ctx, in.TableNumber)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrTableNotFound
	}

	release, err := uc.locker.Lock(ctx, domain.LockKey(in.TableNumber, in.Date))
	if err != nil {
		return "", err
	}
	defer release()

	existing, err := uc.ledger.ListReservations(ctx)
	if err != nil {
		return "", err
	}

	for _, r := range existing {
		if r.TableNumber != in.TableNumber || r.Date != in.Date {
			continue
		}

		// A stored slot that cannot be parsed fails the booking rather than
		// being treated as free.
		overlap, err := domain.Overlaps(r.SlotTimeStart, r.SlotTimeEnd, in.SlotTimeStart, in.SlotTimeEnd)
		if err != nil {
			return "", err
		}
		if overlap {
			uc.audit.Dispatch(audit.Event{
				Action:   "reservation_conflict",
				Entity:   "reservation",
				EntityID: r.ID,
				Metadata: in,
			})
			return "", domain.ErrSlotConflict
		}
	}

	id, err := uc.ledger.InsertReservation(ctx, models.Reservation{
		TableNumber:   in.TableNumber,
		ClientName:    in.ClientName,
		PhoneNumber:   in.PhoneNumber,
		Date:          in.Date,
		SlotTimeStart: in.SlotTimeStart,
		SlotTimeEnd:   in.SlotTimeEnd,
	})
	if err != nil {
		return "", err
	}

	uc.log.WithFields(logrus.Fields{
		"reservation_id": id,
		"table_number":   in.TableNumber,
		"date":           in.Date,
	}).Info("reservation created")

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: id,
		Metadata: in,
	})

	return id, nil
}
