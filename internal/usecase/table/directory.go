package table

import (
	"context"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-booking/internal/audit"
	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateTableInput struct {
	ID       int
	Number   int
	Places   int
	IsVip    bool
	MinOrder *int
}

// ======================================================
// DIRECTORY
// ======================================================

// Directory answers questions about the restaurant's tables. Tables are
// addressed by id for storage and by number for bookings.
type Directory struct {
	repo          domain.TableRepository
	audit         *audit.Dispatcher
	log           logrus.FieldLogger
	uniqueNumbers bool
}

type Option func(*Directory)

// WithUniqueNumbers makes CreateTable refuse a number already used by a
// table with another id.
func WithUniqueNumbers() Option {
	return func(d *Directory) { d.uniqueNumbers = true }
}

func NewDirectory(repo domain.TableRepository, audit *audit.Dispatcher, log logrus.FieldLogger, opts ...Option) *Directory {
	d := &Directory{repo: repo, audit: audit, log: log}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// TableExists reports whether any stored table carries number.
func (d *Directory) TableExists(ctx context.Context, number int) (bool, error) {
	tables, err := d.repo.ListTables(ctx)
	if err != nil {
		return false, err
	}
	for _, t := range tables {
		if t.Number == number {
			return true, nil
		}
	}
	return false, nil
}

// CreateTable stores the table as given, replacing any table with the same
// id, and returns that id.
func (d *Directory) CreateTable(ctx context.Context, in CreateTableInput) (int, error) {
	if d.uniqueNumbers {
		tables, err := d.repo.ListTables(ctx)
		if err != nil {
			return 0, err
		}
		for _, t := range tables {
			if t.Number == in.Number && t.ID != in.ID {
				return 0, domain.ErrDuplicateTableNumber
			}
		}
	}

	t := &models.Table{
		ID:       in.ID,
		Number:   in.Number,
		Places:   in.Places,
		IsVip:    in.IsVip,
		MinOrder: in.MinOrder,
	}
	if err := d.repo.PutTable(ctx, t); err != nil {
		return 0, err
	}

	d.log.WithFields(logrus.Fields{"id": t.ID, "number": t.Number}).Info("table stored")
	d.audit.Dispatch(audit.Event{
		Action:   "table_created",
		Entity:   "table",
		EntityID: strconv.Itoa(t.ID),
		Metadata: map[string]any{"number": t.Number, "places": t.Places, "isVip": t.IsVip},
	})

	return t.ID, nil
}

func (d *Directory) GetTable(ctx context.Context, id int) (*models.Table, error) {
	return d.repo.GetTable(ctx, id)
}

// ListTables returns every table ordered by id.
func (d *Directory) ListTables(ctx context.Context) ([]models.Table, error) {
	tables, err := d.repo.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tables, func(i, j int) bool {
		return tables[i].ID < tables[j].ID
	})
	return tables, nil
}
