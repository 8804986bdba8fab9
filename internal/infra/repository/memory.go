package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/domain/identity"
	"github.com/BruksfildServices01/table-booking/internal/models"
)

// TableMemoryRepository keeps tables in process memory. Used for local runs
// and as the item store double in tests.
type TableMemoryRepository struct {
	mu     sync.RWMutex
	tables map[int]models.Table
}

func NewTableMemoryRepository() *TableMemoryRepository {
	return &TableMemoryRepository{tables: make(map[int]models.Table)}
}

func (r *TableMemoryRepository) ListTables(ctx context.Context) ([]models.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Table, 0, len(r.tables))
	for _, t := range r.tables {
		out = append(out, copyTable(t))
	}
	return out, nil
}

func (r *TableMemoryRepository) GetTable(ctx context.Context, id int) (*models.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	t = copyTable(t)
	return &t, nil
}

func (r *TableMemoryRepository) PutTable(ctx context.Context, t *models.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tables[t.ID] = copyTable(*t)
	return nil
}

func copyTable(t models.Table) models.Table {
	if t.MinOrder != nil {
		v := *t.MinOrder
		t.MinOrder = &v
	}
	return t
}

// ReservationMemoryRepository lists reservations in insertion order.
type ReservationMemoryRepository struct {
	mu           sync.RWMutex
	reservations []models.Reservation
	ids          map[string]struct{}
}

func NewReservationMemoryRepository() *ReservationMemoryRepository {
	return &ReservationMemoryRepository{ids: make(map[string]struct{})}
}

func (r *ReservationMemoryRepository) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out, nil
}

func (r *ReservationMemoryRepository) PutReservation(ctx context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.ids[res.ID]; dup {
		return fmt.Errorf("reservation %s already exists", res.ID)
	}
	r.ids[res.ID] = struct{}{}
	r.reservations = append(r.reservations, *res)
	return nil
}

// UserMemoryRepository keys users by email.
type UserMemoryRepository struct {
	mu     sync.Mutex
	users  map[string]models.User
	nextID uint
}

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{users: make(map[string]models.User)}
}

func (r *UserMemoryRepository) CreateUser(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.users[u.Email]; dup {
		return identity.ErrUserExists
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.Email] = *u
	return nil
}

func (r *UserMemoryRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[email]
	if !ok {
		return nil, identity.ErrInvalidCredentials
	}
	return &u, nil
}

// Compile-time checks
var (
	_ domain.TableRepository       = (*TableMemoryRepository)(nil)
	_ domain.ReservationRepository = (*ReservationMemoryRepository)(nil)
	_ identity.UserRepository      = (*UserMemoryRepository)(nil)
)
