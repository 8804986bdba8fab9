package reservation

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/table-booking/internal/audit"
	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
	"github.com/BruksfildServices01/table-booking/internal/infra/lock"
	"github.com/BruksfildServices01/table-booking/internal/infra/repository"
	"github.com/BruksfildServices01/table-booking/internal/models"
)

type staticTables map[int]bool

func (s staticTables) TableExists(_ context.Context, number int) (bool, error) {
	return s[number], nil
}

// countingReservations records how often the store is touched.
type countingReservations struct {
	*repository.ReservationMemoryRepository
	lists, puts atomic.Int32
	listDelay   time.Duration
}

func newCountingReservations() *countingReservations {
	return &countingReservations{ReservationMemoryRepository: repository.NewReservationMemoryRepository()}
}

func (c *countingReservations) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	c.lists.Add(1)
	time.Sleep(c.listDelay)
	return c.ReservationMemoryRepository.ListReservations(ctx)
}

func (c *countingReservations) PutReservation(ctx context.Context, r *models.Reservation) error {
	c.puts.Add(1)
	return c.ReservationMemoryRepository.PutReservation(ctx, r)
}

type fixture struct {
	uc    *BookTable
	store *countingReservations
	sink  *sinkRecorder
	audit *audit.Dispatcher
}

type sinkRecorder struct {
	mu      sync.Mutex
	actions []string
}

func (s *sinkRecorder) Write(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, ev.Action)
	return nil
}

func newFixture(t *testing.T, tables staticTables) *fixture {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	store := newCountingReservations()
	sink := &sinkRecorder{}
	dispatcher := audit.NewDispatcher(audit.New(sink), log, 64)

	uc := NewBookTable(tables, NewLedger(store), lock.NewMemoryLocker(2*time.Second), dispatcher, log)
	return &fixture{uc: uc, store: store, sink: sink, audit: dispatcher}
}

func booking(table int, date, start, end string) BookTableInput {
	return BookTableInput{
		TableNumber:   table,
		ClientName:    "Ann",
		PhoneNumber:   "+100",
		Date:          date,
		SlotTimeStart: start,
		SlotTimeEnd:   end,
	}
}

func TestBookTableNonOverlappingSlots(t *testing.T) {
	f := newFixture(t, staticTables{1: true})
	ctx := context.Background()

	first, err := f.uc.Execute(ctx, booking(1, "2024-05-01", "10:00", "11:00"))
	require.NoError(t, err)
	second, err := f.uc.Execute(ctx, booking(1, "2024-05-01", "11:30", "12:30"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	all, _ := f.store.ReservationMemoryRepository.ListReservations(ctx)
	assert.Len(t, all, 2)
	assert.Equal(t, "Ann", all[0].ClientName)
}

func TestBookTableConflictLeavesLedgerUnchanged(t *testing.T) {
	f := newFixture(t, staticTables{1: true})
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, booking(1, "2024-05-01", "10:00", "11:00"))
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, booking(1, "2024-05-01", "10:30", "11:30"))
	assert.ErrorIs(t, err, domain.ErrSlotConflict)
	assert.Equal(t, int32(1), f.store.puts.Load())

	f.audit.Close()
	assert.Equal(t, []string{"reservation_created", "reservation_conflict"}, f.sink.actions)
}

func TestBookTableTouchingBoundaryConflicts(t *testing.T) {
	f := newFixture(t, staticTables{1: true})
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, booking(1, "2024-05-01", "10:00", "11:00"))
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, booking(1, "2024-05-01", "11:00", "12:00"))
	assert.ErrorIs(t, err, domain.ErrSlotConflict)
}

func TestBookTableContainingSlotIsAccepted(t *testing.T) {
	f := newFixture(t, staticTables{1: true})
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, booking(1, "2024-05-01", "10:00", "11:00"))
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, booking(1, "2024-05-01", "09:00", "12:00"))
	assert.NoError(t, err)
}

func TestBookTableOtherDateOrTableIsIndependent(t *testing.T) {
	f := newFixture(t, staticTables{1: true, 2: true})
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, booking(1, "2024-05-01", "10:00", "11:00"))
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, booking(2, "2024-05-01", "10:00", "11:00"))
	assert.NoError(t, err)
	_, err = f.uc.Execute(ctx, booking(1, "2024-5-1", "10:00", "11:00"))
	assert.NoError(t, err, "dates compare as plain strings")
}

func TestBookTableUnknownTableSkipsLedger(t *testing.T) {
	f := newFixture(t, staticTables{})

	_, err := f.uc.Execute(context.Background(), booking(9, "2024-05-01", "10:00", "11:00"))

	assert.ErrorIs(t, err, domain.ErrTableNotFound)
	assert.Zero(t, f.store.lists.Load())
	assert.Zero(t, f.store.puts.Load())
}

func TestBookTableRejectsMalformedSlotBeforeIO(t *testing.T) {
	f := newFixture(t, staticTables{1: true})

	_, err := f.uc.Execute(context.Background(), booking(1, "2024-05-01", "25:00", "11:00"))

	assert.True(t, httperr.IsValidation(err))
	assert.Zero(t, f.store.lists.Load())
}

type brokenTables struct{}

func (brokenTables) TableExists(context.Context, int) (bool, error) {
	return false, httperr.Upstream("dynamodb", errors.New("timeout"))
}

func TestBookTablePropagatesStoreFailure(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	uc := NewBookTable(brokenTables{}, NewLedger(newCountingReservations()), lock.NewMemoryLocker(time.Second), nil, log)

	_, err := uc.Execute(context.Background(), booking(1, "2024-05-01", "10:00", "11:00"))
	assert.True(t, httperr.IsUpstream(err))
}

func TestBookTableConcurrentSameSlotOnlyOneWins(t *testing.T) {
	f := newFixture(t, staticTables{1: true})
	f.store.listDelay = 5 * time.Millisecond

	const n = 8
	var wins, conflicts atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Execute(context.Background(), booking(1, "2024-05-01", "19:00", "20:00"))
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, domain.ErrSlotConflict):
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(n-1), conflicts.Load())
}
