package lock

import (
	"context"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
)

// MemoryLocker serializes callers inside one process. Entries are dropped
// once nobody holds or waits on them.
type MemoryLocker struct {
	mu    sync.Mutex
	wait  time.Duration
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

func NewMemoryLocker(wait time.Duration) *MemoryLocker {
	return &MemoryLocker{wait: wait, slots: map[string]*slot{}}
}

func (l *MemoryLocker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	s, ok := l.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	l.mu.Unlock()

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case s.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-s.ch
				l.unref(key, s)
			})
		}, nil
	case <-timer.C:
		l.unref(key, s)
		return nil, domain.ErrBookingBusy
	case <-ctx.Done():
		l.unref(key, s)
		return nil, ctx.Err()
	}
}

func (l *MemoryLocker) unref(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}

var _ domain.Locker = (*MemoryLocker)(nil)
