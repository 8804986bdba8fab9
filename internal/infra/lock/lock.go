package lock

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/table-booking/internal/domain/booking"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
)

const retryInterval = 50 * time.Millisecond

// errHeld is returned by a try func when someone else owns the key.
var errHeld = errors.New("lock held")

// acquire calls try until it succeeds, fails hard, or wait elapses.
func acquire(ctx context.Context, wait time.Duration, try func(context.Context) error) error {
	deadline := time.Now().Add(wait)

	for {
		err := try(ctx)
		switch {
		case err == nil:
			return nil
		case !errors.Is(err, errHeld):
			return httperr.Upstream("lock", err)
		}

		if time.Now().Add(retryInterval).After(deadline) {
			return domain.ErrBookingBusy
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}
