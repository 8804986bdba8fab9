package audit

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Dispatcher writes events off the request path. Audit failures never reach
// the caller.
type Dispatcher struct {
	logger *Logger
	log    logrus.FieldLogger
	queue  chan Event
	done   chan struct{}
	once   sync.Once
}

func NewDispatcher(logger *Logger, log logrus.FieldLogger, size int) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.logger.Log(ctx, ev); err != nil {
			d.log.WithError(err).WithField("action", ev.Action).Warn("audit write failed")
		}
		cancel()
	}
}

// Dispatch enqueues ev, dropping it when the buffer is full. A nil
// Dispatcher discards everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	select {
	case d.queue <- ev:
	default:
		d.log.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}

// Close drains the queue. Dispatch must not be called afterwards.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.once.Do(func() { close(d.queue) })
	<-d.done
}
