package audit

import (
	"context"
	"errors"
)

// Logger hands every event to each configured sink.
type Logger struct {
	sinks []Sink
}

func New(sinks ...Sink) *Logger {
	return &Logger{sinks: sinks}
}

// Log writes ev to all sinks and joins their failures.
func (l *Logger) Log(ctx context.Context, ev Event) error {
	var errs []error
	for _, s := range l.sinks {
		if err := s.Write(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
