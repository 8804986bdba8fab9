package audit

import (
	"context"
	"encoding/json"
	"time"
)

type Event struct {
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entityId,omitempty"`
	Metadata any       `json:"metadata,omitempty"`
	At       time.Time `json:"at"`
}

// Sink persists or forwards one event.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

func metadataJSON(metadata any) string {
	if metadata == nil {
		return ""
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	return string(b)
}
