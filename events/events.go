// Package events carries committed ledger events to outside subscribers such
// as indexers and dashboards. Delivery is fire-and-forget: a sink failure is
// logged and counted but never undoes the ledger change that raised it.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Envelope wraps one ledger event for delivery.
type Envelope struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Key        string          `json:"key"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// NewEnvelope stamps a fresh id and derives the partition key from the
// entity the payload is about, so events of one product stay in order.
func NewEnvelope(name string, payload []byte, at time.Time) Envelope {
	return Envelope{
		ID:         uuid.New(),
		Name:       name,
		Key:        keyOf(name, payload),
		Payload:    json.RawMessage(payload),
		OccurredAt: at,
	}
}

func keyOf(name string, payload []byte) string {
	var ref struct {
		ProductID  uint64 `json:"productId"`
		MaterialID uint64 `json:"materialId"`
		Principal  string `json:"principal"`
	}
	if err := json.Unmarshal(payload, &ref); err != nil {
		return name
	}
	switch {
	case ref.ProductID != 0:
		return "product/" + strconv.FormatUint(ref.ProductID, 10)
	case ref.MaterialID != 0:
		return "material/" + strconv.FormatUint(ref.MaterialID, 10)
	case ref.Principal != "":
		return "principal/" + ref.Principal
	}
	return name
}

// Sink receives committed events.
type Sink interface {
	Publish(ctx context.Context, e Envelope) error
	Close() error
}

// Fanout delivers to every sink and reports all failures together.
type Fanout []Sink

func (f Fanout) Publish(ctx context.Context, e Envelope) error {
	var errs []error
	for _, s := range f {
		if err := s.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) Close() error {
	var errs []error
	for _, s := range f {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogSink writes each event to a structured log.
type LogSink struct {
	logger zerolog.Logger
}

func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Publish(_ context.Context, e Envelope) error {
	s.logger.Info().
		Str("event", e.Name).
		Str("event_id", e.ID.String()).
		Str("key", e.Key).
		RawJSON("payload", e.Payload).
		Time("occurred_at", e.OccurredAt).
		Msg("ledger event")
	return nil
}

func (s *LogSink) Close() error { return nil }
