// Package service runs the ledger in-process: one world state, one writer
// lock, metrics around every call and event delivery after commit.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/provenance-ledger/chaincode/provenance-ledger/events"
	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
	"github.com/provenance-ledger/chaincode/provenance-ledger/metrics"
	"github.com/provenance-ledger/chaincode/provenance-ledger/worldstate"
)

// Service is safe for concurrent use. Mutations are totally ordered; reads
// run in parallel with each other and see whole commits only.
type Service struct {
	store   *worldstate.Store
	ledger  *ledger.Ledger
	sink    events.Sink
	metrics *metrics.Metrics
	logger  zerolog.Logger

	// Delivery tickets are issued under the store's writer lock, so ticket
	// order is commit order. publish waits for its turn before delivering.
	issued  uint64
	turnMu  sync.Mutex
	turn    *sync.Cond
	serving uint64
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithSink sets where committed events go. Without one they are dropped.
func WithSink(sink events.Sink) Option {
	return func(s *Service) {
		s.sink = sink
	}
}

func WithLedger(l *ledger.Ledger) Option {
	return func(s *Service) {
		s.ledger = l
	}
}

func WithStore(store *worldstate.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// New creates a service administered by admin. The admin cannot be changed
// afterwards.
func New(admin ledger.Principal, opts ...Option) (*Service, error) {
	s := &Service{
		store:  worldstate.New(),
		ledger: ledger.New(),
		logger: zerolog.Nop(),
	}
	s.turn = sync.NewCond(&s.turnMu)
	for _, opt := range opts {
		opt(s)
	}
	if _, err := s.store.Update(func(tx *worldstate.Txn) error {
		return s.ledger.Init(tx, admin)
	}); err != nil {
		return nil, err
	}
	s.logger.Info().Str("admin", string(admin)).Msg("ledger initialized")
	return s, nil
}

// Close flushes and closes the event sink.
func (s *Service) Close() error {
	if s.sink == nil {
		return nil
	}
	return s.sink.Close()
}

func (s *Service) update(op string, caller ledger.Principal, fn func(*worldstate.Txn) error) error {
	start := time.Now()
	var ticket uint64
	committed, err := s.store.Update(func(tx *worldstate.Txn) error {
		if err := fn(tx); err != nil {
			return err
		}
		ticket = s.issued
		s.issued++
		return nil
	})
	s.observe(op, err, start)
	if err != nil {
		s.logRejected(op, caller, err)
		return err
	}
	s.logger.Debug().Str("op", op).Str("caller", string(caller)).Msg("ledger mutation committed")
	s.publish(ticket, committed)
	return nil
}

func (s *Service) view(op string, fn func(*worldstate.Txn) error) error {
	start := time.Now()
	err := s.store.View(fn)
	s.observe(op, err, start)
	return err
}

func (s *Service) observe(op string, err error, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(op, err, time.Since(start))
	}
}

func (s *Service) logRejected(op string, caller ledger.Principal, err error) {
	if ledger.Kind(err) == nil {
		s.logger.Error().Err(err).Str("op", op).Str("caller", string(caller)).Msg("ledger mutation failed")
		return
	}
	s.logger.Info().Err(err).Str("op", op).Str("caller", string(caller)).
		Str("outcome", metrics.Outcome(err)).Msg("ledger mutation rejected")
}

// publish runs outside the writer lock and delivers each commit's events only
// after every earlier commit has been delivered.
func (s *Service) publish(ticket uint64, committed []worldstate.Event) {
	s.turnMu.Lock()
	for s.serving != ticket {
		s.turn.Wait()
	}
	s.turnMu.Unlock()
	defer func() {
		s.turnMu.Lock()
		s.serving++
		s.turnMu.Unlock()
		s.turn.Broadcast()
	}()

	if s.sink == nil {
		return
	}
	now := time.Now().UTC()
	for _, evt := range committed {
		err := s.sink.Publish(context.Background(), events.NewEnvelope(evt.Name, evt.Payload, now))
		if s.metrics != nil {
			s.metrics.ObserveEvent(evt.Name, err)
		}
		if err != nil {
			s.logger.Warn().Err(err).Str("event", evt.Name).Msg("event delivery failed")
		}
	}
}
