// Package worldstate is an in-process key/value world state with the same
// commit semantics as a Fabric peer: a transaction's writes and events become
// visible together when it succeeds and are discarded when it fails.
package worldstate

import (
	"errors"
	"sync"
	"time"
)

// ErrReadOnly is returned by writes attempted inside View.
var ErrReadOnly = errors.New("write in read-only transaction")

// Event is a chaincode-style event raised by a committed transaction.
type Event struct {
	Name    string
	Payload []byte
}

// Store serialises writers behind one lock. Readers share the lock and always
// observe the state between two commits, never part of one.
type Store struct {
	mu    sync.RWMutex
	data  map[string][]byte
	clock func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the source of transaction timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		data:  make(map[string][]byte),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Update runs fn as a single read-write transaction. When fn returns nil its
// writes are applied and its events returned; otherwise nothing changes.
func (s *Store) Update(fn func(*Txn) error) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.begin(false)
	if err := fn(tx); err != nil {
		return nil, err
	}
	for key, value := range tx.writes {
		if value == nil {
			delete(s.data, key)
			continue
		}
		s.data[key] = value
	}
	return tx.events, nil
}

// View runs fn against a consistent snapshot. Writes fail with ErrReadOnly.
func (s *Store) View(fn func(*Txn) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.begin(true))
}

func (s *Store) begin(readOnly bool) *Txn {
	return &Txn{
		store:    s,
		readOnly: readOnly,
		now:      s.clock().UTC(),
		writes:   make(map[string][]byte),
	}
}

// Txn is the State handed to one transaction. It must not be retained after
// the Update or View call that created it returns.
type Txn struct {
	store    *Store
	readOnly bool
	now      time.Time
	writes   map[string][]byte
	events   []Event
}

// GetState sees the transaction's own pending writes first.
func (t *Txn) GetState(key string) ([]byte, error) {
	if value, ok := t.writes[key]; ok {
		return clone(value), nil
	}
	return clone(t.store.data[key]), nil
}

func (t *Txn) PutState(key string, value []byte) error {
	if t.readOnly {
		return ErrReadOnly
	}
	if key == "" {
		return errors.New("empty key")
	}
	if value == nil {
		value = []byte{}
	}
	t.writes[key] = clone(value)
	return nil
}

func (t *Txn) DelState(key string) error {
	if t.readOnly {
		return ErrReadOnly
	}
	t.writes[key] = nil
	return nil
}

func (t *Txn) SetEvent(name string, payload []byte) error {
	if t.readOnly {
		return ErrReadOnly
	}
	if name == "" {
		return errors.New("event name must not be empty")
	}
	t.events = append(t.events, Event{Name: name, Payload: clone(payload)})
	return nil
}

func (t *Txn) Timestamp() time.Time {
	return t.now
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
