package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provenance-ledger/chaincode/provenance-ledger/events"
	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
)

// holdingSink parks the first transfer event until release is closed.
type holdingSink struct {
	mu        sync.Mutex
	transfers []ledger.ProductTransferred
	held      bool
	holding   chan struct{}
	release   chan struct{}
}

func newHoldingSink() *holdingSink {
	return &holdingSink{holding: make(chan struct{}), release: make(chan struct{})}
}

func (h *holdingSink) Publish(_ context.Context, e events.Envelope) error {
	if e.Name != ledger.EventProductTransferred {
		return nil
	}
	h.mu.Lock()
	first := !h.held
	h.held = true
	h.mu.Unlock()
	if first {
		close(h.holding)
		<-h.release
	}

	var moved ledger.ProductTransferred
	if err := json.Unmarshal(e.Payload, &moved); err != nil {
		return err
	}
	h.mu.Lock()
	h.transfers = append(h.transfers, moved)
	h.mu.Unlock()
	return nil
}

func (h *holdingSink) Close() error { return nil }

func TestEventsAreDeliveredInCommitOrder(t *testing.T) {
	sink := newHoldingSink()
	svc, err := New("admin", WithSink(sink))
	require.NoError(t, err)
	require.NoError(t, svc.Grant("admin", ledger.RoleManufacturer, "M"))

	productID, err := svc.Create("M", ledger.CreateRequest{Name: "Watch"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := svc.Transfer("M", ledger.TransferRequest{ProductID: productID, Target: "W", Status: ledger.StatusInTransit})
		assert.NoError(t, err)
	}()
	<-sink.holding

	go func() {
		defer wg.Done()
		_, err := svc.Transfer("W", ledger.TransferRequest{ProductID: productID, Target: "D", Status: ledger.StatusDelivered})
		assert.NoError(t, err)
	}()
	require.Eventually(t, func() bool {
		p, err := svc.Product(productID)
		return err == nil && p.CurrentOwner == "D"
	}, 5*time.Second, 5*time.Millisecond)

	// Give the second delivery every chance to overtake the held one.
	time.Sleep(20 * time.Millisecond)
	sink.mu.Lock()
	assert.Empty(t, sink.transfers)
	sink.mu.Unlock()

	close(sink.release)
	wg.Wait()

	require.Len(t, sink.transfers, 2)
	assert.Equal(t, ledger.Principal("W"), sink.transfers[0].To)
	assert.Equal(t, ledger.Principal("W"), sink.transfers[1].From)
	assert.Equal(t, ledger.Principal("D"), sink.transfers[1].To)
}

func TestRejectedMutationDoesNotStallDelivery(t *testing.T) {
	sink := &captureSink{}
	svc, err := New("admin", WithSink(sink))
	require.NoError(t, err)

	require.ErrorIs(t, svc.Grant("intruder", ledger.RoleManufacturer, "M"), ledger.ErrUnauthorized)
	require.NoError(t, svc.Grant("admin", ledger.RoleManufacturer, "M"))
	assert.Equal(t, []string{ledger.EventRoleGranted}, sink.names())
}
