package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
	"github.com/provenance-ledger/chaincode/provenance-ledger/worldstate"
)

const (
	admin    ledger.Principal = "admin"
	supplier ledger.Principal = "S"
	maker    ledger.Principal = "M"
	store    ledger.Principal = "W"
	dist     ledger.Principal = "D"
	retail   ledger.Principal = "R"
	buyer    ledger.Principal = "buyer"
)

var epoch = time.Unix(1_700_000_000, 0).UTC()

// fixture is a ledger over an in-memory world state with the usual cast of
// principals already enrolled.
type fixture struct {
	t      *testing.T
	ledger *ledger.Ledger
	state  *worldstate.Store
	events []worldstate.Event
}

func newFixture(t *testing.T, opts ...ledger.Option) *fixture {
	f := &fixture{
		t:      t,
		ledger: ledger.New(opts...),
		state:  worldstate.New(worldstate.WithClock(func() time.Time { return epoch })),
	}
	require.NoError(t, f.update(func(st ledger.State) error {
		if err := f.ledger.Init(st, admin); err != nil {
			return err
		}
		for p, role := range map[ledger.Principal]ledger.Role{
			supplier: ledger.RoleRawMaterialSupplier,
			maker:    ledger.RoleManufacturer,
			store:    ledger.RoleWarehouse,
			dist:     ledger.RoleDistributor,
			retail:   ledger.RoleRetailer,
		} {
			if err := f.ledger.Grant(st, admin, role, p); err != nil {
				return err
			}
		}
		return nil
	}))
	f.events = nil
	return f
}

func (f *fixture) update(fn func(ledger.State) error) error {
	committed, err := f.state.Update(func(tx *worldstate.Txn) error { return fn(tx) })
	f.events = committed
	return err
}

func (f *fixture) view(fn func(ledger.State) error) {
	require.NoError(f.t, f.state.View(func(tx *worldstate.Txn) error { return fn(tx) }))
}

func (f *fixture) supply(target ledger.Principal, name string, qty uint64) uint64 {
	var id uint64
	require.NoError(f.t, f.update(func(st ledger.State) error {
		var err error
		id, err = f.ledger.Supply(st, supplier, ledger.SupplyRequest{Target: target, Name: name, Quantity: qty})
		return err
	}))
	return id
}

func (f *fixture) create(caller ledger.Principal, ids, qtys []uint64) (uint64, error) {
	var id uint64
	err := f.update(func(st ledger.State) error {
		var err error
		id, err = f.ledger.Create(st, caller, ledger.CreateRequest{
			Name:        "Shirt",
			BatchLabel:  "B-1",
			MaterialIDs: ids,
			Quantities:  qtys,
			Lat:         "45.0",
			Long:        "7.6",
		})
		return err
	})
	return id, err
}

func (f *fixture) transfer(caller ledger.Principal, productID uint64, target ledger.Principal, status ledger.ProductStatus) error {
	return f.update(func(st ledger.State) error {
		_, err := f.ledger.Transfer(st, caller, ledger.TransferRequest{
			ProductID: productID,
			Target:    target,
			Status:    status,
		})
		return err
	})
}

func (f *fixture) stock(owner ledger.Principal, materialID uint64) uint64 {
	var qty uint64
	f.view(func(st ledger.State) error {
		var err error
		qty, err = f.ledger.Stock(st, owner, materialID)
		return err
	})
	return qty
}

func (f *fixture) product(id uint64) *ledger.Product {
	var p *ledger.Product
	f.view(func(st ledger.State) error {
		var err error
		p, err = f.ledger.Product(st, id)
		return err
	})
	return p
}

func (f *fixture) history(id uint64) []ledger.HistoryEntry {
	var h []ledger.HistoryEntry
	f.view(func(st ledger.State) error {
		var err error
		h, err = f.ledger.History(st, id)
		return err
	})
	return h
}

func TestSupplyCreditsTarget(t *testing.T) {
	f := newFixture(t)

	id := f.supply(maker, "Cotton", 100)

	assert.Equal(t, uint64(1), id)
	assert.Equal(t, uint64(100), f.stock(maker, 1))
	assert.Zero(t, f.stock(supplier, 1))
	require.Len(t, f.events, 1)
	assert.Equal(t, ledger.EventRawMaterialSupplied, f.events[0].Name)

	f.view(func(st ledger.State) error {
		batch, err := f.ledger.Batch(st, id)
		require.NoError(t, err)
		assert.Equal(t, "Cotton", batch.Name)
		assert.Equal(t, supplier, batch.Supplier)
		assert.Equal(t, maker, batch.Owner)
		assert.Equal(t, epoch.Unix(), batch.SuppliedAt)
		return nil
	})
}

func TestSupplyRejections(t *testing.T) {
	tests := []struct {
		name   string
		caller ledger.Principal
		req    ledger.SupplyRequest
		want   error
	}{
		{"caller without role", maker, ledger.SupplyRequest{Target: maker, Quantity: 1}, ledger.ErrUnauthorized},
		{"zero quantity", supplier, ledger.SupplyRequest{Target: maker}, ledger.ErrInvalidQuantity},
		{"null target", supplier, ledger.SupplyRequest{Quantity: 5}, ledger.ErrInvalidTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			err := f.update(func(st ledger.State) error {
				_, err := f.ledger.Supply(st, tt.caller, tt.req)
				return err
			})
			assert.ErrorIs(t, err, tt.want)
			f.view(func(st ledger.State) error {
				n, err := f.ledger.MaterialCount(st)
				assert.Zero(t, n)
				return err
			})
		})
	}
}

func TestCreateDebitsStockAndStartsHistory(t *testing.T) {
	f := newFixture(t)
	f.supply(maker, "Cotton", 100)

	id, err := f.create(maker, []uint64{1}, []uint64{10})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), id)
	assert.Equal(t, uint64(90), f.stock(maker, 1))
	history := f.history(id)
	require.Len(t, history, 1)
	assert.Equal(t, ledger.StatusCreated, history[0].Status)
	assert.Equal(t, maker, history[0].Owner)
	assert.Equal(t, "45.0", history[0].Lat)

	p := f.product(id)
	assert.Equal(t, maker, p.CurrentOwner)
	assert.Equal(t, maker, p.Creator)
	assert.Equal(t, epoch.Unix(), p.CreatedAt)
	require.Len(t, f.events, 1)
	assert.Equal(t, ledger.EventProductCreated, f.events[0].Name)
}

func TestCreateIsAllOrNothing(t *testing.T) {
	f := newFixture(t)
	f.supply(maker, "Cotton", 50)
	f.supply(maker, "Dye", 5)

	_, err := f.create(maker, []uint64{1, 2}, []uint64{20, 6})
	assert.ErrorIs(t, err, ledger.ErrInsufficientStock)
	assert.Empty(t, f.events)
	assert.Equal(t, uint64(50), f.stock(maker, 1))
	assert.Equal(t, uint64(5), f.stock(maker, 2))

	id, err := f.create(maker, []uint64{1, 2}, []uint64{20, 5})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)
}

func TestCreateCountsRepeatedMaterialAgainstOneBalance(t *testing.T) {
	f := newFixture(t)
	f.supply(maker, "Cotton", 10)

	_, err := f.create(maker, []uint64{1, 1}, []uint64{6, 6})
	assert.ErrorIs(t, err, ledger.ErrInsufficientStock)
	assert.Equal(t, uint64(10), f.stock(maker, 1))

	id, err := f.create(maker, []uint64{1, 1}, []uint64{6, 4})
	require.NoError(t, err)
	assert.Zero(t, f.stock(maker, 1))

	f.view(func(st ledger.State) error {
		composition, err := f.ledger.Composition(st, id)
		require.NoError(t, err)
		assert.Equal(t, []ledger.MaterialConsumption{{MaterialID: 1, Quantity: 6}, {MaterialID: 1, Quantity: 4}}, composition)
		balance, err := f.ledger.Balance(st, maker, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), balance.Received)
		assert.Equal(t, uint64(10), balance.Consumed)
		return nil
	})
}

func TestCreateRejections(t *testing.T) {
	tests := []struct {
		name   string
		caller ledger.Principal
		ids    []uint64
		qtys   []uint64
		want   error
	}{
		{"caller without role", supplier, []uint64{1}, []uint64{1}, ledger.ErrUnauthorized},
		{"length mismatch", maker, []uint64{1}, []uint64{1, 2}, ledger.ErrMalformedInput},
		{"zero quantity", maker, []uint64{1}, []uint64{0}, ledger.ErrInvalidQuantity},
		{"material never received", maker, []uint64{7}, []uint64{1}, ledger.ErrInsufficientStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.supply(maker, "Cotton", 10)

			_, err := f.create(tt.caller, tt.ids, tt.qtys)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, uint64(10), f.stock(maker, 1))

			id, err := f.create(maker, []uint64{1}, []uint64{1})
			require.NoError(t, err)
			assert.Equal(t, uint64(1), id, "a rejected create must not burn an id")
		})
	}
}

func TestCreateWithoutMaterials(t *testing.T) {
	f := newFixture(t)

	id, err := f.create(maker, []uint64{}, []uint64{})
	require.NoError(t, err)

	f.view(func(st ledger.State) error {
		composition, err := f.ledger.Composition(st, id)
		require.NoError(t, err)
		assert.NotNil(t, composition)
		assert.Empty(t, composition)
		return nil
	})
}

func TestTransferMovesCustody(t *testing.T) {
	f := newFixture(t)
	f.supply(maker, "Cotton", 100)
	id, err := f.create(maker, []uint64{1}, []uint64{10})
	require.NoError(t, err)

	require.NoError(t, f.transfer(maker, id, store, ledger.StatusInWarehouse))

	p := f.product(id)
	assert.Equal(t, store, p.CurrentOwner)
	assert.Equal(t, ledger.StatusInWarehouse, p.Status)
	history := f.history(id)
	require.Len(t, history, 2)
	assert.Equal(t, store, history[1].Owner)
	assert.Equal(t, maker, history[1].Actor)
	assert.Equal(t, uint64(1), history[1].Sequence)
	require.Len(t, f.events, 1)
	assert.Equal(t, ledger.EventProductTransferred, f.events[0].Name)
}

func TestTransferByNonOwnerChangesNothing(t *testing.T) {
	f := newFixture(t)
	id, err := f.create(maker, nil, nil)
	require.NoError(t, err)

	err = f.transfer(store, id, store, ledger.StatusInWarehouse)
	assert.ErrorIs(t, err, ledger.ErrUnauthorized)
	assert.Empty(t, f.events)

	p := f.product(id)
	assert.Equal(t, maker, p.CurrentOwner)
	assert.Equal(t, ledger.StatusCreated, p.Status)
	assert.Len(t, f.history(id), 1)
}

func TestTransferRejections(t *testing.T) {
	f := newFixture(t)
	id, err := f.create(maker, nil, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, f.transfer(maker, 999, store, ledger.StatusInTransit), ledger.ErrNotFound)
	assert.ErrorIs(t, f.transfer(maker, 0, store, ledger.StatusInTransit), ledger.ErrNotFound)
	assert.ErrorIs(t, f.transfer(maker, id, "", ledger.StatusInTransit), ledger.ErrInvalidTarget)
	assert.ErrorIs(t, f.transfer(maker, id, store, ledger.ProductStatus(9)), ledger.ErrMalformedInput)
	assert.Len(t, f.history(id), 1)
}

func TestSoldIsNotTerminal(t *testing.T) {
	f := newFixture(t)
	id, err := f.create(maker, nil, nil)
	require.NoError(t, err)

	require.NoError(t, f.transfer(maker, id, buyer, ledger.StatusSold))
	require.NoError(t, f.transfer(buyer, id, "collector", ledger.StatusSold))

	assert.Equal(t, ledger.Principal("collector"), f.product(id).CurrentOwner)
}

func TestGetUnallocatedProduct(t *testing.T) {
	f := newFixture(t)
	f.view(func(st ledger.State) error {
		_, err := f.ledger.Product(st, 999)
		assert.ErrorIs(t, err, ledger.ErrNotFound)
		_, err = f.ledger.History(st, 999)
		assert.ErrorIs(t, err, ledger.ErrNotFound)
		_, err = f.ledger.Composition(st, 999)
		assert.ErrorIs(t, err, ledger.ErrNotFound)
		_, err = f.ledger.Batch(st, 0)
		assert.ErrorIs(t, err, ledger.ErrNotFound)
		return nil
	})
}

func TestHistoryTracksEveryTransfer(t *testing.T) {
	f := newFixture(t)
	f.supply(maker, "Cotton", 10)
	id, err := f.create(maker, []uint64{1}, []uint64{1})
	require.NoError(t, err)

	hops := []struct {
		from, to ledger.Principal
		status   ledger.ProductStatus
	}{
		{maker, store, ledger.StatusInWarehouse},
		{store, dist, ledger.StatusInTransit},
		{dist, retail, ledger.StatusDelivered},
		{retail, buyer, ledger.StatusSold},
	}
	for i, hop := range hops {
		require.NoError(t, f.transfer(hop.from, id, hop.to, hop.status))
		// a rejected attempt in between must leave no trace
		assert.Error(t, f.transfer(hop.from, id, hop.to, hop.status))

		history := f.history(id)
		require.Len(t, history, 2+i)
		last := history[len(history)-1]
		assert.Equal(t, f.product(id).CurrentOwner, last.Owner)
		assert.Equal(t, hop.status, last.Status)
	}

	var owners []ledger.Principal
	for _, e := range f.history(id) {
		owners = append(owners, e.Owner)
	}
	assert.Equal(t, []ledger.Principal{maker, store, dist, retail, buyer}, owners)
}

func TestQueries(t *testing.T) {
	f := newFixture(t)
	f.supply(maker, "Cotton", 10)
	first, err := f.create(maker, []uint64{1}, []uint64{1})
	require.NoError(t, err)
	second, err := f.create(maker, nil, nil)
	require.NoError(t, err)
	require.NoError(t, f.transfer(maker, second, retail, ledger.StatusDelivered))

	f.view(func(st ledger.State) error {
		all, err := f.ledger.Products(st, nil)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, first, all[0].ID)

		owned, err := f.ledger.ProductsByOwner(st, retail)
		require.NoError(t, err)
		require.Len(t, owned, 1)
		assert.Equal(t, second, owned[0].ID)

		none, err := f.ledger.ProductsByOwner(st, buyer)
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)

		stats, err := f.ledger.Stats(st)
		require.NoError(t, err)
		assert.Equal(t, ledger.Stats{Materials: 1, Products: 2, Created: 1, Delivered: 1}, *stats)

		trace, err := f.ledger.Trace(st, first)
		require.NoError(t, err)
		require.Len(t, trace.Materials, 1)
		assert.Equal(t, "Cotton", trace.Materials[0].Batch.Name)
		assert.Len(t, trace.History, 1)

		ok, err := f.ledger.VerifyOwner(st, second, retail)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = f.ledger.VerifyOwner(st, second, maker)
		require.NoError(t, err)
		assert.False(t, ok)
		return nil
	})
}

func TestGrantIsIdempotent(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.update(func(st ledger.State) error {
		return f.ledger.Grant(st, admin, ledger.RoleRetailer, "R2")
	}))
	require.Len(t, f.events, 1)
	require.NoError(t, f.update(func(st ledger.State) error {
		return f.ledger.Grant(st, admin, ledger.RoleRetailer, "R2")
	}))
	assert.Empty(t, f.events)

	f.view(func(st ledger.State) error {
		members, err := f.ledger.Members(st, ledger.RoleRetailer)
		require.NoError(t, err)
		assert.Equal(t, []ledger.Principal{retail, "R2"}, members)
		return nil
	})
}

func TestRoleAdministration(t *testing.T) {
	f := newFixture(t)

	err := f.update(func(st ledger.State) error {
		return f.ledger.Grant(st, maker, ledger.RoleRetailer, maker)
	})
	assert.ErrorIs(t, err, ledger.ErrUnauthorized)

	err = f.update(func(st ledger.State) error {
		return f.ledger.Grant(st, admin, "JANITOR", maker)
	})
	assert.ErrorIs(t, err, ledger.ErrMalformedInput)

	err = f.update(func(st ledger.State) error {
		return f.ledger.Grant(st, admin, ledger.RoleRetailer, "")
	})
	assert.ErrorIs(t, err, ledger.ErrInvalidTarget)

	err = f.update(func(st ledger.State) error {
		return f.ledger.Init(st, "usurper")
	})
	assert.ErrorIs(t, err, ledger.ErrAlreadyInitialized)

	require.NoError(t, f.update(func(st ledger.State) error {
		return f.ledger.Revoke(st, admin, ledger.RoleManufacturer, maker)
	}))
	_, err = f.create(maker, nil, nil)
	assert.ErrorIs(t, err, ledger.ErrUnauthorized)

	f.view(func(st ledger.State) error {
		roles, err := f.ledger.RolesOf(st, maker)
		require.NoError(t, err)
		assert.Empty(t, roles)
		return nil
	})
}

func TestUninitializedLedger(t *testing.T) {
	l := ledger.New()
	s := worldstate.New()
	_, err := s.Update(func(tx *worldstate.Txn) error {
		return l.Grant(tx, admin, ledger.RoleRetailer, retail)
	})
	assert.ErrorIs(t, err, ledger.ErrNotInitialized)
}

func TestRoleSequencePolicy(t *testing.T) {
	f := newFixture(t, ledger.WithTransferPolicy(ledger.RoleSequencePolicy{}))
	id, err := f.create(maker, nil, nil)
	require.NoError(t, err)

	err = f.transfer(maker, id, retail, ledger.StatusDelivered)
	assert.ErrorIs(t, err, ledger.ErrPolicyViolation)
	assert.Equal(t, maker, f.product(id).CurrentOwner)

	require.NoError(t, f.transfer(maker, id, store, ledger.StatusInWarehouse))
	require.NoError(t, f.transfer(store, id, dist, ledger.StatusInTransit))

	err = f.transfer(dist, id, buyer, ledger.StatusSold)
	assert.ErrorIs(t, err, ledger.ErrPolicyViolation)

	require.NoError(t, f.transfer(dist, id, retail, ledger.StatusDelivered))
	require.NoError(t, f.transfer(retail, id, buyer, ledger.StatusSold))

	err = f.transfer(buyer, id, "collector", ledger.StatusSold)
	assert.ErrorIs(t, err, ledger.ErrPolicyViolation)
}

func TestCustomTransferPolicy(t *testing.T) {
	noSelfTransfers := ledger.TransferPolicyFunc(func(c ledger.TransferCheck) error {
		if c.Caller == c.Target {
			return errors.New("self transfer")
		}
		return nil
	})
	f := newFixture(t, ledger.WithTransferPolicy(noSelfTransfers))
	id, err := f.create(maker, nil, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, f.transfer(maker, id, maker, ledger.StatusCreated), ledger.ErrPolicyViolation)
	assert.NoError(t, f.transfer(maker, id, store, ledger.StatusInWarehouse))
}

func TestKind(t *testing.T) {
	f := newFixture(t)
	_, err := f.create(supplier, nil, nil)
	assert.Equal(t, ledger.ErrUnauthorized, ledger.Kind(err))
	assert.Nil(t, ledger.Kind(errors.New("disk on fire")))
	assert.Nil(t, ledger.Kind(nil))
}
