package ledger

import (
	"fmt"
	"math"
)

// SupplyRequest describes one raw material delivery.
type SupplyRequest struct {
	Target         Principal
	Name           string
	Quantity       uint64
	CertificateRef string
	Lat            string
	Long           string
}

// Supply records a new raw material batch and credits the whole quantity to
// the target's stock.
func (l *Ledger) Supply(st State, caller Principal, req SupplyRequest) (uint64, error) {
	if err := l.requireRole(st, RoleRawMaterialSupplier, caller); err != nil {
		return 0, err
	}
	if req.Quantity == 0 {
		return 0, fmt.Errorf("supply of %q must be positive: %w", req.Name, ErrInvalidQuantity)
	}
	if req.Target == "" {
		return 0, fmt.Errorf("supply of %q has no recipient: %w", req.Name, ErrInvalidTarget)
	}

	id, err := nextID(st, materialCounterKey)
	if err != nil {
		return 0, err
	}
	now := st.Timestamp().Unix()

	batch := RawMaterialBatch{
		ID:             id,
		Name:           req.Name,
		Supplier:       caller,
		Owner:          req.Target,
		Quantity:       req.Quantity,
		CertificateRef: req.CertificateRef,
		OriginLat:      req.Lat,
		OriginLong:     req.Long,
		SuppliedAt:     now,
	}
	if err := putJSON(st, materialKey(id), batch); err != nil {
		return 0, err
	}

	balance, err := l.balance(st, req.Target, id)
	if err != nil {
		return 0, err
	}
	if balance.Available > math.MaxUint64-req.Quantity {
		return 0, fmt.Errorf("stock of material %d would overflow: %w", id, ErrInvalidQuantity)
	}
	balance.Received += req.Quantity
	balance.Available += req.Quantity
	if err := putJSON(st, stockKey(id, req.Target), balance); err != nil {
		return 0, err
	}

	return id, emit(st, EventRawMaterialSupplied, RawMaterialSupplied{
		MaterialID: id,
		Supplier:   caller,
		Target:     req.Target,
		Name:       req.Name,
		Quantity:   req.Quantity,
		Lat:        req.Lat,
		Long:       req.Long,
	})
}

func (l *Ledger) balance(st State, owner Principal, materialID uint64) (StockBalance, error) {
	b := StockBalance{Owner: owner, MaterialID: materialID}
	if _, err := getJSON(st, stockKey(materialID, owner), &b); err != nil {
		return StockBalance{}, err
	}
	return b, nil
}

// Stock returns what owner still holds of materialID; zero if never credited.
func (l *Ledger) Stock(st State, owner Principal, materialID uint64) (uint64, error) {
	b, err := l.balance(st, owner, materialID)
	if err != nil {
		return 0, err
	}
	return b.Available, nil
}

// Balance returns the full received/consumed record behind Stock.
func (l *Ledger) Balance(st State, owner Principal, materialID uint64) (*StockBalance, error) {
	b, err := l.balance(st, owner, materialID)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (l *Ledger) Batch(st State, materialID uint64) (*RawMaterialBatch, error) {
	if materialID == 0 {
		return nil, fmt.Errorf("material 0: %w", ErrNotFound)
	}
	var batch RawMaterialBatch
	found, err := getJSON(st, materialKey(materialID), &batch)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("material %d: %w", materialID, ErrNotFound)
	}
	return &batch, nil
}

// MaterialCount is the highest allocated material id.
func (l *Ledger) MaterialCount(st State) (uint64, error) {
	return readCounter(st, materialCounterKey)
}
