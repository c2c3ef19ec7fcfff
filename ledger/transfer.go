package ledger

import "fmt"

// TransferRequest moves a product to a new holder with a caller-chosen status.
type TransferRequest struct {
	ProductID uint64
	Target    Principal
	Status    ProductStatus
	Lat       string
	Long      string
}

// Transfer hands a product from its current owner to the target. Only the
// current owner may move it; there is no approval or delegation. Any target
// and status are accepted unless a TransferPolicy says otherwise, and no
// status is terminal.
func (l *Ledger) Transfer(st State, caller Principal, req TransferRequest) (*Product, error) {
	product, err := l.Product(st, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product.CurrentOwner != caller {
		return nil, fmt.Errorf("%s does not own product %d: %w", caller, product.ID, ErrUnauthorized)
	}
	if req.Target == "" {
		return nil, fmt.Errorf("product %d has no recipient: %w", product.ID, ErrInvalidTarget)
	}
	if !req.Status.Valid() {
		return nil, fmt.Errorf("status %d: %w", req.Status, ErrMalformedInput)
	}

	if l.policy != nil {
		check, err := l.transferCheck(st, product, caller, req)
		if err != nil {
			return nil, err
		}
		if err := l.policy.CheckTransfer(check); err != nil {
			return nil, fmt.Errorf("product %d to %s: %w: %v", product.ID, req.Target, ErrPolicyViolation, err)
		}
	}

	from := product.CurrentOwner
	product.CurrentOwner = req.Target
	product.Status = req.Status
	if err := putJSON(st, productKey(product.ID), product); err != nil {
		return nil, err
	}

	now := st.Timestamp().Unix()
	if err := l.appendHistory(st, HistoryEntry{
		ProductID: product.ID,
		Owner:     req.Target,
		Actor:     caller,
		Status:    req.Status,
		Lat:       req.Lat,
		Long:      req.Long,
		Timestamp: now,
	}); err != nil {
		return nil, err
	}

	return product, emit(st, EventProductTransferred, ProductTransferred{
		ProductID: product.ID,
		From:      from,
		To:        req.Target,
		Status:    req.Status,
		Lat:       req.Lat,
		Long:      req.Long,
		Timestamp: now,
	})
}

func (l *Ledger) transferCheck(st State, product *Product, caller Principal, req TransferRequest) (TransferCheck, error) {
	callerRoles, err := l.RolesOf(st, caller)
	if err != nil {
		return TransferCheck{}, err
	}
	targetRoles, err := l.RolesOf(st, req.Target)
	if err != nil {
		return TransferCheck{}, err
	}
	return TransferCheck{
		Product:     *product,
		Caller:      caller,
		CallerRoles: callerRoles,
		Target:      req.Target,
		TargetRoles: targetRoles,
		Status:      req.Status,
	}, nil
}
