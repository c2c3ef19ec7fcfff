package ledger

import "fmt"

// CreateRequest describes a product and the raw materials it consumes.
// MaterialIDs and Quantities are parallel lists.
type CreateRequest struct {
	Name        string
	BatchLabel  string
	ImageRef    string
	MaterialIDs []uint64
	Quantities  []uint64
	Lat         string
	Long        string
}

// Create registers a product owned by the calling manufacturer and debits the
// consumed materials from the caller's stock. Every pair is checked before
// anything is written, so a rejected request debits nothing and allocates no id.
func (l *Ledger) Create(st State, caller Principal, req CreateRequest) (uint64, error) {
	if err := l.requireRole(st, RoleManufacturer, caller); err != nil {
		return 0, err
	}
	if len(req.MaterialIDs) != len(req.Quantities) {
		return 0, fmt.Errorf("%d material ids but %d quantities: %w",
			len(req.MaterialIDs), len(req.Quantities), ErrMalformedInput)
	}

	// A material listed twice draws on the same balance.
	debits := make(map[uint64]*StockBalance, len(req.MaterialIDs))
	order := make([]uint64, 0, len(req.MaterialIDs))
	composition := make([]MaterialConsumption, 0, len(req.MaterialIDs))
	for i, materialID := range req.MaterialIDs {
		qty := req.Quantities[i]
		if qty == 0 {
			return 0, fmt.Errorf("material %d at position %d has zero quantity: %w", materialID, i, ErrInvalidQuantity)
		}
		b, ok := debits[materialID]
		if !ok {
			loaded, err := l.balance(st, caller, materialID)
			if err != nil {
				return 0, err
			}
			b = &loaded
			debits[materialID] = b
			order = append(order, materialID)
		}
		if b.Available < qty {
			return 0, fmt.Errorf("material %d: need %d, have %d: %w", materialID, qty, b.Available, ErrInsufficientStock)
		}
		b.Available -= qty
		b.Consumed += qty
		composition = append(composition, MaterialConsumption{MaterialID: materialID, Quantity: qty})
	}

	id, err := nextID(st, productCounterKey)
	if err != nil {
		return 0, err
	}
	for _, materialID := range order {
		if err := putJSON(st, stockKey(materialID, caller), debits[materialID]); err != nil {
			return 0, err
		}
	}

	now := st.Timestamp().Unix()
	product := Product{
		ID:           id,
		Name:         req.Name,
		BatchLabel:   req.BatchLabel,
		ImageRef:     req.ImageRef,
		Creator:      caller,
		CurrentOwner: caller,
		Status:       StatusCreated,
		CreatedAt:    now,
	}
	if err := putJSON(st, productKey(id), product); err != nil {
		return 0, err
	}
	if err := putJSON(st, compositionKey(id), composition); err != nil {
		return 0, err
	}
	if err := l.appendHistory(st, HistoryEntry{
		ProductID: id,
		Owner:     caller,
		Actor:     caller,
		Status:    StatusCreated,
		Lat:       req.Lat,
		Long:      req.Long,
		Timestamp: now,
	}); err != nil {
		return 0, err
	}

	return id, emit(st, EventProductCreated, ProductCreated{
		ProductID:    id,
		Manufacturer: caller,
		Name:         req.Name,
		BatchLabel:   req.BatchLabel,
		Materials:    composition,
		Timestamp:    now,
	})
}

func (l *Ledger) Product(st State, productID uint64) (*Product, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product 0: %w", ErrNotFound)
	}
	var product Product
	found, err := getJSON(st, productKey(productID), &product)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	return &product, nil
}

// Composition returns the materials consumed by a product, in request order.
func (l *Ledger) Composition(st State, productID uint64) ([]MaterialConsumption, error) {
	if _, err := l.Product(st, productID); err != nil {
		return nil, err
	}
	composition := []MaterialConsumption{}
	if _, err := getJSON(st, compositionKey(productID), &composition); err != nil {
		return nil, err
	}
	return composition, nil
}

// ProductCount is the highest allocated product id.
func (l *Ledger) ProductCount(st State) (uint64, error) {
	return readCounter(st, productCounterKey)
}

// Products walks the registry in id order and keeps those match accepts.
func (l *Ledger) Products(st State, match func(*Product) bool) ([]*Product, error) {
	count, err := l.ProductCount(st)
	if err != nil {
		return nil, err
	}
	products := []*Product{}
	for id := uint64(1); id <= count; id++ {
		product, err := l.Product(st, id)
		if err != nil {
			return nil, err
		}
		if match == nil || match(product) {
			products = append(products, product)
		}
	}
	return products, nil
}

// ProductsByOwner lists the products owner currently holds.
func (l *Ledger) ProductsByOwner(st State, owner Principal) ([]*Product, error) {
	return l.Products(st, func(p *Product) bool { return p.CurrentOwner == owner })
}

func (l *Ledger) Stats(st State) (*Stats, error) {
	materials, err := l.MaterialCount(st)
	if err != nil {
		return nil, err
	}
	stats := &Stats{Materials: materials}
	products, err := l.Products(st, nil)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		stats.Products++
		stats.count(p.Status)
	}
	return stats, nil
}
