package ledger

// TracedMaterial is one composition line with its batch of origin resolved.
type TracedMaterial struct {
	MaterialID uint64           `json:"materialId"`
	Quantity   uint64           `json:"quantity"`
	Batch      RawMaterialBatch `json:"batch"`
}

// Trace is the full provenance record of a product, what a buyer checks to
// tell a genuine item from a counterfeit.
type Trace struct {
	Product   Product          `json:"product"`
	Materials []TracedMaterial `json:"materials"`
	History   []HistoryEntry   `json:"history"`
}

func (l *Ledger) Trace(st State, productID uint64) (*Trace, error) {
	product, err := l.Product(st, productID)
	if err != nil {
		return nil, err
	}
	composition, err := l.Composition(st, productID)
	if err != nil {
		return nil, err
	}
	history, err := l.History(st, productID)
	if err != nil {
		return nil, err
	}

	materials := make([]TracedMaterial, 0, len(composition))
	for _, line := range composition {
		batch, err := l.Batch(st, line.MaterialID)
		if err != nil {
			return nil, err
		}
		materials = append(materials, TracedMaterial{
			MaterialID: line.MaterialID,
			Quantity:   line.Quantity,
			Batch:      *batch,
		})
	}
	return &Trace{Product: *product, Materials: materials, History: history}, nil
}

// VerifyOwner reports whether claimed is the product's current holder, as
// recorded both on the product and at the tip of its history.
func (l *Ledger) VerifyOwner(st State, productID uint64, claimed Principal) (bool, error) {
	product, err := l.Product(st, productID)
	if err != nil {
		return false, err
	}
	var log historyLog
	if _, err := getJSON(st, historyKey(productID), &log); err != nil {
		return false, err
	}
	if log.Length == 0 {
		return false, nil
	}
	var tip HistoryEntry
	if _, err := getJSON(st, historyEntryKey(productID, log.Length-1), &tip); err != nil {
		return false, err
	}
	return claimed != "" && product.CurrentOwner == claimed && tip.Owner == claimed, nil
}
