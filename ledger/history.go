package ledger

import "fmt"

type historyLog struct {
	ProductID uint64 `json:"productId"`
	Length    uint64 `json:"length"`
}

// appendHistory is the only writer of the log. It is reached from Create and
// Transfer alone, so an entry always accompanies a real state change.
func (l *Ledger) appendHistory(st State, entry HistoryEntry) error {
	log := historyLog{ProductID: entry.ProductID}
	if _, err := getJSON(st, historyKey(entry.ProductID), &log); err != nil {
		return err
	}
	entry.Sequence = log.Length
	if err := putJSON(st, historyEntryKey(entry.ProductID, entry.Sequence), entry); err != nil {
		return err
	}
	log.Length++
	return putJSON(st, historyKey(entry.ProductID), log)
}

// History returns a product's entries in the order they were written.
func (l *Ledger) History(st State, productID uint64) ([]HistoryEntry, error) {
	if _, err := l.Product(st, productID); err != nil {
		return nil, err
	}
	var log historyLog
	if _, err := getJSON(st, historyKey(productID), &log); err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, log.Length)
	for seq := uint64(0); seq < log.Length; seq++ {
		var entry HistoryEntry
		found, err := getJSON(st, historyEntryKey(productID, seq), &entry)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("history of product %d is missing entry %d", productID, seq)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
