package ledger

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// State is the transactional key/value view one ledger operation runs
// against. Writes made through a State either all commit or all vanish
// when the operation returns an error. The method set matches Fabric's
// chaincode stub plus a transaction clock.
//
// Implementations need not return a transaction's own pending writes from
// GetState; a Fabric stub does not. Operations read each key before writing
// it and never read it back.
type State interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
	DelState(key string) error
	SetEvent(name string, payload []byte) error
	// Timestamp is the time of the enclosing transaction. It must be the
	// same for every read of one transaction.
	Timestamp() time.Time
}

const (
	adminKey           = "admin"
	materialCounterKey = "counter_material"
	productCounterKey  = "counter_product"
)

func roleKey(role Role) string {
	return "role_" + string(role)
}

func materialKey(id uint64) string {
	return fmt.Sprintf("material_%d", id)
}

func stockKey(materialID uint64, owner Principal) string {
	return fmt.Sprintf("stock_%d_%s", materialID, owner)
}

func productKey(id uint64) string {
	return fmt.Sprintf("product_%d", id)
}

func compositionKey(productID uint64) string {
	return fmt.Sprintf("composition_%d", productID)
}

func historyKey(productID uint64) string {
	return fmt.Sprintf("history_%d", productID)
}

func historyEntryKey(productID, seq uint64) string {
	return fmt.Sprintf("history_%d_%d", productID, seq)
}

func getJSON(st State, key string, v any) (bool, error) {
	data, err := st.GetState(key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func putJSON(st State, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := st.PutState(key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func readCounter(st State, key string) (uint64, error) {
	data, err := st.GetState(key)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if data == nil {
		return 0, nil
	}
	n, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt counter %s: %w", key, err)
	}
	return n, nil
}

// nextID allocates the next value of a counter. Callers allocate only after
// every precondition has passed so a failed operation never burns an id.
func nextID(st State, key string) (uint64, error) {
	n, err := readCounter(st, key)
	if err != nil {
		return 0, err
	}
	n++
	if err := st.PutState(key, []byte(strconv.FormatUint(n, 10))); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", key, err)
	}
	return n, nil
}

func emit(st State, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", name, err)
	}
	if err := st.SetEvent(name, data); err != nil {
		return fmt.Errorf("failed to emit %s event: %w", name, err)
	}
	return nil
}
