// Package ledger holds the provenance rules: role registry, raw material
// stock accounting, product registry, transfers and the history log. All
// state lives behind a State so the same rules run in-process and as
// chaincode.
package ledger

import (
	"fmt"
	"strconv"
	"strings"
)

// Principal is an opaque caller identity. The zero value is the null principal.
type Principal string

// Role is a capability grant held by a principal. End users hold no role.
type Role string

const (
	RoleRawMaterialSupplier Role = "RAW_MATERIAL_SUPPLIER"
	RoleManufacturer        Role = "MANUFACTURER"
	RoleWarehouse           Role = "WAREHOUSE"
	RoleDistributor         Role = "DISTRIBUTOR"
	RoleRetailer            Role = "RETAILER"
)

// Roles lists every assignable role in supply chain order.
var Roles = []Role{
	RoleRawMaterialSupplier,
	RoleManufacturer,
	RoleWarehouse,
	RoleDistributor,
	RoleRetailer,
}

// Valid reports whether r is one of the assignable roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRole accepts the canonical name in any case, with '-' or ' ' as separators.
func ParseRole(s string) (Role, error) {
	normalized := strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(strings.TrimSpace(s)))
	role := Role(normalized)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q: %w", s, ErrMalformedInput)
	}
	return role, nil
}

// ProductStatus is the caller-supplied lifecycle marker of a product. The
// values carry no ordering: Sold is a distinct marker, not a later stage.
type ProductStatus uint8

const (
	StatusCreated ProductStatus = iota
	StatusInTransit
	StatusInWarehouse
	StatusDelivered
	StatusSold
)

var statusNames = [...]string{"CREATED", "IN_TRANSIT", "IN_WAREHOUSE", "DELIVERED", "SOLD"}

func (s ProductStatus) Valid() bool {
	return int(s) < len(statusNames)
}

func (s ProductStatus) String() string {
	if !s.Valid() {
		return "UNKNOWN(" + strconv.Itoa(int(s)) + ")"
	}
	return statusNames[s]
}

// ParseProductStatus accepts either the numeric value or the status name.
func ParseProductStatus(s string) (ProductStatus, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		status := ProductStatus(n)
		if !status.Valid() {
			return 0, fmt.Errorf("unknown product status %d: %w", n, ErrMalformedInput)
		}
		return status, nil
	}
	normalized := strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(s))
	for i, name := range statusNames {
		if name == normalized {
			return ProductStatus(i), nil
		}
	}
	return 0, fmt.Errorf("unknown product status %q: %w", s, ErrMalformedInput)
}

// RawMaterialBatch is the immutable record of one supply event.
type RawMaterialBatch struct {
	ID             uint64    `json:"id"`
	Name           string    `json:"name"`
	Supplier       Principal `json:"supplier"`
	Owner          Principal `json:"owner"`
	Quantity       uint64    `json:"quantity"`
	CertificateRef string    `json:"certificateRef"`
	OriginLat      string    `json:"originLat"`
	OriginLong     string    `json:"originLong"`
	SuppliedAt     int64     `json:"suppliedAt"`
}

// StockBalance tracks what an owner holds of one raw material batch.
// Available always equals Received minus Consumed.
type StockBalance struct {
	Owner      Principal `json:"owner"`
	MaterialID uint64    `json:"materialId"`
	Received   uint64    `json:"received"`
	Consumed   uint64    `json:"consumed"`
	Available  uint64    `json:"available"`
}

// Product is a registered good. Only CurrentOwner and Status change after creation.
type Product struct {
	ID           uint64        `json:"id"`
	Name         string        `json:"name"`
	BatchLabel   string        `json:"batchLabel"`
	ImageRef     string        `json:"imageRef"`
	Creator      Principal     `json:"creator"`
	CurrentOwner Principal     `json:"currentOwner"`
	Status       ProductStatus `json:"status"`
	CreatedAt    int64         `json:"createdAt"`
}

// MaterialConsumption is one line of a product's composition.
type MaterialConsumption struct {
	MaterialID uint64 `json:"materialId"`
	Quantity   uint64 `json:"quantity"`
}

// HistoryEntry is one immutable point in a product's custody trail.
type HistoryEntry struct {
	ProductID uint64        `json:"productId"`
	Sequence  uint64        `json:"sequence"`
	Owner     Principal     `json:"owner"`
	Actor     Principal     `json:"actor"`
	Status    ProductStatus `json:"status"`
	Lat       string        `json:"lat"`
	Long      string        `json:"long"`
	Timestamp int64         `json:"timestamp"`
}

// Stats summarises the registries. Status counts reflect current status only.
type Stats struct {
	Materials   uint64 `json:"materials"`
	Products    uint64 `json:"products"`
	Created     uint64 `json:"created"`
	InTransit   uint64 `json:"inTransit"`
	InWarehouse uint64 `json:"inWarehouse"`
	Delivered   uint64 `json:"delivered"`
	Sold        uint64 `json:"sold"`
}

func (s *Stats) count(status ProductStatus) {
	switch status {
	case StatusCreated:
		s.Created++
	case StatusInTransit:
		s.InTransit++
	case StatusInWarehouse:
		s.InWarehouse++
	case StatusDelivered:
		s.Delivered++
	case StatusSold:
		s.Sold++
	}
}
