package ledger

// Event names. Each mutating operation emits at most one event, which keeps
// the ledger usable on Fabric where a transaction carries a single event.
const (
	EventRoleGranted         = "RoleGranted"
	EventRoleRevoked         = "RoleRevoked"
	EventRawMaterialSupplied = "RawMaterialSupplied"
	EventProductCreated      = "ProductCreated"
	EventProductTransferred  = "ProductTransferred"
)

// RoleChanged is the payload of RoleGranted and RoleRevoked.
type RoleChanged struct {
	Role      Role      `json:"role"`
	Principal Principal `json:"principal"`
	Admin     Principal `json:"admin"`
	Timestamp int64     `json:"timestamp"`
}

type RawMaterialSupplied struct {
	MaterialID uint64    `json:"materialId"`
	Supplier   Principal `json:"supplier"`
	Target     Principal `json:"target"`
	Name       string    `json:"name"`
	Quantity   uint64    `json:"quantity"`
	Lat        string    `json:"lat"`
	Long       string    `json:"long"`
}

type ProductCreated struct {
	ProductID    uint64                `json:"productId"`
	Manufacturer Principal             `json:"manufacturer"`
	Name         string                `json:"name"`
	BatchLabel   string                `json:"batchLabel"`
	Materials    []MaterialConsumption `json:"materials"`
	Timestamp    int64                 `json:"timestamp"`
}

type ProductTransferred struct {
	ProductID uint64        `json:"productId"`
	From      Principal     `json:"from"`
	To        Principal     `json:"to"`
	Status    ProductStatus `json:"status"`
	Lat       string        `json:"lat"`
	Long      string        `json:"long"`
	Timestamp int64         `json:"timestamp"`
}
