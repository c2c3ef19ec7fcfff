package ledger

import (
	"errors"
	"fmt"
)

// TransferCheck is what a TransferPolicy sees before a transfer commits.
type TransferCheck struct {
	Product     Product
	Caller      Principal
	CallerRoles []Role
	Target      Principal
	TargetRoles []Role
	Status      ProductStatus
}

// TransferPolicy decides whether a transfer the ledger would otherwise accept
// may proceed. A non-nil error rejects it.
type TransferPolicy interface {
	CheckTransfer(TransferCheck) error
}

type TransferPolicyFunc func(TransferCheck) error

func (f TransferPolicyFunc) CheckTransfer(c TransferCheck) error {
	return f(c)
}

// stage positions along the chain; end users sit after retailers.
var stages = map[Role]int{
	RoleManufacturer: 0,
	RoleWarehouse:    1,
	RoleDistributor:  2,
	RoleRetailer:     3,
}

const endUserStage = 4

// RoleSequencePolicy only lets a product move one step down the chain:
// manufacturer, warehouse, distributor, retailer, end user. Only a retailer
// may mark a product sold. It is opt-in; the ledger default is open.
type RoleSequencePolicy struct{}

func (RoleSequencePolicy) CheckTransfer(c TransferCheck) error {
	from := stagesOf(c.CallerRoles)
	if len(from) == 0 {
		return fmt.Errorf("%s holds no role that can pass products on", c.Caller)
	}
	to := stagesOf(c.TargetRoles)
	if len(to) == 0 {
		to = []int{endUserStage}
	}

	if c.Status == StatusSold && !hasRole(c.CallerRoles, RoleRetailer) {
		return errors.New("only a retailer may mark a product sold")
	}
	for _, f := range from {
		for _, t := range to {
			if t == f+1 {
				return nil
			}
		}
	}
	return fmt.Errorf("%s cannot hand over to %s out of chain order", c.Caller, c.Target)
}

func stagesOf(roles []Role) []int {
	var out []int
	for _, r := range roles {
		if s, ok := stages[r]; ok {
			out = append(out, s)
		}
	}
	return out
}

func hasRole(roles []Role, role Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
