package contracts

import (
	"fmt"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
)

// RoleManagementContract administers which principals may act in which role.
type RoleManagementContract struct {
	contractapi.Contract
	Ledger *ledger.Ledger

	// InitMSPID, when set, is the only organisation allowed to call InitLedger.
	InitMSPID string
}

// InitLedger fixes the administrator. With an empty admin the submitter
// becomes admin. It can only succeed once per channel.
func (r *RoleManagementContract) InitLedger(ctx contractapi.TransactionContextInterface, admin string) error {
	if r.InitMSPID != "" {
		msp, err := ctx.GetClientIdentity().GetMSPID()
		if err != nil {
			return fmt.Errorf("failed to get caller MSP: %w", err)
		}
		if msp != r.InitMSPID {
			return fmt.Errorf("members of %s may not initialize the ledger: %w", msp, ledger.ErrUnauthorized)
		}
	}
	if admin == "" {
		caller, err := callerOf(ctx)
		if err != nil {
			return err
		}
		admin = string(caller)
	}
	return engineOr(r.Ledger).Init(stateOf(ctx), ledger.Principal(admin))
}

func (r *RoleManagementContract) GetAdmin(ctx contractapi.TransactionContextInterface) (string, error) {
	admin, err := engineOr(r.Ledger).Admin(stateOf(ctx))
	return string(admin), err
}

// AssignRole grants role to principal. Admin only.
func (r *RoleManagementContract) AssignRole(ctx contractapi.TransactionContextInterface, role string, principal string) error {
	caller, err := callerOf(ctx)
	if err != nil {
		return err
	}
	parsed, err := ledger.ParseRole(role)
	if err != nil {
		return err
	}
	return engineOr(r.Ledger).Grant(stateOf(ctx), caller, parsed, ledger.Principal(principal))
}

// RevokeRole removes role from principal. Admin only.
func (r *RoleManagementContract) RevokeRole(ctx contractapi.TransactionContextInterface, role string, principal string) error {
	caller, err := callerOf(ctx)
	if err != nil {
		return err
	}
	parsed, err := ledger.ParseRole(role)
	if err != nil {
		return err
	}
	return engineOr(r.Ledger).Revoke(stateOf(ctx), caller, parsed, ledger.Principal(principal))
}

// HasRole answers false rather than failing for unknown role names.
func (r *RoleManagementContract) HasRole(ctx contractapi.TransactionContextInterface, role string, principal string) (bool, error) {
	parsed, err := ledger.ParseRole(role)
	if err != nil {
		return false, nil
	}
	return engineOr(r.Ledger).HasRole(stateOf(ctx), parsed, ledger.Principal(principal))
}

func (r *RoleManagementContract) GetRoleMembers(ctx contractapi.TransactionContextInterface, role string) ([]string, error) {
	parsed, err := ledger.ParseRole(role)
	if err != nil {
		return nil, err
	}
	members, err := engineOr(r.Ledger).Members(stateOf(ctx), parsed)
	if err != nil {
		return nil, err
	}
	return principals(members), nil
}

// GetPrincipalRoles returns an empty list for end users.
func (r *RoleManagementContract) GetPrincipalRoles(ctx contractapi.TransactionContextInterface, principal string) ([]string, error) {
	roles, err := engineOr(r.Ledger).RolesOf(stateOf(ctx), ledger.Principal(principal))
	if err != nil {
		return nil, err
	}
	return roleNames(roles), nil
}

// WhoAmI returns the principal the ledger sees for the submitter, the value
// an admin passes to AssignRole.
func (r *RoleManagementContract) WhoAmI(ctx contractapi.TransactionContextInterface) (string, error) {
	caller, err := callerOf(ctx)
	return string(caller), err
}
