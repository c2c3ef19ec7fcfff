package contracts

import (
	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
)

// OwnershipContract answers custody questions for buyers and auditors.
// It never writes.
type OwnershipContract struct {
	contractapi.Contract
	Ledger *ledger.Ledger
}

// GetProductsByOwner lists what owner currently holds.
func (o *OwnershipContract) GetProductsByOwner(ctx contractapi.TransactionContextInterface, owner string) ([]*ledger.Product, error) {
	return engineOr(o.Ledger).ProductsByOwner(stateOf(ctx), ledger.Principal(owner))
}

// GetMyProducts lists what the submitter currently holds.
func (o *OwnershipContract) GetMyProducts(ctx contractapi.TransactionContextInterface) ([]*ledger.Product, error) {
	caller, err := callerOf(ctx)
	if err != nil {
		return nil, err
	}
	return engineOr(o.Ledger).ProductsByOwner(stateOf(ctx), caller)
}

// VerifyOwnership checks a seller's claim to hold a product.
func (o *OwnershipContract) VerifyOwnership(ctx contractapi.TransactionContextInterface, productID uint64, claimedOwner string) (bool, error) {
	return engineOr(o.Ledger).VerifyOwner(stateOf(ctx), productID, ledger.Principal(claimedOwner))
}

// TraceProduct returns the product with its resolved material batches and
// full custody trail.
func (o *OwnershipContract) TraceProduct(ctx contractapi.TransactionContextInterface, productID uint64) (*ledger.Trace, error) {
	return engineOr(o.Ledger).Trace(stateOf(ctx), productID)
}
