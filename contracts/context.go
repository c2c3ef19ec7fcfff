package contracts

import (
	"fmt"
	"time"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/provenance-ledger/chaincode/provenance-ledger/ledger"
)

// stubState lets the ledger run directly on the peer's world state. The peer
// commits a transaction's writes all-or-nothing, but GetState inside the
// transaction returns the committed value, not a pending PutState.
type stubState struct {
	shim.ChaincodeStubInterface
}

// Timestamp is the proposal timestamp, identical on every endorsing peer.
func (s stubState) Timestamp() time.Time {
	ts, err := s.GetTxTimestamp()
	if err != nil || ts == nil {
		return time.Unix(0, 0).UTC()
	}
	return ts.AsTime().UTC()
}

func stateOf(ctx contractapi.TransactionContextInterface) ledger.State {
	return stubState{ctx.GetStub()}
}

// callerOf identifies the submitter by its full X.509 identity, not just its
// MSP, so two users of one organisation are different principals.
func callerOf(ctx contractapi.TransactionContextInterface) (ledger.Principal, error) {
	id, err := ctx.GetClientIdentity().GetID()
	if err != nil {
		return "", fmt.Errorf("failed to get caller identity: %w", err)
	}
	return ledger.Principal(id), nil
}

func engineOr(l *ledger.Ledger) *ledger.Ledger {
	if l == nil {
		return ledger.New()
	}
	return l
}

func principals(in []ledger.Principal) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		out = append(out, string(p))
	}
	return out
}

func roleNames(in []ledger.Role) []string {
	out := make([]string, 0, len(in))
	for _, r := range in {
		out = append(out, string(r))
	}
	return out
}
