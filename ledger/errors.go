package ledger

import "errors"

// Every failure returned by the ledger wraps exactly one of these, so callers
// classify with errors.Is and can tell "you don't own this" from "this doesn't
// exist" from "not enough stock".
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrMalformedInput     = errors.New("malformed input")
	ErrInvalidTarget      = errors.New("invalid target")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrPolicyViolation    = errors.New("transfer policy violation")
	ErrAlreadyInitialized = errors.New("ledger already initialized")
	ErrNotInitialized     = errors.New("ledger not initialized")
)

// Kind returns the sentinel err wraps, or nil for infrastructure failures.
func Kind(err error) error {
	for _, kind := range []error{
		ErrUnauthorized,
		ErrNotFound,
		ErrInvalidQuantity,
		ErrMalformedInput,
		ErrInvalidTarget,
		ErrInsufficientStock,
		ErrPolicyViolation,
		ErrAlreadyInitialized,
		ErrNotInitialized,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
