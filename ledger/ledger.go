package ledger

// Ledger applies the provenance rules to a State. It holds no state of its
// own, only policy, so one Ledger can serve any number of stores.
type Ledger struct {
	policy TransferPolicy
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithTransferPolicy installs a validator consulted before every transfer
// commits. Without one, the ledger accepts any target and status the current
// owner asks for.
func WithTransferPolicy(p TransferPolicy) Option {
	return func(l *Ledger) {
		l.policy = p
	}
}

func New(opts ...Option) *Ledger {
	l := &Ledger{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
