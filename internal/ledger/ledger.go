package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ledger tracks a single wallet over one session: the ordered, append-only
// sequence of accepted entries and the balance derived from them. The balance
// is a pure fold of the entries and never goes negative because every
// movement is validated before it is appended.
//
// Apply is the only mutation path. The ledger has no durable identity; it is
// created empty at session start and discarded when the session ends.
type Ledger struct {
	mu      sync.RWMutex
	entries []Entry
	balance int64
}

// New opens an empty session ledger with balance zero.
func New() *Ledger {
	return &Ledger{}
}

// Apply validates the proposed movement against the current balance and, on
// success, appends an entry and returns the new balance. On rejection the
// ledger is left completely unmodified and the returned error wraps
// ErrInvalidAmount or ErrInsufficientFunds. Validation and append happen
// under one lock so the non-negative balance invariant holds even when Apply
// is called from concurrent goroutines.
func (l *Ledger) Apply(kind Kind, address string, amount int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := Validate(kind, amount, l.balance); err != nil {
		return 0, err
	}

	l.entries = append(l.entries, Entry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Address:   address,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	})

	switch kind {
	case Deposit:
		l.balance += amount
	case Withdrawal:
		l.balance -= amount
	}

	return l.balance, nil
}

// Balance returns the current balance without side effects.
func (l *Ledger) Balance() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balance
}

// Len reports how many entries have been accepted this session.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
