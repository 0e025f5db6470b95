package ledger

import (
	"fmt"
	"time"
)

// Kind identifies the direction of a movement. There are exactly two kinds;
// the numeric sign of an amount never carries direction.
type Kind int

const (
	// Deposit adds funds to the wallet.
	Deposit Kind = iota
	// Withdrawal removes funds from the wallet.
	Withdrawal
)

// String returns the display name for the kind.
func (k Kind) String() string {
	switch k {
	case Deposit:
		return "Deposit"
	case Withdrawal:
		return "Withdrawal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entry is one accepted movement in the session ledger. Entries are immutable
// once admitted; Amount is always positive. Address is opaque metadata naming
// the wallet the movement concerns.
type Entry struct {
	ID        string
	Kind      Kind
	Address   string
	Amount    int64
	CreatedAt time.Time
}

// String formats the entry the way history and the terminal present it.
func (e Entry) String() string {
	return fmt.Sprintf("%s of %d to %s", e.Kind, e.Amount, e.Address)
}
