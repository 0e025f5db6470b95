package ledger

import (
	"fmt"
	"math"
)

// Validate decides whether a proposed movement is admissible against the
// given balance. It is pure and deterministic: same inputs, same verdict, no
// side effects. Returned errors wrap ErrInvalidAmount or ErrInsufficientFunds
// so callers can classify them with errors.Is.
func Validate(kind Kind, amount, balance int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}

	switch kind {
	case Deposit:
		// Checked addition: a deposit that would wrap the balance is rejected
		// rather than silently overflowing.
		if balance > math.MaxInt64-amount {
			return fmt.Errorf("%w: deposit of %d overflows balance %d", ErrInvalidAmount, amount, balance)
		}
	case Withdrawal:
		if amount > balance {
			return fmt.Errorf("%w: requested %d, available %d", ErrInsufficientFunds, amount, balance)
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidAmount, int(kind))
	}

	return nil
}
