package ledger

import "errors"

var (
	// ErrInvalidAmount occurs when a proposed amount is not a positive,
	// processable quantity: zero, negative, or large enough to overflow
	// balance arithmetic.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds occurs when a withdrawal requests more than the
	// available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
