package calc

import "errors"

var (
	// ErrFormat means the pending entry is not a number.
	ErrFormat = errors.New("invalid number")
	// ErrInsufficientOperands means the stack holds fewer values than the operation needs.
	ErrInsufficientOperands = errors.New("insufficient operands")
	// ErrDivisionByZero means the right-hand operand of a division is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnknownToken means a label does not name any keypad key.
	ErrUnknownToken = errors.New("unknown token")
)
