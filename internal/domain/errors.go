package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks errors caused by the caller's input rather than by storage
var ErrInvalidInput = errors.New("invalid input")

// MaxAmount is the exclusive bound on stored money amounts (NUMERIC(18, 2))
var MaxAmount = decimal.New(1, 16)

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() error { return ErrInvalidInput }

// Invalidf builds a validation error; errors.Is(err, ErrInvalidInput) holds for it
func Invalidf(format string, args ...interface{}) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

// CheckAmount rejects amounts too large to be stored
func CheckAmount(name string, amount decimal.Decimal) error {
	if amount.Abs().GreaterThanOrEqual(MaxAmount) {
		return Invalidf("%s must be less than %s in magnitude", name, MaxAmount.String())
	}
	return nil
}
