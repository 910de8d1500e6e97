// Package failurex complements failure errors with data that has to reach the
// client unchanged.
package failurex

import "errors"

// InvalidInputError keeps the rejected raw input next to the failure error it
// wraps, so kind and code checks still see the wrapped error.
type InvalidInputError struct {
	Input string
	err   error
}

func NewInvalidInputError(input string, err error) *InvalidInputError {
	return &InvalidInputError{
		Input: input,
		err:   err,
	}
}

func (e *InvalidInputError) Error() string {
	return e.err.Error()
}

func (e *InvalidInputError) Unwrap() error {
	return e.err
}

// Input returns the raw input of the first InvalidInputError in the chain.
func Input(err error) (string, bool) {
	var inputErr *InvalidInputError
	if errors.As(err, &inputErr) {
		return inputErr.Input, true
	}

	return "", false
}
