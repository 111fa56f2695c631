package population

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned for non-numeric, non-finite or out-of-domain inputs.
var ErrInvalidParameter = errors.New("population: invalid parameter")

// ParameterError names the offending field of a rejected parameter set.
type ParameterError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ParameterError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%v: %s %s", ErrInvalidParameter, e.Field, e.Reason)
	}
	return fmt.Sprintf("%v: %s %s (got %s)", ErrInvalidParameter, e.Field, e.Reason, e.Value)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

func invalid(field string, value any, reason string) error {
	return &ParameterError{Field: field, Value: fmt.Sprint(value), Reason: reason}
}
