package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Specification errors: the caller described a hypothesis the system
	// does not recognize or left required parameters out.
	ErrInvalidSpecification = errors.New("invalid hypothesis specification")
	ErrUnknownFamily        = fmt.Errorf("%w: unknown H1 family", ErrInvalidSpecification)
	ErrMissingParameters    = fmt.Errorf("%w: missing parameters", ErrInvalidSpecification)
	ErrUnresolvableHalf     = fmt.Errorf("%w: half direction unresolvable", ErrInvalidSpecification)

	// Degenerate distributions: parameters that make a density undefined.
	ErrDegenerateDistribution = errors.New("degenerate distribution")
	ErrNonPositiveSD          = fmt.Errorf("%w: non-positive standard deviation", ErrDegenerateDistribution)
	ErrZeroWidthInterval      = fmt.Errorf("%w: zero-width uniform interval", ErrDegenerateDistribution)

	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrNotFound         = errors.New("not found")
)

// Error constructors with context
func NewSpecificationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidSpecification, reason)
}

func NewDegenerateError(reason string) error {
	return fmt.Errorf("%w: %s", ErrDegenerateDistribution, reason)
}

func NewNotFoundError(resource, id string) error {
	return fmt.Errorf("%s %s: %w", resource, id, ErrNotFound)
}

// Error checking helpers
func IsSpecificationError(err error) bool {
	return errors.Is(err, ErrInvalidSpecification)
}

func IsDegenerateError(err error) bool {
	return errors.Is(err, ErrDegenerateDistribution)
}
