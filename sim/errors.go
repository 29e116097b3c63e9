package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned when the frame capacity is below 1.
	ErrInvalidCapacity = errors.New("invalid frame capacity")

	// ErrUnknownPolicy is returned for an unrecognized eviction policy name.
	ErrUnknownPolicy = errors.New("unknown eviction policy")
)

func validateCapacity(capacity int) error {
	if capacity < 1 {
		return fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidCapacity, capacity)
	}
	return nil
}
