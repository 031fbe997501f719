package forecast

import "errors"

// Domain errors for the forecasting engine

var (
	// ErrInvalidWeights is returned when demand weights do not sum to a positive value
	ErrInvalidWeights = errors.New("invalid demand weights")

	// ErrInvalidBaseOccupancy is returned when a base occupancy is outside [0,1]
	ErrInvalidBaseOccupancy = errors.New("invalid base occupancy")

	// ErrInvalidBasePrice is returned when a base price is not positive
	ErrInvalidBasePrice = errors.New("invalid base price")

	// ErrInvalidMultiplierRange is returned when floor/ceiling multipliers are inverted or non-positive
	ErrInvalidMultiplierRange = errors.New("invalid floor/ceiling multiplier range")

	// ErrInvalidSaturationThreshold is returned when the saturation threshold is outside (0,100)
	ErrInvalidSaturationThreshold = errors.New("invalid saturation threshold")
)
