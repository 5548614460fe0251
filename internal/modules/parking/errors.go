package parking

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("parking lot not found")
	ErrNoPricing  = errors.New("no pricing rule for this vehicle type")
)
