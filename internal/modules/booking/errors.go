package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrSlotTaken               = errors.New("slot is no longer available")
	ErrNotFound                = errors.New("booking not found")
	ErrForbidden               = errors.New("booking belongs to another user")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
	ErrNoPricing               = errors.New("no pricing rule for this vehicle type")
	ErrVehicleNotFound         = errors.New("vehicle not found")
)
