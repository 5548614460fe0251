package session

import "errors"

var (
	ErrInvalidWindow   = errors.New("end time must be after start time")
	ErrNoSlot          = errors.New("no slot selected")
	ErrSlotUnavailable = errors.New("slot is not available")
	ErrNoVehicle       = errors.New("no vehicle selected")
	ErrGuestIncomplete = errors.New("guest name, phone and plate are required")
	ErrNoQuote         = errors.New("no price quote available")
	ErrNotGuest        = errors.New("session is authenticated")
	ErrNotAuthed       = errors.New("session is not authenticated")

	// ErrSuperseded means a fetch finished after its inputs changed; the
	// response was discarded and the session state is untouched.
	ErrSuperseded = errors.New("response superseded by newer input")

	// ErrPricingNotReady means the pricing preconditions do not hold yet:
	// a slot must be selected, authenticated sessions need a vehicle, and
	// the time window must be valid.
	ErrPricingNotReady = errors.New("pricing preconditions not met")
)
