// Package session holds the client-side state of one booking flow: the
// selected time window, slot, vehicle or guest details, payment method and
// the derived price quote.
//
// The flow is an explicit state machine instead of reactive recomputation:
//
//	Idle -> SlotsLoading -> SlotsReady -> PricingLoading -> PricingReady
//	     -> Submitting -> Done | Failed
//
// Changing the time window invalidates the selected slot and the quote.
// Every fetch carries a generation number; a response that arrives after
// its inputs changed is discarded rather than overwriting fresher state.
package session

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/DucPPhan/parknow/internal/api"
)

type State int

const (
	StateIdle State = iota
	StateSlotsLoading
	StateSlotsReady
	StatePricingLoading
	StatePricingReady
	StateSubmitting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSlotsLoading:
		return "slots_loading"
	case StateSlotsReady:
		return "slots_ready"
	case StatePricingLoading:
		return "pricing_loading"
	case StatePricingReady:
		return "pricing_ready"
	case StateSubmitting:
		return "submitting"
	case StateDone:
		return "done"
	default:
		return "failed"
	}
}

// Backend is the slice of the API client the session needs. *api.Client
// satisfies it.
type Backend interface {
	AvailableSlots(ctx context.Context, parkingID int64, start time.Time, desiredHours int) ([]api.Slot, error)
	ExpectedPrice(ctx context.Context, parkingID int64, start time.Time, desiredHours, trafficID int) (*api.PricingQuote, error)
	CreateBooking(ctx context.Context, req api.CreateBookingRequest) (*api.Booking, error)
	CreateGuestBooking(ctx context.Context, req api.GuestBookingRequest) (*api.Booking, error)
}

// GuestInfo carries the inline contact details of an unauthenticated
// booking. Mutually exclusive with a selected vehicle.
type GuestInfo struct {
	Name          string
	Phone         string
	VehiclePlate  string
	VehicleTypeID int
}

func (g GuestInfo) complete() bool {
	return g.Name != "" && g.Phone != "" && g.VehiclePlate != ""
}

// Session is created when the booking screen opens and discarded when the
// user navigates away; nothing in it is persisted.
type Session struct {
	backend Backend

	mu            sync.Mutex
	state         State
	parkingID     int64
	parkingName   string
	userID        int64 // 0 for guest sessions
	start, end    time.Time
	slots         []api.Slot
	grid          Grid
	selected      *api.Slot
	vehicle       *api.Vehicle
	guest         *GuestInfo
	paymentMethod string
	notes         string
	quote         *api.PricingQuote

	slotGen  uint64
	priceGen uint64
}

// New starts a booking session for one parking lot. userID must be 0 for
// guest sessions; any other value marks the session authenticated.
func New(backend Backend, parkingID int64, parkingName string, userID int64) *Session {
	return &Session{
		backend:       backend,
		state:         StateIdle,
		parkingID:     parkingID,
		parkingName:   parkingName,
		userID:        userID,
		paymentMethod: "cash",
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Authenticated() bool { return s.userID != 0 }

func (s *Session) Window() (start, end time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start, s.end
}

// DesiredHours is the booking duration rounded up to whole hours.
func (s *Session) DesiredHours() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return desiredHours(s.start, s.end)
}

func desiredHours(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours()))
}

// SetWindow records the booking window. An invalid window is rejected and
// leaves the session untouched. A changed window clears the slot selection
// and the quote; re-applying the identical window is a no-op.
func (s *Session) SetWindow(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidWindow
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if start.Equal(s.start) && end.Equal(s.end) {
		return nil
	}
	s.start, s.end = start, end
	s.invalidateLocked()
	return nil
}

// invalidateLocked drops everything derived from the window.
func (s *Session) invalidateLocked() {
	s.selected = nil
	s.quote = nil
	s.slotGen++
	s.priceGen++
	if s.state != StateIdle {
		s.state = StateIdle
	}
}

// LoadSlots fetches the slot list for the current window. The returned set
// fully replaces the previous one and any slot selection is reset. Returns
// ErrSuperseded when the window changed while the fetch was in flight.
func (s *Session) LoadSlots(ctx context.Context) error {
	s.mu.Lock()
	if !s.end.After(s.start) {
		s.mu.Unlock()
		return ErrInvalidWindow
	}
	s.slotGen++
	gen := s.slotGen
	parkingID := s.parkingID
	start := s.start
	hours := desiredHours(s.start, s.end)
	s.state = StateSlotsLoading
	s.mu.Unlock()

	slots, err := s.backend.AvailableSlots(ctx, parkingID, start, hours)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.slotGen {
		return ErrSuperseded
	}
	if err != nil {
		s.slots = nil
		s.grid = Grid{}
		s.selected = nil
		s.quote = nil
		s.state = StateFailed
		return err
	}
	s.slots = slots
	s.grid = BuildGrid(s.slots)
	s.selected = nil
	s.quote = nil
	s.state = StateSlotsReady
	return nil
}

func (s *Session) Slots() []api.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots
}

func (s *Session) Grid() Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// SelectSlot picks a slot from the fetched set by id.
func (s *Session) SelectSlot(slotID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.slots {
		if s.slots[i].ID == slotID {
			if !s.slots[i].IsAvailable {
				return ErrSlotUnavailable
			}
			s.selected = &s.slots[i]
			s.quote = nil
			return nil
		}
	}
	return ErrNoSlot
}

func (s *Session) SelectedSlot() *api.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// SetVehicle picks the vehicle of an authenticated session.
func (s *Session) SetVehicle(v api.Vehicle) error {
	if !s.Authenticated() {
		return ErrNotAuthed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicle = &v
	s.quote = nil
	return nil
}

// SetGuest records the guest details of an unauthenticated session.
func (s *Session) SetGuest(g GuestInfo) error {
	if s.Authenticated() {
		return ErrNotGuest
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guest = &g
	s.quote = nil
	return nil
}

func (s *Session) SetPaymentMethod(method string) {
	s.mu.Lock()
	s.paymentMethod = method
	s.mu.Unlock()
}

func (s *Session) SetNotes(notes string) {
	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()
}

// trafficIDLocked resolves the traffic type id from whichever vehicle
// source is active. Both sources map to the same id domain.
func (s *Session) trafficIDLocked() (int, bool) {
	if s.userID != 0 {
		if s.vehicle == nil {
			return 0, false
		}
		return s.vehicle.TrafficID, true
	}
	if s.guest == nil {
		return 0, false
	}
	return s.guest.VehicleTypeID, true
}

// CanQuote reports whether the pricing preconditions hold: a slot is
// selected, the window is valid, and authenticated sessions have a vehicle.
func (s *Session) CanQuote() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canQuoteLocked()
}

func (s *Session) canQuoteLocked() bool {
	if s.selected == nil || !s.end.After(s.start) {
		return false
	}
	if s.userID != 0 {
		return s.vehicle != nil
	}
	return true
}

// LoadPricing fetches a price quote for the current selection. A fetch
// failure leaves the quote unset; the session is then incomplete for
// submission but slot browsing continues. Returns ErrSuperseded when the
// inputs changed while the fetch was in flight.
func (s *Session) LoadPricing(ctx context.Context) error {
	s.mu.Lock()
	if !s.canQuoteLocked() {
		s.mu.Unlock()
		return ErrPricingNotReady
	}
	trafficID, ok := s.trafficIDLocked()
	if !ok {
		// Guest sessions may not have entered vehicle details yet;
		// default to the car tariff like the original client.
		trafficID = api.TrafficCar
	}
	s.priceGen++
	gen := s.priceGen
	parkingID := s.parkingID
	start := s.start
	hours := desiredHours(s.start, s.end)
	s.state = StatePricingLoading
	s.mu.Unlock()

	quote, err := s.backend.ExpectedPrice(ctx, parkingID, start, hours, trafficID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.priceGen {
		return ErrSuperseded
	}
	if err != nil {
		s.quote = nil
		s.state = StateSlotsReady
		return err
	}
	s.quote = quote
	s.state = StatePricingReady
	return nil
}

func (s *Session) Quote() *api.PricingQuote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quote
}

// validateLocked checks everything Submit needs without touching the
// network. Exactly one of vehicle/guest info must be active.
func (s *Session) validateLocked() error {
	if s.selected == nil {
		return ErrNoSlot
	}
	if s.userID != 0 {
		if s.vehicle == nil {
			return ErrNoVehicle
		}
	} else {
		if s.guest == nil || !s.guest.complete() {
			return ErrGuestIncomplete
		}
	}
	if s.quote == nil {
		return ErrNoQuote
	}
	return nil
}

// Submit validates locally and dispatches the booking, branching on the
// login state. On success the session resets for a fresh flow; on failure
// everything is retained so the user can retry without re-entering data.
func (s *Session) Submit(ctx context.Context) (*api.Booking, error) {
	s.mu.Lock()
	if err := s.validateLocked(); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	authReq := api.CreateBookingRequest{}
	guestReq := api.GuestBookingRequest{}
	authenticated := s.userID != 0
	if authenticated {
		authReq = api.CreateBookingRequest{
			UserID:        s.userID,
			VehicleID:     s.vehicle.ID,
			SlotID:        s.selected.ID,
			StartTime:     s.start,
			EndTime:       s.end,
			PaymentMethod: s.paymentMethod,
			Notes:         s.notes,
		}
	} else {
		guestReq = api.GuestBookingRequest{
			ParkingID:     s.parkingID,
			SlotID:        s.selected.ID,
			GuestName:     s.guest.Name,
			GuestPhone:    s.guest.Phone,
			VehiclePlate:  s.guest.VehiclePlate,
			VehicleTypeID: s.guest.VehicleTypeID,
			StartTime:     s.start.Format(time.RFC3339),
			EndTime:       s.end.Format(time.RFC3339),
			PaymentMethod: s.paymentMethod,
			Notes:         s.notes,
		}
	}
	s.state = StateSubmitting
	s.mu.Unlock()

	var booking *api.Booking
	var err error
	if authenticated {
		booking, err = s.backend.CreateBooking(ctx, authReq)
	} else {
		booking, err = s.backend.CreateGuestBooking(ctx, guestReq)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		return nil, err
	}
	s.resetLocked()
	s.state = StateDone
	return booking, nil
}

// Reset clears the session back to a fresh flow for the same parking lot.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.state = StateIdle
}

func (s *Session) resetLocked() {
	s.start, s.end = time.Time{}, time.Time{}
	s.slots = nil
	s.grid = Grid{}
	s.selected = nil
	s.vehicle = nil
	s.guest = nil
	s.quote = nil
	s.notes = ""
	s.slotGen++
	s.priceGen++
}
