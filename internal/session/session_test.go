package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DucPPhan/parknow/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) AvailableSlots(ctx context.Context, parkingID int64, start time.Time, desiredHours int) ([]api.Slot, error) {
	args := m.Called(ctx, parkingID, start, desiredHours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Slot), args.Error(1)
}

func (m *MockBackend) ExpectedPrice(ctx context.Context, parkingID int64, start time.Time, desiredHours, trafficID int) (*api.PricingQuote, error) {
	args := m.Called(ctx, parkingID, start, desiredHours, trafficID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.PricingQuote), args.Error(1)
}

func (m *MockBackend) CreateBooking(ctx context.Context, req api.CreateBookingRequest) (*api.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Booking), args.Error(1)
}

func (m *MockBackend) CreateGuestBooking(ctx context.Context, req api.GuestBookingRequest) (*api.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Booking), args.Error(1)
}

var (
	start = time.Date(2025, 1, 1, 14, 0, 0, 0, time.UTC)
	end   = time.Date(2025, 1, 1, 16, 0, 0, 0, time.UTC)
)

func twoSlots() []api.Slot {
	return []api.Slot{
		{ID: 1, Label: "A1", RowIndex: 0, ColumnIndex: 0, IsAvailable: true, TrafficID: api.TrafficCar},
		{ID: 2, Label: "A3", RowIndex: 0, ColumnIndex: 2, IsAvailable: true, TrafficID: api.TrafficCar},
	}
}

func TestSetWindow_Invalid(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 7)

	assert.ErrorIs(t, sess.SetWindow(end, start), ErrInvalidWindow)
	assert.ErrorIs(t, sess.SetWindow(start, start), ErrInvalidWindow)

	// Without a valid window no slot fetch may happen.
	assert.ErrorIs(t, sess.LoadSlots(context.Background()), ErrInvalidWindow)
	backend.AssertNotCalled(t, "AvailableSlots", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoadSlots_DesiredHoursRoundsUp(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 7)

	// Exactly two hours stays two.
	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(twoSlots(), nil).Once()
	require.NoError(t, sess.SetWindow(start, end))
	require.NoError(t, sess.LoadSlots(context.Background()))

	// 90 minutes rounds up to two.
	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(twoSlots(), nil).Once()
	require.NoError(t, sess.SetWindow(start, start.Add(90*time.Minute)))
	require.NoError(t, sess.LoadSlots(context.Background()))

	assert.Equal(t, StateSlotsReady, sess.State())
	backend.AssertExpectations(t)
}

func TestLoadSlots_ReplacesSetAndResetsSelection(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 7)
	require.NoError(t, sess.SetWindow(start, end))

	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(twoSlots(), nil).Once()
	require.NoError(t, sess.LoadSlots(context.Background()))
	require.NoError(t, sess.SelectSlot(1))
	require.NotNil(t, sess.SelectedSlot())

	// A re-fetch fully supersedes the old set; nothing stays selected.
	replacement := []api.Slot{{ID: 9, Label: "B1", IsAvailable: true}}
	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(replacement, nil).Once()
	require.NoError(t, sess.LoadSlots(context.Background()))

	assert.Nil(t, sess.SelectedSlot())
	assert.Len(t, sess.Slots(), 1)
	assert.Equal(t, int64(9), sess.Slots()[0].ID)
}

func TestLoadSlots_FailureLeavesEmptySet(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 7)
	require.NoError(t, sess.SetWindow(start, end))

	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).
		Return(nil, errors.New("boom")).Once()

	assert.Error(t, sess.LoadSlots(context.Background()))
	assert.Empty(t, sess.Slots())
	assert.Equal(t, StateFailed, sess.State())
}

func TestLoadSlots_FailureClearsQuote(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 0)
	require.NoError(t, sess.SetWindow(start, end))

	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(twoSlots(), nil).Once()
	require.NoError(t, sess.LoadSlots(context.Background()))
	require.NoError(t, sess.SelectSlot(1))
	require.NoError(t, sess.SetGuest(GuestInfo{Name: "An", Phone: "090", VehiclePlate: "51A-123", VehicleTypeID: api.TrafficCar}))

	backend.On("ExpectedPrice", mock.Anything, int64(42), start, 2, api.TrafficCar).
		Return(&api.PricingQuote{Amount: 40000}, nil).Once()
	require.NoError(t, sess.LoadPricing(context.Background()))
	require.NotNil(t, sess.Quote())

	// A failed re-fetch drops the slot the quote was priced for, so the
	// quote must go with it.
	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).
		Return(nil, errors.New("boom")).Once()
	require.Error(t, sess.LoadSlots(context.Background()))

	assert.Nil(t, sess.SelectedSlot())
	assert.Nil(t, sess.Quote())
}

func TestWindowChange_ClearsSelectionAndQuote(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 0)
	require.NoError(t, sess.SetWindow(start, end))

	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(twoSlots(), nil).Once()
	require.NoError(t, sess.LoadSlots(context.Background()))
	require.NoError(t, sess.SelectSlot(1))
	require.NoError(t, sess.SetGuest(GuestInfo{Name: "An", Phone: "090", VehiclePlate: "51A-123", VehicleTypeID: api.TrafficCar}))

	backend.On("ExpectedPrice", mock.Anything, int64(42), start, 2, api.TrafficCar).
		Return(&api.PricingQuote{Amount: 40000}, nil).Once()
	require.NoError(t, sess.LoadPricing(context.Background()))
	require.NotNil(t, sess.Quote())

	// Changing the window invalidates both the slot and the quote.
	require.NoError(t, sess.SetWindow(start.Add(time.Hour), end.Add(time.Hour)))
	assert.Nil(t, sess.SelectedSlot())
	assert.Nil(t, sess.Quote())
}

func TestWindowChange_SameWindowIsNoOp(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 0)
	require.NoError(t, sess.SetWindow(start, end))

	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(twoSlots(), nil).Once()
	require.NoError(t, sess.LoadSlots(context.Background()))
	require.NoError(t, sess.SelectSlot(1))

	// Re-applying the identical window must not invalidate anything.
	require.NoError(t, sess.SetWindow(start, end))
	assert.NotNil(t, sess.SelectedSlot())
}

func TestLoadSlots_SupersededResponseDiscarded(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 7)
	require.NoError(t, sess.SetWindow(start, end))

	newStart, newEnd := start.Add(time.Hour), end.Add(time.Hour)

	// The window changes while the fetch is in flight; the late response
	// must not overwrite state belonging to the newer window.
	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).
		Run(func(args mock.Arguments) {
			require.NoError(t, sess.SetWindow(newStart, newEnd))
		}).
		Return(twoSlots(), nil).Once()

	assert.ErrorIs(t, sess.LoadSlots(context.Background()), ErrSuperseded)
	assert.Empty(t, sess.Slots())
}

func TestLoadPricing_GateConditions(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 7) // authenticated
	require.NoError(t, sess.SetWindow(start, end))

	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(twoSlots(), nil)
	require.NoError(t, sess.LoadSlots(context.Background()))

	// No slot selected: not ready.
	assert.False(t, sess.CanQuote())
	assert.ErrorIs(t, sess.LoadPricing(context.Background()), ErrPricingNotReady)

	// Slot but no vehicle on an authenticated session: still not ready.
	require.NoError(t, sess.SelectSlot(1))
	assert.False(t, sess.CanQuote())
	assert.ErrorIs(t, sess.LoadPricing(context.Background()), ErrPricingNotReady)
	backend.AssertNotCalled(t, "ExpectedPrice", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	// Vehicle selected: the fetch goes out with the vehicle's traffic type.
	require.NoError(t, sess.SetVehicle(api.Vehicle{ID: 3, TrafficID: api.TrafficMotorcycle}))
	backend.On("ExpectedPrice", mock.Anything, int64(42), start, 2, api.TrafficMotorcycle).
		Return(&api.PricingQuote{Amount: 10000}, nil).Once()
	require.NoError(t, sess.LoadPricing(context.Background()))
	assert.Equal(t, 10000.0, sess.Quote().Amount)
	assert.Equal(t, StatePricingReady, sess.State())
}

func TestLoadPricing_GuestNeedsOnlySlot(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 0) // guest
	require.NoError(t, sess.SetWindow(start, end))

	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(twoSlots(), nil)
	require.NoError(t, sess.LoadSlots(context.Background()))
	require.NoError(t, sess.SelectSlot(1))

	assert.True(t, sess.CanQuote())

	// No guest details yet: the fetch falls back to the car tariff.
	backend.On("ExpectedPrice", mock.Anything, int64(42), start, 2, api.TrafficCar).
		Return(&api.PricingQuote{Amount: 40000}, nil).Once()
	require.NoError(t, sess.LoadPricing(context.Background()))
	backend.AssertExpectations(t)
}

func TestLoadPricing_FailureLeavesQuoteUnset(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 0)
	require.NoError(t, sess.SetWindow(start, end))

	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(twoSlots(), nil)
	require.NoError(t, sess.LoadSlots(context.Background()))
	require.NoError(t, sess.SelectSlot(1))

	backend.On("ExpectedPrice", mock.Anything, int64(42), start, 2, api.TrafficCar).
		Return(nil, errors.New("boom")).Once()

	assert.Error(t, sess.LoadPricing(context.Background()))
	assert.Nil(t, sess.Quote())
	// Browsing continues; the session is merely incomplete for submission.
	assert.Equal(t, StateSlotsReady, sess.State())
}

func TestLoadPricing_SupersededResponseDiscarded(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 0)
	require.NoError(t, sess.SetWindow(start, end))

	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(twoSlots(), nil)
	require.NoError(t, sess.LoadSlots(context.Background()))
	require.NoError(t, sess.SelectSlot(1))

	backend.On("ExpectedPrice", mock.Anything, int64(42), start, 2, api.TrafficCar).
		Run(func(args mock.Arguments) {
			require.NoError(t, sess.SetWindow(start.Add(time.Hour), end.Add(2*time.Hour)))
		}).
		Return(&api.PricingQuote{Amount: 40000}, nil).Once()

	assert.ErrorIs(t, sess.LoadPricing(context.Background()), ErrSuperseded)
	assert.Nil(t, sess.Quote())
}

func TestSubmit_LocalValidation(t *testing.T) {
	backend := new(MockBackend)

	// No slot selected.
	sess := New(backend, 42, "Riverside Lot", 7)
	_, err := sess.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNoSlot)

	// Authenticated without a vehicle.
	require.NoError(t, sess.SetWindow(start, end))
	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(twoSlots(), nil)
	require.NoError(t, sess.LoadSlots(context.Background()))
	require.NoError(t, sess.SelectSlot(1))
	_, err = sess.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNoVehicle)

	backend.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	backend.AssertNotCalled(t, "CreateGuestBooking", mock.Anything, mock.Anything)
}

func TestSubmit_GuestMissingPhoneBlocked(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 0)
	require.NoError(t, sess.SetWindow(start, end))

	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(twoSlots(), nil)
	require.NoError(t, sess.LoadSlots(context.Background()))
	require.NoError(t, sess.SelectSlot(1))
	require.NoError(t, sess.SetGuest(GuestInfo{Name: "An", Phone: "", VehiclePlate: "51A-123"}))

	_, err := sess.Submit(context.Background())
	assert.ErrorIs(t, err, ErrGuestIncomplete)
	backend.AssertNotCalled(t, "CreateGuestBooking", mock.Anything, mock.Anything)
}

func TestSubmit_AuthenticatedBranch(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 7)
	require.NoError(t, sess.SetWindow(start, end))

	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(twoSlots(), nil)
	require.NoError(t, sess.LoadSlots(context.Background()))
	require.NoError(t, sess.SelectSlot(2))
	require.NoError(t, sess.SetVehicle(api.Vehicle{ID: 3, TrafficID: api.TrafficCar}))

	backend.On("ExpectedPrice", mock.Anything, int64(42), start, 2, api.TrafficCar).
		Return(&api.PricingQuote{Amount: 40000}, nil)
	require.NoError(t, sess.LoadPricing(context.Background()))

	backend.On("CreateBooking", mock.Anything, mock.MatchedBy(func(req api.CreateBookingRequest) bool {
		return req.UserID == 7 && req.VehicleID == 3 && req.SlotID == 2 &&
			req.StartTime.Equal(start) && req.EndTime.Equal(end)
	})).Return(&api.Booking{ID: 99}, nil).Once()

	b, err := sess.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(99), b.ID)
	assert.Equal(t, StateDone, sess.State())
	// The session tears down after a successful submission.
	assert.Nil(t, sess.SelectedSlot())
	assert.Nil(t, sess.Quote())
	backend.AssertNotCalled(t, "CreateGuestBooking", mock.Anything, mock.Anything)
}

func TestSubmit_GuestBranch(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 0)
	require.NoError(t, sess.SetWindow(start, end))

	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(twoSlots(), nil)
	require.NoError(t, sess.LoadSlots(context.Background()))
	require.NoError(t, sess.SelectSlot(1))
	require.NoError(t, sess.SetGuest(GuestInfo{
		Name: "An", Phone: "0901234567", VehiclePlate: "51A-123", VehicleTypeID: api.TrafficMotorcycle,
	}))

	backend.On("ExpectedPrice", mock.Anything, int64(42), start, 2, api.TrafficMotorcycle).
		Return(&api.PricingQuote{Amount: 10000}, nil)
	require.NoError(t, sess.LoadPricing(context.Background()))

	backend.On("CreateGuestBooking", mock.Anything, mock.MatchedBy(func(req api.GuestBookingRequest) bool {
		return req.ParkingID == 42 && req.SlotID == 1 &&
			req.GuestName == "An" && req.GuestPhone == "0901234567" &&
			req.VehiclePlate == "51A-123" && req.VehicleTypeID == api.TrafficMotorcycle
	})).Return(&api.Booking{ID: 100}, nil).Once()

	_, err := sess.Submit(context.Background())
	require.NoError(t, err)
	backend.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestSubmit_FailureRetainsSessionForRetry(t *testing.T) {
	backend := new(MockBackend)
	sess := New(backend, 42, "Riverside Lot", 0)
	require.NoError(t, sess.SetWindow(start, end))

	backend.On("AvailableSlots", mock.Anything, int64(42), start, 2).Return(twoSlots(), nil)
	require.NoError(t, sess.LoadSlots(context.Background()))
	require.NoError(t, sess.SelectSlot(1))
	require.NoError(t, sess.SetGuest(GuestInfo{
		Name: "An", Phone: "0901234567", VehiclePlate: "51A-123", VehicleTypeID: api.TrafficCar,
	}))
	backend.On("ExpectedPrice", mock.Anything, int64(42), start, 2, api.TrafficCar).
		Return(&api.PricingQuote{Amount: 40000}, nil)
	require.NoError(t, sess.LoadPricing(context.Background()))

	backend.On("CreateGuestBooking", mock.Anything, mock.Anything).
		Return(nil, errors.New("slot is no longer available")).Once()

	_, err := sess.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateFailed, sess.State())
	// Everything is retained so the user can retry without re-entering.
	assert.NotNil(t, sess.SelectedSlot())
	assert.NotNil(t, sess.Quote())

	backend.On("CreateGuestBooking", mock.Anything, mock.Anything).
		Return(&api.Booking{ID: 101}, nil).Once()
	b, err := sess.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(101), b.ID)
}
