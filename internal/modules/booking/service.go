package booking

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/DucPPhan/parknow/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	bookings BookingRepository
	parkings ParkingRepository
	vehicles VehicleRepository
}

func NewService(bookings BookingRepository, parkings ParkingRepository, vehicles VehicleRepository) *Service {
	return &Service{bookings: bookings, parkings: parkings, vehicles: vehicles}
}

type CreateBookingInput struct {
	UserID        int64
	VehicleID     int64
	SlotID        int64
	StartTime     time.Time
	EndTime       time.Time
	PaymentMethod string
	Notes         string
	DeviceToken   string
}

// CreateCustomerBooking books a slot for an authenticated user. The price
// is the lot's hourly rate for the vehicle's traffic type times the
// duration rounded up to whole hours.
func (s *Service) CreateCustomerBooking(ctx context.Context, in CreateBookingInput) (*domain.Booking, error) {
	if !in.EndTime.After(in.StartTime) {
		return nil, ErrValidation
	}

	vehicle, err := s.vehicles.GetByID(ctx, in.VehicleID)
	if err != nil {
		return nil, ErrVehicleNotFound
	}
	if vehicle.UserID != in.UserID {
		return nil, ErrForbidden
	}

	b := &domain.Booking{
		UserID:        in.UserID,
		VehicleID:     vehicle.ID,
		TrafficID:     vehicle.Category.TrafficID(),
		SlotID:        in.SlotID,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		DeviceToken:   in.DeviceToken,
	}
	if err := s.placeBooking(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

type GuestBookingInput struct {
	ParkingID     int64
	SlotID        int64
	GuestName     string
	GuestPhone    string
	VehiclePlate  string
	VehicleTypeID int
	StartTime     time.Time
	EndTime       time.Time
	PaymentMethod string
	Notes         string
}

// CreateGuestBooking books a slot without an account. Contact details and
// the plate ride inline on the booking instead of a vehicle id.
func (s *Service) CreateGuestBooking(ctx context.Context, in GuestBookingInput) (*domain.Booking, error) {
	if !in.EndTime.After(in.StartTime) {
		return nil, ErrValidation
	}
	if strings.TrimSpace(in.GuestName) == "" ||
		strings.TrimSpace(in.GuestPhone) == "" ||
		strings.TrimSpace(in.VehiclePlate) == "" {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		ParkingID:     in.ParkingID,
		SlotID:        in.SlotID,
		GuestName:     strings.TrimSpace(in.GuestName),
		GuestPhone:    strings.TrimSpace(in.GuestPhone),
		GuestPlate:    strings.TrimSpace(in.VehiclePlate),
		TrafficID:     in.VehicleTypeID,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
	}
	if err := s.placeBooking(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// placeBooking runs the checks shared by both paths: the slot must exist,
// match the traffic type, and be free for the window; the lot must have a
// pricing rule for the traffic type.
func (s *Service) placeBooking(ctx context.Context, b *domain.Booking) error {
	slot, err := s.parkings.GetSlot(ctx, b.SlotID)
	if err != nil {
		return ErrNotFound
	}
	if b.ParkingID == 0 {
		b.ParkingID = slot.ParkingID
	} else if b.ParkingID != slot.ParkingID {
		return ErrValidation
	}
	if slot.TrafficID != 0 && b.TrafficID != 0 && slot.TrafficID != b.TrafficID {
		return ErrValidation
	}

	taken, err := s.bookings.SlotTaken(ctx, b.SlotID, b.StartTime, b.EndTime)
	if err != nil {
		return err
	}
	if taken {
		return ErrSlotTaken
	}

	rule, err := s.parkings.PriceFor(ctx, b.ParkingID, b.TrafficID)
	if err != nil {
		return err
	}
	if rule == nil {
		return ErrNoPricing
	}

	hours := math.Ceil(b.EndTime.Sub(b.StartTime).Hours())
	b.Total = rule.PricePerHour * hours
	b.Status = domain.BookingBooked
	b.Code = uuid.NewString()
	if b.PaymentMethod == "" {
		b.PaymentMethod = "cash"
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		// Concurrent inserts slip past SlotTaken; on PostgreSQL the
		// unique overlap index reports them as 23505.
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

func (s *Service) MyBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.GetByUser(ctx, userID)
}

func (s *Service) CheckIn(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	return s.transition(ctx, userID, bookingID, domain.BookingBooked, domain.BookingCheckedIn)
}

func (s *Service) CheckOut(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	return s.transition(ctx, userID, bookingID, domain.BookingCheckedIn, domain.BookingCompleted)
}

func (s *Service) transition(ctx context.Context, userID, bookingID int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.owned(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != from {
		return nil, ErrInvalidStatusTransition
	}

	now := time.Now()
	b.Status = to
	switch to {
	case domain.BookingCheckedIn:
		b.CheckedInAt = &now
	case domain.BookingCompleted:
		b.CheckedOutAt = &now
	case domain.BookingCancelled:
		b.CancelledAt = &now
	}

	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Cancel(ctx context.Context, userID, bookingID int64, reason string) (*domain.Booking, error) {
	b, err := s.owned(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingBooked {
		return nil, ErrInvalidStatusTransition
	}

	now := time.Now()
	b.Status = domain.BookingCancelled
	b.CancelledAt = &now
	if reason != "" {
		b.Notes = reason
	}
	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Rate attaches a 1-5 star rating to a completed booking.
func (s *Service) Rate(ctx context.Context, userID, bookingID int64, stars int, comment string) (*domain.Booking, error) {
	if stars < 1 || stars > 5 {
		return nil, ErrValidation
	}

	b, err := s.owned(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrInvalidStatusTransition
	}

	b.Rating = stars
	b.RatingComment = comment
	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Pay(ctx context.Context, userID, bookingID int64, method string) (*domain.Booking, error) {
	b, err := s.owned(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Paid {
		return nil, ErrInvalidStatusTransition
	}

	b.Paid = true
	if method != "" {
		b.PaymentMethod = method
	}
	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) owned(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, ErrNotFound
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}
