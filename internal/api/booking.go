package api

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// wireTime is the timestamp layout the booking endpoints expect.
const wireTime = time.RFC3339

// AvailableSlots fetches the slot list for a parking lot and time window.
// The window is expressed as a start time plus a whole number of hours; the
// caller is responsible for rounding partial hours up.
func (c *Client) AvailableSlots(ctx context.Context, parkingID int64, start time.Time, desiredHours int) ([]Slot, error) {
	q := url.Values{}
	q.Set("ParkingId", strconv.FormatInt(parkingID, 10))
	q.Set("StartTimeBooking", start.Format(wireTime))
	q.Set("DesireHour", strconv.Itoa(desiredHours))

	var slots []Slot
	if err := c.get(ctx, "available-slots", q, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// ExpectedPrice fetches a price quote for a parking lot, window and traffic
// type. Note the backend's historical parameter spelling "StartimeBooking".
func (c *Client) ExpectedPrice(ctx context.Context, parkingID int64, start time.Time, desiredHours, trafficID int) (*PricingQuote, error) {
	q := url.Values{}
	q.Set("ParkingId", strconv.FormatInt(parkingID, 10))
	q.Set("StartimeBooking", start.Format(wireTime))
	q.Set("DesiredHour", strconv.Itoa(desiredHours))
	q.Set("TrafficId", strconv.Itoa(trafficID))

	var quote PricingQuote
	if err := c.get(ctx, "expected-price", q, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

type BookingDTO struct {
	ParkingSlotID int64  `json:"parkingSlotId"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	DateBook      string `json:"dateBook"`
	GuestName     string `json:"guestName,omitempty"`
	GuestPhone    string `json:"guestPhone,omitempty"`
	PaymentMethod string `json:"paymentMethod"`
	VehicleInfoID int64  `json:"vehicleInforId"`
	UserID        int64  `json:"userId"`
	Notes         string `json:"notes,omitempty"`
}

type CreateBookingRequest struct {
	UserID        int64
	VehicleID     int64
	SlotID        int64
	StartTime     time.Time
	EndTime       time.Time
	PaymentMethod string
	Notes         string
}

// CreateBooking submits an authenticated booking. The stored device token
// rides along as the backend's idempotency token.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	body := struct {
		BookingDTO        BookingDTO `json:"bookingDto"`
		DeviceTokenMobile string     `json:"deviceTokenMobile"`
	}{
		BookingDTO: BookingDTO{
			ParkingSlotID: req.SlotID,
			StartTime:     req.StartTime.Format(wireTime),
			EndTime:       req.EndTime.Format(wireTime),
			DateBook:      req.StartTime.Format("2006-01-02"),
			PaymentMethod: req.PaymentMethod,
			VehicleInfoID: req.VehicleID,
			UserID:        req.UserID,
			Notes:         req.Notes,
		},
		DeviceTokenMobile: c.DeviceToken(),
	}

	var b Booking
	if err := c.post(ctx, "customer-booking", body, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

type GuestBookingRequest struct {
	ParkingID     int64  `json:"parkingId"`
	SlotID        int64  `json:"slotId"`
	GuestName     string `json:"guestName"`
	GuestPhone    string `json:"guestPhone"`
	VehiclePlate  string `json:"vehiclePlate"`
	VehicleTypeID int    `json:"vehicleTypeId"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes,omitempty"`
}

// CreateGuestBooking submits a booking without an authenticated account,
// carrying inline contact and plate details instead of a vehicle id.
func (c *Client) CreateGuestBooking(ctx context.Context, req GuestBookingRequest) (*Booking, error) {
	var b Booking
	if err := c.post(ctx, "mobile/booking/guest", req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) MyBookings(ctx context.Context) ([]Booking, error) {
	var out []Booking
	if err := c.get(ctx, "customer-booking", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CheckIn(ctx context.Context, bookingID int64) (*Booking, error) {
	return c.bookingAction(ctx, bookingID, "check-in", nil)
}

func (c *Client) CheckOut(ctx context.Context, bookingID int64) (*Booking, error) {
	return c.bookingAction(ctx, bookingID, "check-out", nil)
}

func (c *Client) RateBooking(ctx context.Context, bookingID int64, stars int, comment string) (*Booking, error) {
	body := struct {
		Stars   int    `json:"stars"`
		Comment string `json:"comment,omitempty"`
	}{Stars: stars, Comment: comment}
	return c.bookingAction(ctx, bookingID, "rate", body)
}

func (c *Client) PayBooking(ctx context.Context, bookingID int64, method string) (*Booking, error) {
	body := struct {
		PaymentMethod string `json:"paymentMethod"`
	}{PaymentMethod: method}
	return c.bookingAction(ctx, bookingID, "pay", body)
}

func (c *Client) CancelBooking(ctx context.Context, bookingID int64, reason string) (*Booking, error) {
	body := struct {
		Reason string `json:"reason,omitempty"`
	}{Reason: reason}
	return c.bookingAction(ctx, bookingID, "cancel", body)
}

func (c *Client) bookingAction(ctx context.Context, bookingID int64, action string, body any) (*Booking, error) {
	path := "customer-booking/" + strconv.FormatInt(bookingID, 10) + "/" + action
	var b Booking
	if err := c.put(ctx, path, body, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
