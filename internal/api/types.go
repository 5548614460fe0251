package api

import (
	"encoding/json"
	"time"
)

// Traffic type ids shared between the vehicle catalog and the pricing
// engine. Guest bookings resolve their vehicle category to the same domain.
const (
	TrafficMotorcycle = 1
	TrafficCar        = 2
)

type Profile struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type Parking struct {
	ID          int64   `json:"parkingId"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	TotalSlots  int     `json:"totalSlots"`
	OpenSlots   int     `json:"openSlots"`
	PricePerHr  float64 `json:"pricePerHour"`
	Rating      float64 `json:"rating"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Slot is one physical parking space addressed by its row/column position
// within the lot layout.
type Slot struct {
	ID          int64  `json:"parkingSlotId"`
	Label       string `json:"name"`
	RowIndex    int    `json:"rowIndex"`
	ColumnIndex int    `json:"columnIndex"`
	IsAvailable bool   `json:"isAvailable"`
	FloorID     int64  `json:"floorId"`
	TrafficID   int    `json:"trafficId"`
}

type Vehicle struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Plate     string `json:"plate"`
	Category  string `json:"category"` // "car" or "motorcycle"
	TrafficID int    `json:"trafficId"`
	IsDefault bool   `json:"isDefault"`
}

type FavoriteAddress struct {
	ID        int64   `json:"id"`
	Label     string  `json:"label"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type BookingStatus string

const (
	BookingBooked    BookingStatus = "booked"
	BookingCheckedIn BookingStatus = "checked_in"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID            int64         `json:"id"`
	Code          string        `json:"code,omitempty"`
	ParkingID     int64         `json:"parkingId"`
	ParkingName   string        `json:"parkingName,omitempty"`
	SlotID        int64         `json:"parkingSlotId"`
	SlotLabel     string        `json:"slotName,omitempty"`
	StartTime     time.Time     `json:"startTime"`
	EndTime       time.Time     `json:"endTime"`
	Total         float64       `json:"total"`
	Status        BookingStatus `json:"status"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	Paid          bool          `json:"paid"`
	GuestName     string        `json:"guestName,omitempty"`
	GuestPhone    string        `json:"guestPhone,omitempty"`
	Rating        int           `json:"rating,omitempty"`
	CheckedInAt   *time.Time    `json:"checkedInAt,omitempty"`
	CheckedOutAt  *time.Time    `json:"checkedOutAt,omitempty"`
}

// PricingQuote is the backend's estimated cost for a slot, vehicle type and
// duration. The response field carrying the amount has drifted across
// backend versions (amount, price, totalPrice, or a bare number), so
// decoding accepts all of them; first present wins, missing means 0.
type PricingQuote struct {
	Amount    float64            `json:"amount"`
	Breakdown map[string]float64 `json:"breakdown,omitempty"`
}

func (q *PricingQuote) UnmarshalJSON(data []byte) error {
	// A bare number is the oldest backend shape.
	var raw float64
	if err := json.Unmarshal(data, &raw); err == nil {
		q.Amount = raw
		return nil
	}

	var obj struct {
		Amount     *float64           `json:"amount"`
		Price      *float64           `json:"price"`
		TotalPrice *float64           `json:"totalPrice"`
		Breakdown  map[string]float64 `json:"breakdown"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	switch {
	case obj.Amount != nil:
		q.Amount = *obj.Amount
	case obj.Price != nil:
		q.Amount = *obj.Price
	case obj.TotalPrice != nil:
		q.Amount = *obj.TotalPrice
	default:
		q.Amount = 0
	}
	q.Breakdown = obj.Breakdown
	return nil
}
