package domain

import "time"

type BookingStatus string

const (
	BookingBooked    BookingStatus = "booked"
	BookingCheckedIn BookingStatus = "checked_in"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID            int64         `json:"id"`
	Code          string        `json:"code" gorm:"uniqueIndex"`
	ParkingID     int64         `json:"parking_id" gorm:"index"`
	SlotID        int64         `json:"parking_slot_id" gorm:"index"`
	UserID        int64         `json:"user_id" gorm:"index"` // 0 for guest bookings
	VehicleID     int64         `json:"vehicle_id"`
	GuestName     string        `json:"guest_name,omitempty"`
	GuestPhone    string        `json:"guest_phone,omitempty"`
	GuestPlate    string        `json:"guest_plate,omitempty"`
	TrafficID     int           `json:"traffic_id"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	Total         float64       `json:"total"`
	Status        BookingStatus `json:"status"`
	PaymentMethod string        `json:"payment_method"`
	Paid          bool          `json:"paid"`
	Rating        int           `json:"rating,omitempty"`
	RatingComment string        `json:"rating_comment,omitempty" gorm:"type:text"`
	Notes         string        `json:"notes,omitempty" gorm:"type:text"`
	DeviceToken   string        `json:"-"`
	CheckedInAt   *time.Time    `json:"checked_in_at,omitempty"`
	CheckedOutAt  *time.Time    `json:"checked_out_at,omitempty"`
	CancelledAt   *time.Time    `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
