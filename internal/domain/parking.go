package domain

import "time"

// Traffic type ids used by slots, vehicles and pricing rules.
const (
	TrafficMotorcycle = 1
	TrafficCar        = 2
)

type ParkingLot struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	ImageURL    string    `json:"image_url,omitempty"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Floor struct {
	ID        int64  `json:"id"`
	ParkingID int64  `json:"parking_id" gorm:"index"`
	Name      string `json:"name"`
}

// ParkingSlot is a physical space addressed by row/column within the lot
// layout. Index gaps are allowed; the client renders them as spacers.
type ParkingSlot struct {
	ID          int64  `json:"id"`
	ParkingID   int64  `json:"parking_id" gorm:"index"`
	FloorID     int64  `json:"floor_id"`
	Name        string `json:"name"`
	RowIndex    int    `json:"row_index"`
	ColumnIndex int    `json:"column_index"`
	TrafficID   int    `json:"traffic_id"`
	Active      bool   `json:"active"`
}

// PricingRule is the hourly rate for one lot and traffic type.
type PricingRule struct {
	ID           int64   `json:"id"`
	ParkingID    int64   `json:"parking_id" gorm:"index"`
	TrafficID    int     `json:"traffic_id"`
	PricePerHour float64 `json:"price_per_hour"`
}
