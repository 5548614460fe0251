package domain

import "time"

type VehicleCategory string

const (
	VehicleCar        VehicleCategory = "car"
	VehicleMotorcycle VehicleCategory = "motorcycle"
)

// TrafficID maps the vehicle category onto the pricing type id domain.
func (c VehicleCategory) TrafficID() int {
	if c == VehicleMotorcycle {
		return TrafficMotorcycle
	}
	return TrafficCar
}

type Vehicle struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id" gorm:"index"`
	Name      string          `json:"name"`
	Plate     string          `json:"plate"`
	Category  VehicleCategory `json:"category"`
	IsDefault bool            `json:"is_default"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
