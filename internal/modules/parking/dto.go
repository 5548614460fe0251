package parking

type ParkingSummary struct {
	ID           int64   `json:"parkingId"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	Description  string  `json:"description,omitempty"`
	TotalSlots   int     `json:"totalSlots"`
	OpenSlots    int     `json:"openSlots"`
	PricePerHour float64 `json:"pricePerHour"`
}

type SlotDTO struct {
	ParkingSlotID int64  `json:"parkingSlotId"`
	Name          string `json:"name"`
	RowIndex      int    `json:"rowIndex"`
	ColumnIndex   int    `json:"columnIndex"`
	IsAvailable   bool   `json:"isAvailable"`
	FloorID       int64  `json:"floorId"`
	TrafficID     int    `json:"trafficId"`
}

type PriceDTO struct {
	Amount    float64            `json:"amount"`
	Breakdown map[string]float64 `json:"breakdown,omitempty"`
}
