package sandbox

import (
	"fmt"

	"github.com/DucPPhan/parknow/internal/domain"

	"gorm.io/gorm"
)

// Seed fills an empty sandbox database with two parking lots: a small
// ground lot and a two-floor garage. Slot grids contain deliberate index
// gaps (driving lanes) so the client renders realistic layouts. Seeding is
// idempotent: a non-empty database is left alone.
func Seed(db *gorm.DB) error {
	var n int64
	if err := db.Model(&domain.ParkingLot{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	riverside := domain.ParkingLot{
		Name:        "Riverside Lot",
		Address:     "12 Ton Duc Thang, District 1",
		Latitude:    10.7769,
		Longitude:   106.7009,
		Description: "Open-air lot next to the riverside walk",
	}
	if err := db.Create(&riverside).Error; err != nil {
		return err
	}

	central := domain.ParkingLot{
		Name:        "Central Garage",
		Address:     "45 Le Loi, District 1",
		Latitude:    10.7731,
		Longitude:   106.7000,
		Description: "Covered garage, two floors",
	}
	if err := db.Create(&central).Error; err != nil {
		return err
	}

	rules := []domain.PricingRule{
		{ParkingID: riverside.ID, TrafficID: domain.TrafficCar, PricePerHour: 20000},
		{ParkingID: riverside.ID, TrafficID: domain.TrafficMotorcycle, PricePerHour: 5000},
		{ParkingID: central.ID, TrafficID: domain.TrafficCar, PricePerHour: 25000},
		{ParkingID: central.ID, TrafficID: domain.TrafficMotorcycle, PricePerHour: 8000},
	}
	if err := db.Create(&rules).Error; err != nil {
		return err
	}

	if err := seedFloor(db, riverside.ID, "Ground", 3, 4); err != nil {
		return err
	}
	for _, name := range []string{"Level 1", "Level 2"} {
		if err := seedFloor(db, central.ID, name, 4, 5); err != nil {
			return err
		}
	}
	return nil
}

// seedFloor lays out rows x cols slots, skipping the middle column as a
// driving lane. Rows alternate between car and motorcycle slots.
func seedFloor(db *gorm.DB, parkingID int64, name string, rows, cols int) error {
	floor := domain.Floor{ParkingID: parkingID, Name: name}
	if err := db.Create(&floor).Error; err != nil {
		return err
	}

	lane := cols / 2
	var slots []domain.ParkingSlot
	for r := 0; r < rows; r++ {
		trafficID := domain.TrafficCar
		if r%2 == 1 {
			trafficID = domain.TrafficMotorcycle
		}
		for c := 0; c < cols; c++ {
			if c == lane {
				continue
			}
			slots = append(slots, domain.ParkingSlot{
				ParkingID:   parkingID,
				FloorID:     floor.ID,
				Name:        fmt.Sprintf("%c%d", 'A'+r, c+1),
				RowIndex:    r,
				ColumnIndex: c,
				TrafficID:   trafficID,
				Active:      true,
			})
		}
	}
	return db.Create(&slots).Error
}
