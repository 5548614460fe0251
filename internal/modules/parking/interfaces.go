package parking

import (
	"context"
	"time"

	"github.com/DucPPhan/parknow/internal/domain"
)

type ParkingRepository interface {
	Search(ctx context.Context, keyword string) ([]domain.ParkingLot, error)
	GetByID(ctx context.Context, id int64) (*domain.ParkingLot, error)
	SlotsForLot(ctx context.Context, parkingID int64) ([]domain.ParkingSlot, error)
	PriceFor(ctx context.Context, parkingID int64, trafficID int) (*domain.PricingRule, error)
	CountSlots(ctx context.Context, parkingID int64) (int64, error)
}

type BookingRepository interface {
	BusySlotIDs(ctx context.Context, parkingID int64, start, end time.Time) ([]int64, error)
}
