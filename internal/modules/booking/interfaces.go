package booking

import (
	"context"
	"time"

	"github.com/DucPPhan/parknow/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Save(ctx context.Context, b *domain.Booking) error
	GetByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	SlotTaken(ctx context.Context, slotID int64, start, end time.Time) (bool, error)
}

type ParkingRepository interface {
	GetSlot(ctx context.Context, slotID int64) (*domain.ParkingSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.ParkingLot, error)
	PriceFor(ctx context.Context, parkingID int64, trafficID int) (*domain.PricingRule, error)
}

type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}
