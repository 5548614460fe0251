package parking

import (
	"context"
	"time"

	"github.com/DucPPhan/parknow/internal/domain"
)

type Service struct {
	parkings ParkingRepository
	bookings BookingRepository
}

func NewService(parkings ParkingRepository, bookings BookingRepository) *Service {
	return &Service{parkings: parkings, bookings: bookings}
}

func (s *Service) Search(ctx context.Context, keyword string) ([]ParkingSummary, error) {
	lots, err := s.parkings.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}

	out := make([]ParkingSummary, 0, len(lots))
	for i := range lots {
		summary, err := s.summarize(ctx, &lots[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *summary)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*ParkingSummary, error) {
	lot, err := s.parkings.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.summarize(ctx, lot)
}

// summarize augments a lot with its current occupancy and the car rate,
// which is what the client's list and detail screens show.
func (s *Service) summarize(ctx context.Context, lot *domain.ParkingLot) (*ParkingSummary, error) {
	total, err := s.parkings.CountSlots(ctx, lot.ID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	busy, err := s.bookings.BusySlotIDs(ctx, lot.ID, now, now.Add(time.Hour))
	if err != nil {
		return nil, err
	}
	summary := &ParkingSummary{
		ID:          lot.ID,
		Name:        lot.Name,
		Address:     lot.Address,
		Latitude:    lot.Latitude,
		Longitude:   lot.Longitude,
		ImageURL:    lot.ImageURL,
		Description: lot.Description,
		TotalSlots:  int(total),
		OpenSlots:   int(total) - len(busy),
	}
	if rule, err := s.parkings.PriceFor(ctx, lot.ID, domain.TrafficCar); err != nil {
		return nil, err
	} else if rule != nil {
		summary.PricePerHour = rule.PricePerHour
	}
	return summary, nil
}

// AvailableSlots returns every active slot of the lot with its availability
// for the requested window. The full set is returned so the client can lay
// out the complete grid; taken slots are flagged, not omitted.
func (s *Service) AvailableSlots(ctx context.Context, parkingID int64, start time.Time, desiredHours int) ([]SlotDTO, error) {
	if desiredHours < 1 || start.IsZero() {
		return nil, ErrValidation
	}
	if _, err := s.parkings.GetByID(ctx, parkingID); err != nil {
		return nil, ErrNotFound
	}

	slots, err := s.parkings.SlotsForLot(ctx, parkingID)
	if err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(desiredHours) * time.Hour)
	busyIDs, err := s.bookings.BusySlotIDs(ctx, parkingID, start, end)
	if err != nil {
		return nil, err
	}
	busy := make(map[int64]bool, len(busyIDs))
	for _, id := range busyIDs {
		busy[id] = true
	}

	out := make([]SlotDTO, 0, len(slots))
	for _, slot := range slots {
		out = append(out, SlotDTO{
			ParkingSlotID: slot.ID,
			Name:          slot.Name,
			RowIndex:      slot.RowIndex,
			ColumnIndex:   slot.ColumnIndex,
			IsAvailable:   !busy[slot.ID],
			FloorID:       slot.FloorID,
			TrafficID:     slot.TrafficID,
		})
	}
	return out, nil
}

// ExpectedPrice quotes desiredHours at the lot's hourly rate for the
// traffic type.
func (s *Service) ExpectedPrice(ctx context.Context, parkingID int64, start time.Time, desiredHours, trafficID int) (*PriceDTO, error) {
	if desiredHours < 1 || start.IsZero() {
		return nil, ErrValidation
	}

	rule, err := s.parkings.PriceFor(ctx, parkingID, trafficID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, ErrNoPricing
	}

	amount := rule.PricePerHour * float64(desiredHours)
	return &PriceDTO{
		Amount: amount,
		Breakdown: map[string]float64{
			"pricePerHour": rule.PricePerHour,
			"hours":        float64(desiredHours),
		},
	}, nil
}
