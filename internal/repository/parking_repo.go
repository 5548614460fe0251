package repository

import (
	"context"
	"errors"

	"github.com/DucPPhan/parknow/internal/domain"

	"gorm.io/gorm"
)

type ParkingRepository struct {
	db *gorm.DB
}

func NewParkingRepository(db *gorm.DB) *ParkingRepository {
	return &ParkingRepository{db: db}
}

func (r *ParkingRepository) Search(ctx context.Context, keyword string) ([]domain.ParkingLot, error) {
	q := r.db.WithContext(ctx)
	if keyword != "" {
		like := "%" + keyword + "%"
		q = q.Where("name LIKE ? OR address LIKE ?", like, like)
	}
	var lots []domain.ParkingLot
	if err := q.Order("id").Find(&lots).Error; err != nil {
		return nil, err
	}
	return lots, nil
}

func (r *ParkingRepository) GetByID(ctx context.Context, id int64) (*domain.ParkingLot, error) {
	var lot domain.ParkingLot
	if err := r.db.WithContext(ctx).First(&lot, id).Error; err != nil {
		return nil, err
	}
	return &lot, nil
}

// SlotsForLot returns every active slot of a lot, ordered by layout
// position.
func (r *ParkingRepository) SlotsForLot(ctx context.Context, parkingID int64) ([]domain.ParkingSlot, error) {
	var slots []domain.ParkingSlot
	err := r.db.WithContext(ctx).
		Where("parking_id = ? AND active = ?", parkingID, true).
		Order("row_index, column_index").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *ParkingRepository) GetSlot(ctx context.Context, slotID int64) (*domain.ParkingSlot, error) {
	var slot domain.ParkingSlot
	if err := r.db.WithContext(ctx).First(&slot, slotID).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// PriceFor returns the hourly rate for a lot and traffic type, or nil when
// no rule exists.
func (r *ParkingRepository) PriceFor(ctx context.Context, parkingID int64, trafficID int) (*domain.PricingRule, error) {
	var rule domain.PricingRule
	err := r.db.WithContext(ctx).
		Where("parking_id = ? AND traffic_id = ?", parkingID, trafficID).
		First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *ParkingRepository) CountSlots(ctx context.Context, parkingID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.ParkingSlot{}).
		Where("parking_id = ? AND active = ?", parkingID, true).
		Count(&n).Error
	return n, err
}
