package repository

import (
	"context"
	"time"

	"github.com/DucPPhan/parknow/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingRepository) GetByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BusySlotIDs returns the ids of slots in the lot that already have a live
// booking overlapping [start, end). Cancelled and completed bookings do not
// block a slot.
func (r *BookingRepository) BusySlotIDs(ctx context.Context, parkingID int64, start, end time.Time) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("parking_id = ?", parkingID).
		Where("status IN ?", []domain.BookingStatus{domain.BookingBooked, domain.BookingCheckedIn}).
		Where("start_time < ? AND end_time > ?", end, start).
		Pluck("slot_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// SlotTaken reports whether the slot has a live booking overlapping the
// window.
func (r *BookingRepository) SlotTaken(ctx context.Context, slotID int64, start, end time.Time) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("slot_id = ?", slotID).
		Where("status IN ?", []domain.BookingStatus{domain.BookingBooked, domain.BookingCheckedIn}).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
