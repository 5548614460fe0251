package repository

import (
	"context"

	"github.com/DucPPhan/parknow/internal/domain"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepository) GetByUser(ctx context.Context, userID int64) ([]domain.Vehicle, error) {
	var out []domain.Vehicle
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *VehicleRepository) Delete(ctx context.Context, userID, id int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.Vehicle{}, id).Error
}

// SetDefault marks one vehicle as default and clears the flag on the rest
// of the user's vehicles in a single transaction.
func (r *VehicleRepository) SetDefault(ctx context.Context, userID, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Vehicle{}).
			Where("user_id = ?", userID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Vehicle{}).
			Where("user_id = ? AND id = ?", userID, id).
			Update("is_default", true).Error
	})
}
