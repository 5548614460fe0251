package repository

import (
	"context"

	"github.com/DucPPhan/parknow/internal/domain"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Create(ctx context.Context, f *domain.FavoriteAddress) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FavoriteRepository) GetByUser(ctx context.Context, userID int64) ([]domain.FavoriteAddress, error) {
	var out []domain.FavoriteAddress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID, id int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.FavoriteAddress{}, id).Error
}
