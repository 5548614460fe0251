package auth

import (
	"context"

	"github.com/DucPPhan/parknow/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
}
