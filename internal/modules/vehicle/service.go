package vehicle

import (
	"context"
	"strings"

	"github.com/DucPPhan/parknow/internal/domain"
	"github.com/DucPPhan/parknow/internal/repository"
)

type Service struct {
	vehicles *repository.VehicleRepository
}

func NewService(vehicles *repository.VehicleRepository) *Service {
	return &Service{vehicles: vehicles}
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Vehicle, error) {
	return s.vehicles.GetByUser(ctx, userID)
}

func (s *Service) Add(ctx context.Context, userID int64, req AddVehicleRequest) (*domain.Vehicle, error) {
	name := strings.TrimSpace(req.Name)
	plate := strings.ToUpper(strings.TrimSpace(req.Plate))
	category := domain.VehicleCategory(req.Category)
	if name == "" || plate == "" {
		return nil, ErrValidation
	}
	if category != domain.VehicleCar && category != domain.VehicleMotorcycle {
		return nil, ErrValidation
	}

	existing, err := s.vehicles.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	v := &domain.Vehicle{
		UserID:    userID,
		Name:      name,
		Plate:     plate,
		Category:  category,
		IsDefault: len(existing) == 0, // first vehicle becomes the default
	}
	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	return s.vehicles.Delete(ctx, userID, id)
}

func (s *Service) SetDefault(ctx context.Context, userID, id int64) (*domain.Vehicle, error) {
	if err := s.vehicles.SetDefault(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.vehicles.GetByID(ctx, id)
}
