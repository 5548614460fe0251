package auth

import (
	"context"
	"strings"

	"github.com/DucPPhan/parknow/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type jwtService interface {
	GenerateToken(userID int64, phone string) (string, error)
}

// Service contains the sandbox authentication logic.
type Service struct {
	users UserRepository
	jwt   jwtService
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	phone := strings.TrimSpace(req.Phone)
	if phone == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		return nil, ErrValidation
	}

	existing, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Phone:        phone,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, phone, password string) (*LoginResult, error) {
	user, err := s.users.GetByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Phone)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

func (s *Service) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
