package auth

import (
	"context"
	"testing"

	"github.com/DucPPhan/parknow/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) GenerateToken(userID int64, phone string) (string, error) {
	args := m.Called(userID, phone)
	return args.String(0), args.Error(1)
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewService(users, new(MockJWT))

	users.On("GetByPhone", mock.Anything, "0901234567").Return(nil, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	u, err := svc.Register(context.Background(), RegisterRequest{
		Name: " An Nguyen ", Phone: "0901234567", Email: "AN@Example.com", Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, "An Nguyen", u.Name)
	assert.Equal(t, "an@example.com", u.Email)
	assert.Empty(t, u.PasswordHash)
}

func TestRegister_PhoneTaken(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewService(users, new(MockJWT))

	users.On("GetByPhone", mock.Anything, "0901234567").
		Return(&domain.User{ID: 9, Phone: "0901234567"}, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name: "An", Phone: "0901234567", Password: "secret1",
	})
	assert.ErrorIs(t, err, ErrPhoneTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(new(MockUserRepo), new(MockJWT))

	_, err := svc.Register(context.Background(), RegisterRequest{Phone: "  ", Password: "x", Name: "An"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register(context.Background(), RegisterRequest{Phone: "090", Password: "", Name: "An"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepo)
	jwt := new(MockJWT)
	svc := NewService(users, jwt)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	users.On("GetByPhone", mock.Anything, "0901234567").
		Return(&domain.User{ID: 7, Phone: "0901234567", PasswordHash: string(hash)}, nil)
	jwt.On("GenerateToken", int64(7), "0901234567").Return("tok-7", nil)

	res, err := svc.Login(context.Background(), "0901234567", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok-7", res.Token)
	assert.Equal(t, int64(7), res.User.ID)
	assert.Empty(t, res.User.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewService(users, new(MockJWT))

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	users.On("GetByPhone", mock.Anything, "0901234567").
		Return(&domain.User{ID: 7, Phone: "0901234567", PasswordHash: string(hash)}, nil)

	_, err = svc.Login(context.Background(), "0901234567", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownPhone(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewService(users, new(MockJWT))

	users.On("GetByPhone", mock.Anything, "0000000000").Return(nil, nil)

	_, err := svc.Login(context.Background(), "0000000000", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
