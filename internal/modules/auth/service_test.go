package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/prayash42/GamingCommunity/internal/domain"
)

// Mock User Repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) GenerateToken(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	users := new(mockUserRepo)
	j := new(mockJWT)
	svc := NewService(users, j)

	users.On("ExistsByEmail", mock.Anything, "dev@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	j.On("GenerateToken", int64(42)).Return("token-123", nil)

	res, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Dev@Example.com",
		Password: "supersecret",
		Username: "pixeldev",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-123", res.Token)
	assert.Equal(t, "dev@example.com", res.User.Email)
	assert.Empty(t, res.User.PasswordHash)
	users.AssertExpectations(t)
}

func TestService_Register_EmailTaken(t *testing.T) {
	users := new(mockUserRepo)
	j := new(mockJWT)
	svc := NewService(users, j)

	users.On("ExistsByEmail", mock.Anything, "dev@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "dev@example.com",
		Password: "supersecret",
		Username: "pixeldev",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_ShortPassword(t *testing.T) {
	svc := NewService(new(mockUserRepo), new(mockJWT))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "dev@example.com",
		Password: "short",
		Username: "pixeldev",
	})

	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestService_Login_Success(t *testing.T) {
	users := new(mockUserRepo)
	j := new(mockJWT)
	svc := NewService(users, j)

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "dev@example.com").Return(&domain.User{
		ID:           7,
		Email:        "dev@example.com",
		PasswordHash: string(hash),
		Username:     "pixeldev",
	}, nil)
	j.On("GenerateToken", int64(7)).Return("token-7", nil)

	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    "dev@example.com",
		Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-7", res.Token)
	assert.Empty(t, res.User.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "dev@example.com").Return(&domain.User{
		ID:           7,
		Email:        "dev@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "dev@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
