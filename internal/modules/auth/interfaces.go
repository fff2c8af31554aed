package auth

import (
	"context"

	"github.com/prayash42/GamingCommunity/internal/domain"
)

// UserRepository defines the persistence surface the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type jwtService interface {
	GenerateToken(userID int64) (string, error)
}
