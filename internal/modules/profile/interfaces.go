package profile

import (
	"context"

	"github.com/prayash42/GamingCommunity/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}
