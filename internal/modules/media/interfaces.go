package media

import (
	"context"

	"github.com/prayash42/GamingCommunity/internal/domain"
)

type PostRepository interface {
	Create(ctx context.Context, p *domain.MediaPost) error
	GetByID(ctx context.Context, id int64) (*domain.MediaPost, error)
	List(ctx context.Context, tag string, limit, offset int) ([]domain.MediaPost, error)
	Update(ctx context.Context, p *domain.MediaPost) error
	Delete(ctx context.Context, id int64) error
	IncrementUpvotes(ctx context.Context, id int64) (int64, error)
}
