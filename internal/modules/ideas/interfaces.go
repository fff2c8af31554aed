package ideas

import (
	"context"

	"github.com/prayash42/GamingCommunity/internal/domain"
)

// IdeaRepository defines the persistence surface for game ideas.
type IdeaRepository interface {
	Create(ctx context.Context, i *domain.GameIdea) error
	GetByID(ctx context.Context, id int64) (*domain.GameIdea, error)
	List(ctx context.Context, tag string, limit, offset int) ([]domain.GameIdea, error)
	Update(ctx context.Context, i *domain.GameIdea) error
	Delete(ctx context.Context, id int64) error
	IncrementUpvotes(ctx context.Context, id int64) (int64, error)
}
