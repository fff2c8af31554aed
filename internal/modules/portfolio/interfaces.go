package portfolio

import (
	"context"

	"github.com/prayash42/GamingCommunity/internal/domain"
)

type PortfolioRepository interface {
	Create(ctx context.Context, p *domain.PortfolioItem) error
	GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.PortfolioItem, error)
	Update(ctx context.Context, p *domain.PortfolioItem) error
	Delete(ctx context.Context, id int64) error
	SetAttachment(ctx context.Context, id int64, att *domain.Attachment) error
	ClearAttachment(ctx context.Context, id int64) error
}
