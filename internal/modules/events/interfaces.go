package events

import (
	"context"

	"github.com/prayash42/GamingCommunity/internal/domain"
)

type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context, upcomingOnly bool, limit, offset int) ([]domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id int64) error
}
