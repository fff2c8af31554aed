package projects

import (
	"context"

	"github.com/prayash42/GamingCommunity/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, tag string, limit, offset int) ([]domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id int64) error
	// AddRating inserts the feedback row and bumps rating_sum/rating_count
	// atomically; the two counters always change together.
	AddRating(ctx context.Context, fb *domain.Feedback) error
}

type FeedbackRepository interface {
	ListByProject(ctx context.Context, projectID int64, limit, offset int) ([]domain.Feedback, error)
}

type CollabRepository interface {
	Create(ctx context.Context, c *domain.CollaboratorRequest) error
	GetByID(ctx context.Context, id int64) (*domain.CollaboratorRequest, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.CollaboratorRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.CollabStatus) (*domain.CollaboratorRequest, error)
}
