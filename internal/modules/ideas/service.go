package ideas

import (
	"context"
	"errors"
	"strings"

	"github.com/prayash42/GamingCommunity/internal/domain"
	"github.com/prayash42/GamingCommunity/internal/pkg/utils"

	"gorm.io/gorm"
)

type Service struct {
	ideas IdeaRepository
}

func NewService(ideas IdeaRepository) *Service {
	return &Service{ideas: ideas}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateIdeaRequest) (*domain.GameIdea, error) {
	if userID <= 0 || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, ErrInvalidRequest
	}

	idea := &domain.GameIdea{
		CreatorID:   userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Genre:       strings.TrimSpace(req.Genre),
		Tags:        utils.NormalizeTags(req.Tags),
	}

	if err := s.ideas.Create(ctx, idea); err != nil {
		return nil, err
	}
	return idea, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.GameIdea, error) {
	if id <= 0 {
		return nil, ErrInvalidRequest
	}
	idea, err := s.ideas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return idea, nil
}

func (s *Service) List(ctx context.Context, tag string, limit, offset int) ([]domain.GameIdea, error) {
	return s.ideas.List(ctx, strings.TrimSpace(tag), limit, offset)
}

func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateIdeaRequest) (*domain.GameIdea, error) {
	if userID <= 0 || id <= 0 || strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidRequest
	}

	idea, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if idea.CreatorID != userID {
		return nil, ErrForbidden
	}

	idea.Title = strings.TrimSpace(req.Title)
	idea.Description = req.Description
	idea.Genre = strings.TrimSpace(req.Genre)
	idea.Tags = utils.NormalizeTags(req.Tags)

	if err := s.ideas.Update(ctx, idea); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return idea, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	idea, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if idea.CreatorID != userID {
		return ErrForbidden
	}

	if err := s.ideas.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Upvote bumps the idea's counter by one. The repository applies the delta
// server-side, so the returned count already reflects every concurrent
// upvote that landed before ours.
func (s *Service) Upvote(ctx context.Context, userID, id int64) (int64, error) {
	if userID <= 0 || id <= 0 {
		return 0, ErrInvalidRequest
	}

	upvotes, err := s.ideas.IncrementUpvotes(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return upvotes, nil
}
