package media

import (
	"context"
	"errors"
	"strings"

	"github.com/prayash42/GamingCommunity/internal/domain"
	"github.com/prayash42/GamingCommunity/internal/pkg/utils"

	"gorm.io/gorm"
)

type Service struct {
	posts PostRepository
}

func NewService(posts PostRepository) *Service {
	return &Service{posts: posts}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreatePostRequest) (*domain.MediaPost, error) {
	if userID <= 0 || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		return nil, ErrInvalidRequest
	}

	post := &domain.MediaPost{
		AuthorID: userID,
		Title:    strings.TrimSpace(req.Title),
		Body:     req.Body,
		MediaURL: strings.TrimSpace(req.MediaURL),
		Tags:     utils.NormalizeTags(req.Tags),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.MediaPost, error) {
	if id <= 0 {
		return nil, ErrInvalidRequest
	}
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *Service) List(ctx context.Context, tag string, limit, offset int) ([]domain.MediaPost, error) {
	return s.posts.List(ctx, strings.TrimSpace(tag), limit, offset)
}

func (s *Service) Update(ctx context.Context, userID, id int64, req UpdatePostRequest) (*domain.MediaPost, error) {
	if userID <= 0 || id <= 0 || strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidRequest
	}

	post, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, ErrForbidden
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Body = req.Body
	post.MediaURL = strings.TrimSpace(req.MediaURL)
	post.Tags = utils.NormalizeTags(req.Tags)

	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return ErrForbidden
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Upvote(ctx context.Context, userID, id int64) (int64, error) {
	if userID <= 0 || id <= 0 {
		return 0, ErrInvalidRequest
	}

	upvotes, err := s.posts.IncrementUpvotes(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return upvotes, nil
}
