package events

import (
	"context"
	"errors"
	"strings"

	"github.com/prayash42/GamingCommunity/internal/domain"
	"github.com/prayash42/GamingCommunity/internal/pkg/utils"

	"gorm.io/gorm"
)

type Service struct {
	events EventRepository
}

func NewService(events EventRepository) *Service {
	return &Service{events: events}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateEventRequest) (*domain.Event, error) {
	if userID <= 0 || strings.TrimSpace(req.Title) == "" || req.StartsAt.IsZero() {
		return nil, ErrInvalidRequest
	}

	event := &domain.Event{
		OrganizerID: userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Location:    strings.TrimSpace(req.Location),
		StartsAt:    req.StartsAt,
		Tags:        utils.NormalizeTags(req.Tags),
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if id <= 0 {
		return nil, ErrInvalidRequest
	}
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *Service) List(ctx context.Context, upcomingOnly bool, limit, offset int) ([]domain.Event, error) {
	return s.events.List(ctx, upcomingOnly, limit, offset)
}

func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateEventRequest) (*domain.Event, error) {
	if userID <= 0 || id <= 0 || strings.TrimSpace(req.Title) == "" || req.StartsAt.IsZero() {
		return nil, ErrInvalidRequest
	}

	event, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != userID {
		return nil, ErrForbidden
	}

	event.Title = strings.TrimSpace(req.Title)
	event.Description = req.Description
	event.Location = strings.TrimSpace(req.Location)
	event.StartsAt = req.StartsAt
	event.Tags = utils.NormalizeTags(req.Tags)

	if err := s.events.Update(ctx, event); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	event, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event.OrganizerID != userID {
		return ErrForbidden
	}

	if err := s.events.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
