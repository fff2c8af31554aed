package projects

import (
	"context"
	"errors"
	"strings"

	"github.com/prayash42/GamingCommunity/internal/domain"
	"github.com/prayash42/GamingCommunity/internal/pkg/utils"
	"github.com/prayash42/GamingCommunity/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	projects ProjectRepository
	feedback FeedbackRepository
	collabs  CollabRepository
}

func NewService(projects ProjectRepository, feedback FeedbackRepository, collabs CollabRepository) *Service {
	return &Service{projects: projects, feedback: feedback, collabs: collabs}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateProjectRequest) (*domain.Project, error) {
	if userID <= 0 || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, ErrInvalidRequest
	}

	project := &domain.Project{
		CreatorID:   userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Tags:        utils.NormalizeTags(req.Tags),
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	if id <= 0 {
		return nil, ErrInvalidRequest
	}
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *Service) List(ctx context.Context, tag string, limit, offset int) ([]domain.Project, error) {
	return s.projects.List(ctx, strings.TrimSpace(tag), limit, offset)
}

func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateProjectRequest) (*domain.Project, error) {
	if userID <= 0 || id <= 0 || strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidRequest
	}

	project, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.CreatorID != userID {
		return nil, ErrForbidden
	}

	project.Title = strings.TrimSpace(req.Title)
	project.Description = req.Description
	project.Tags = utils.NormalizeTags(req.Tags)

	if err := s.projects.Update(ctx, project); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project.CreatorID != userID {
		return ErrForbidden
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// SubmitRating records one rating for a project. Validation happens before
// any write; the feedback row and the aggregate bump land in the same
// transaction, so a stored rating is always counted exactly once. The same
// user may rate a project more than once.
func (s *Service) SubmitRating(ctx context.Context, userID, projectID int64, req SubmitRatingRequest) (*domain.Project, error) {
	if userID <= 0 || projectID <= 0 {
		return nil, ErrInvalidRequest
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	fb := &domain.Feedback{
		ProjectID: projectID,
		UserID:    userID,
		Content:   strings.TrimSpace(req.Content),
		Rating:    req.Rating,
	}

	if err := s.projects.AddRating(ctx, fb); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.GetByID(ctx, projectID)
}

func (s *Service) ListFeedback(ctx context.Context, projectID int64, limit, offset int) ([]domain.Feedback, error) {
	if projectID <= 0 {
		return nil, ErrInvalidRequest
	}
	return s.feedback.ListByProject(ctx, projectID, limit, offset)
}

// Apply files a collaboration request. The creator cannot apply to their own
// project; repeated applications hit the unique (project, user) index.
func (s *Service) Apply(ctx context.Context, userID, projectID int64, req ApplyRequest) (*domain.CollaboratorRequest, error) {
	if userID <= 0 || projectID <= 0 {
		return nil, ErrInvalidRequest
	}

	project, err := s.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.CreatorID == userID {
		return nil, ErrForbidden
	}

	cr := &domain.CollaboratorRequest{
		ProjectID: projectID,
		UserID:    userID,
		Message:   strings.TrimSpace(req.Message),
		Status:    domain.CollabPending,
	}

	if err := s.collabs.Create(ctx, cr); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	return cr, nil
}

func (s *Service) ListApplications(ctx context.Context, userID, projectID int64) ([]domain.CollaboratorRequest, error) {
	project, err := s.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.CreatorID != userID {
		return nil, ErrForbidden
	}
	return s.collabs.ListByProject(ctx, projectID)
}

func (s *Service) UpdateApplicationStatus(ctx context.Context, userID, requestID int64, status domain.CollabStatus) (*domain.CollaboratorRequest, error) {
	if status != domain.CollabAccepted && status != domain.CollabDeclined {
		return nil, ErrInvalidRequest
	}

	cr, err := s.collabs.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	project, err := s.GetByID(ctx, cr.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.CreatorID != userID {
		return nil, ErrForbidden
	}

	updated, err := s.collabs.UpdateStatus(ctx, requestID, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}
