package projects

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/prayash42/GamingCommunity/internal/domain"
)

type mockProjectRepo struct {
	mock.Mock
	// aggregate state mirrors what the DB transaction would hold
	project *domain.Project
}

func (m *mockProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if m.project != nil {
		cp := *m.project
		return &cp, args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *mockProjectRepo) List(ctx context.Context, tag string, limit, offset int) ([]domain.Project, error) {
	args := m.Called(ctx, tag, limit, offset)
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *mockProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProjectRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProjectRepo) AddRating(ctx context.Context, fb *domain.Feedback) error {
	args := m.Called(ctx, fb)
	if args.Error(0) == nil && m.project != nil {
		// both fields move together, like the real transaction
		m.project.RatingSum += int64(fb.Rating)
		m.project.RatingCount++
	}
	return args.Error(0)
}

type mockFeedbackRepo struct {
	mock.Mock
}

func (m *mockFeedbackRepo) ListByProject(ctx context.Context, projectID int64, limit, offset int) ([]domain.Feedback, error) {
	args := m.Called(ctx, projectID, limit, offset)
	return args.Get(0).([]domain.Feedback), args.Error(1)
}

type mockCollabRepo struct {
	mock.Mock
}

func (m *mockCollabRepo) Create(ctx context.Context, c *domain.CollaboratorRequest) error {
	args := m.Called(ctx, c)
	if c != nil && args.Error(0) == nil {
		c.ID = 55
	}
	return args.Error(0)
}

func (m *mockCollabRepo) GetByID(ctx context.Context, id int64) (*domain.CollaboratorRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollaboratorRequest), args.Error(1)
}

func (m *mockCollabRepo) ListByProject(ctx context.Context, projectID int64) ([]domain.CollaboratorRequest, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]domain.CollaboratorRequest), args.Error(1)
}

func (m *mockCollabRepo) UpdateStatus(ctx context.Context, id int64, status domain.CollabStatus) (*domain.CollaboratorRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollaboratorRequest), args.Error(1)
}

func newServiceWithProject(p *domain.Project) (*Service, *mockProjectRepo) {
	repo := &mockProjectRepo{project: p}
	return NewService(repo, new(mockFeedbackRepo), new(mockCollabRepo)), repo
}

func TestSubmitRating_MovesSumAndCountTogether(t *testing.T) {
	for r := 1; r <= 5; r++ {
		project := &domain.Project{ID: 1, CreatorID: 2, RatingSum: 7, RatingCount: 2}
		svc, repo := newServiceWithProject(project)

		repo.On("AddRating", mock.Anything, mock.AnythingOfType("*domain.Feedback")).Return(nil)
		repo.On("GetByID", mock.Anything, int64(1)).Return(nil, nil)

		updated, err := svc.SubmitRating(context.Background(), 3, 1, SubmitRatingRequest{Rating: r})

		assert.NoError(t, err)
		assert.Equal(t, int64(7+r), updated.RatingSum)
		assert.Equal(t, int64(3), updated.RatingCount)
		want := float64(7+r) / 3
		assert.InDelta(t, want, updated.AverageRating(), 0.051)
	}
}

func TestSubmitRating_RejectsOutOfRange(t *testing.T) {
	for _, r := range []int{0, -1, 6, 100} {
		svc, repo := newServiceWithProject(&domain.Project{ID: 1})

		_, err := svc.SubmitRating(context.Background(), 3, 1, SubmitRatingRequest{Rating: r})

		assert.ErrorIs(t, err, ErrInvalidRating)
		repo.AssertNotCalled(t, "AddRating", mock.Anything, mock.Anything)
	}
}

func TestSubmitRating_SequenceMatchesExpectedAverage(t *testing.T) {
	project := &domain.Project{ID: 1, CreatorID: 2}
	svc, repo := newServiceWithProject(project)

	repo.On("AddRating", mock.Anything, mock.AnythingOfType("*domain.Feedback")).Return(nil)
	repo.On("GetByID", mock.Anything, int64(1)).Return(nil, nil)

	var updated *domain.Project
	var err error
	for _, r := range []int{5, 3, 4} {
		updated, err = svc.SubmitRating(context.Background(), 3, 1, SubmitRatingRequest{Rating: r})
		assert.NoError(t, err)
	}

	assert.Equal(t, int64(12), updated.RatingSum)
	assert.Equal(t, int64(3), updated.RatingCount)
	assert.Equal(t, 4.0, updated.AverageRating())
}

func TestAverageRating_ZeroCount(t *testing.T) {
	p := domain.Project{RatingSum: 99, RatingCount: 0}
	assert.Equal(t, 0.0, p.AverageRating())
}

func TestAverageRating_RoundsToOneDecimal(t *testing.T) {
	p := domain.Project{RatingSum: 10, RatingCount: 3} // 3.333...
	assert.Equal(t, 3.3, p.AverageRating())

	p = domain.Project{RatingSum: 11, RatingCount: 3} // 3.666...
	assert.Equal(t, 3.7, p.AverageRating())
}

func TestSubmitRating_ProjectMissing(t *testing.T) {
	repo := &mockProjectRepo{}
	svc := NewService(repo, new(mockFeedbackRepo), new(mockCollabRepo))

	repo.On("AddRating", mock.Anything, mock.AnythingOfType("*domain.Feedback")).Return(gorm.ErrRecordNotFound)

	_, err := svc.SubmitRating(context.Background(), 3, 42, SubmitRatingRequest{Rating: 4})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApply_OwnProjectForbidden(t *testing.T) {
	svc, repo := newServiceWithProject(&domain.Project{ID: 1, CreatorID: 3})
	repo.On("GetByID", mock.Anything, int64(1)).Return(nil, nil)

	_, err := svc.Apply(context.Background(), 3, 1, ApplyRequest{Message: "hi"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApply_Duplicateapplication(t *testing.T) {
	repo := &mockProjectRepo{project: &domain.Project{ID: 1, CreatorID: 2}}
	collabs := new(mockCollabRepo)
	svc := NewService(repo, new(mockFeedbackRepo), collabs)

	repo.On("GetByID", mock.Anything, int64(1)).Return(nil, nil)
	collabs.On("Create", mock.Anything, mock.AnythingOfType("*domain.CollaboratorRequest")).
		Return(errors.New("UNIQUE constraint failed: collaborator_requests.project_id"))

	_, err := svc.Apply(context.Background(), 3, 1, ApplyRequest{})
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestUpdateApplicationStatus_OnlyProjectOwner(t *testing.T) {
	repo := &mockProjectRepo{project: &domain.Project{ID: 1, CreatorID: 2}}
	collabs := new(mockCollabRepo)
	svc := NewService(repo, new(mockFeedbackRepo), collabs)

	repo.On("GetByID", mock.Anything, int64(1)).Return(nil, nil)
	collabs.On("GetByID", mock.Anything, int64(9)).Return(&domain.CollaboratorRequest{
		ID: 9, ProjectID: 1, UserID: 3, Status: domain.CollabPending,
	}, nil)

	_, err := svc.UpdateApplicationStatus(context.Background(), 5, 9, domain.CollabAccepted)
	assert.ErrorIs(t, err, ErrForbidden)

	collabs.On("UpdateStatus", mock.Anything, int64(9), domain.CollabAccepted).Return(&domain.CollaboratorRequest{
		ID: 9, ProjectID: 1, UserID: 3, Status: domain.CollabAccepted,
	}, nil)

	cr, err := svc.UpdateApplicationStatus(context.Background(), 2, 9, domain.CollabAccepted)
	assert.NoError(t, err)
	assert.Equal(t, domain.CollabAccepted, cr.Status)
}
