package ideas

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/prayash42/GamingCommunity/internal/domain"
)

type mockIdeaRepo struct {
	mock.Mock
}

func (m *mockIdeaRepo) Create(ctx context.Context, i *domain.GameIdea) error {
	args := m.Called(ctx, i)
	if i != nil {
		i.ID = 101 // simulate DB insert
	}
	return args.Error(0)
}

func (m *mockIdeaRepo) GetByID(ctx context.Context, id int64) (*domain.GameIdea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameIdea), args.Error(1)
}

func (m *mockIdeaRepo) List(ctx context.Context, tag string, limit, offset int) ([]domain.GameIdea, error) {
	args := m.Called(ctx, tag, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GameIdea), args.Error(1)
}

func (m *mockIdeaRepo) Update(ctx context.Context, i *domain.GameIdea) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *mockIdeaRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockIdeaRepo) IncrementUpvotes(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_Create_NormalizesTags(t *testing.T) {
	repo := new(mockIdeaRepo)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.GameIdea")).Return(nil)

	idea, err := svc.Create(context.Background(), 1, CreateIdeaRequest{
		Title:       "  Roguelike farming sim ",
		Description: "Harvest loot, replant dungeons.",
		Tags:        []string{" roguelike", "farming", "Roguelike", ""},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(101), idea.ID)
	assert.Equal(t, "Roguelike farming sim", idea.Title)
	assert.Equal(t, []string{"roguelike", "farming"}, idea.Tags)
}

func TestService_Create_RequiresOwnerAndFields(t *testing.T) {
	svc := NewService(new(mockIdeaRepo))

	_, err := svc.Create(context.Background(), 0, CreateIdeaRequest{Title: "x", Description: "y"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.Create(context.Background(), 1, CreateIdeaRequest{Title: "  ", Description: "y"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestService_Upvote_ReturnsServerCount(t *testing.T) {
	repo := new(mockIdeaRepo)
	svc := NewService(repo)

	// The repository applies `upvotes = upvotes + 1` server-side; whatever
	// stale count the caller held is irrelevant to the stored result.
	repo.On("IncrementUpvotes", mock.Anything, int64(5)).Return(int64(12), nil)

	upvotes, err := svc.Upvote(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), upvotes)
	repo.AssertNumberOfCalls(t, "IncrementUpvotes", 1)
}

func TestService_Upvote_NotFound(t *testing.T) {
	repo := new(mockIdeaRepo)
	svc := NewService(repo)

	repo.On("IncrementUpvotes", mock.Anything, int64(99)).Return(int64(0), gorm.ErrRecordNotFound)

	_, err := svc.Upvote(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_OnlyOwner(t *testing.T) {
	repo := new(mockIdeaRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.GameIdea{ID: 3, CreatorID: 2, Title: "t"}, nil)

	_, err := svc.Update(context.Background(), 1, 3, UpdateIdeaRequest{Title: "new", Description: "d"})
	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Delete_OnlyOwner(t *testing.T) {
	repo := new(mockIdeaRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.GameIdea{ID: 3, CreatorID: 7}, nil)
	repo.On("Delete", mock.Anything, int64(3)).Return(nil)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1, 3), ErrForbidden)
	assert.NoError(t, svc.Delete(context.Background(), 7, 3))
}
