package portfolio

import (
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prayash42/GamingCommunity/internal/domain"
	"github.com/prayash42/GamingCommunity/internal/storage"
)

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) Create(ctx context.Context, p *domain.PortfolioItem) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 10 // simulate DB insert
	}
	return args.Error(0)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioItem), args.Error(1)
}

func (m *mockItemRepo) ListByUser(ctx context.Context, userID int64) ([]domain.PortfolioItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.PortfolioItem), args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, p *domain.PortfolioItem) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockItemRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockItemRepo) SetAttachment(ctx context.Context, id int64, att *domain.Attachment) error {
	args := m.Called(ctx, id, att)
	return args.Error(0)
}

func (m *mockItemRepo) ClearAttachment(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Put(ctx context.Context, key string, file io.Reader) (string, error) {
	args := m.Called(ctx, key, file)
	return args.String(0), args.Error(1)
}

func (m *mockStore) Remove(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func TestClassifyAttachment(t *testing.T) {
	cases := map[string]domain.AttachmentKind{
		"photo.PNG":    domain.AttachmentImage,
		"shot.jpeg":    domain.AttachmentImage,
		"anim.gif":     domain.AttachmentImage,
		"banner.webp":  domain.AttachmentImage,
		"doc.pdf":      domain.AttachmentPdf,
		"Resume.PDF":   domain.AttachmentPdf,
		"notes":        domain.AttachmentLink,
		"readme.TXT":   domain.AttachmentLink,
		"clip.mp4":     domain.AttachmentLink,
		"":             domain.AttachmentLink,
		"archive.tar":  domain.AttachmentLink,
		"final.v2.jpg": domain.AttachmentImage,
	}
	for name, want := range cases {
		assert.Equal(t, want, domain.ClassifyAttachment(name), "classify(%q)", name)
	}
}

func TestAttachFile_KeyPatternAndKind(t *testing.T) {
	repo := new(mockItemRepo)
	store := new(mockStore)
	svc := NewService(repo, store)

	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.PortfolioItem{ID: 10, UserID: 1}, nil)
	store.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
		return regexp.MustCompile(`^1/1-\d+\.png$`).MatchString(key)
	}), mock.Anything).Return("https://cdn.example.com/1/art.png", nil)
	repo.On("SetAttachment", mock.Anything, int64(10), mock.AnythingOfType("*domain.Attachment")).Return(nil)

	att, err := svc.AttachFile(context.Background(), 1, 10, "art.png", 128, strings.NewReader("bytes"))

	require.NoError(t, err)
	assert.Equal(t, domain.AttachmentImage, att.Kind)
	assert.Equal(t, "art.png", att.DisplayName)
	assert.Equal(t, "https://cdn.example.com/1/art.png", att.URL)
	assert.Regexp(t, `^1/1-\d+\.png$`, att.StorageKey)
	store.AssertNumberOfCalls(t, "Put", 1)
}

func TestAttachFile_RejectsUnknownExtension(t *testing.T) {
	repo := new(mockItemRepo)
	store := new(mockStore)
	svc := NewService(repo, store)

	_, err := svc.AttachFile(context.Background(), 1, 10, "build.exe", 128, strings.NewReader("x"))

	assert.ErrorIs(t, err, ErrUnsupportedFile)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttachFile_RejectsSecondAttachment(t *testing.T) {
	repo := new(mockItemRepo)
	store := new(mockStore)
	svc := NewService(repo, store)

	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.PortfolioItem{
		ID:     10,
		UserID: 1,
		Attachment: &domain.Attachment{
			Kind: domain.AttachmentImage, URL: "u", StorageKey: "1/1-1.png",
		},
	}, nil)

	_, err := svc.AttachFile(context.Background(), 1, 10, "new.png", 128, strings.NewReader("x"))

	assert.ErrorIs(t, err, ErrAttachmentExists)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttachFile_UploadFailureLeavesItemUntouched(t *testing.T) {
	repo := new(mockItemRepo)
	store := new(mockStore)
	svc := NewService(repo, store)

	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.PortfolioItem{ID: 10, UserID: 1}, nil)
	store.On("Put", mock.Anything, mock.Anything, mock.Anything).Return("", storage.ErrUpload)

	_, err := svc.AttachFile(context.Background(), 1, 10, "art.png", 128, strings.NewReader("x"))

	assert.ErrorIs(t, err, storage.ErrUpload)
	repo.AssertNotCalled(t, "SetAttachment", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttachLink_NoStorageCall(t *testing.T) {
	repo := new(mockItemRepo)
	store := new(mockStore)
	svc := NewService(repo, store)

	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.PortfolioItem{ID: 10, UserID: 1}, nil)
	repo.On("SetAttachment", mock.Anything, int64(10), mock.AnythingOfType("*domain.Attachment")).Return(nil)

	att, err := svc.AttachLink(context.Background(), 1, 10, "https://itch.io/my-game")

	require.NoError(t, err)
	assert.Equal(t, domain.AttachmentLink, att.Kind)
	assert.Equal(t, "https://itch.io/my-game", att.DisplayName)
	assert.Empty(t, att.StorageKey)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestDetach_LinkIssuesNoStorageDelete(t *testing.T) {
	repo := new(mockItemRepo)
	store := new(mockStore)
	svc := NewService(repo, store)

	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.PortfolioItem{
		ID:     10,
		UserID: 1,
		Attachment: &domain.Attachment{
			Kind: domain.AttachmentLink, URL: "https://itch.io/my-game",
		},
	}, nil)
	repo.On("ClearAttachment", mock.Anything, int64(10)).Return(nil)

	require.NoError(t, svc.Detach(context.Background(), 1, 10))
	store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestDetach_StoredAttachmentIssuesExactlyOneDelete(t *testing.T) {
	repo := new(mockItemRepo)
	store := new(mockStore)
	svc := NewService(repo, store)

	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.PortfolioItem{
		ID:     10,
		UserID: 1,
		Attachment: &domain.Attachment{
			Kind: domain.AttachmentImage, URL: "u", StorageKey: "1/1-1724831000000.png",
		},
	}, nil)
	store.On("Remove", mock.Anything, []string{"1/1-1724831000000.png"}).Return(nil)
	repo.On("ClearAttachment", mock.Anything, int64(10)).Return(nil)

	require.NoError(t, svc.Detach(context.Background(), 1, 10))
	store.AssertNumberOfCalls(t, "Remove", 1)
	repo.AssertCalled(t, "ClearAttachment", mock.Anything, int64(10))
}

func TestDetach_DeleteFailureKeepsAttachment(t *testing.T) {
	repo := new(mockItemRepo)
	store := new(mockStore)
	svc := NewService(repo, store)

	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.PortfolioItem{
		ID:     10,
		UserID: 1,
		Attachment: &domain.Attachment{
			Kind: domain.AttachmentImage, URL: "u", StorageKey: "1/1-1.png",
		},
	}, nil)
	store.On("Remove", mock.Anything, []string{"1/1-1.png"}).Return(storage.ErrUpload)

	err := svc.Detach(context.Background(), 1, 10)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "ClearAttachment", mock.Anything, mock.Anything)
}

func TestDetach_NoAttachment(t *testing.T) {
	repo := new(mockItemRepo)
	svc := NewService(repo, new(mockStore))

	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.PortfolioItem{ID: 10, UserID: 1}, nil)

	assert.ErrorIs(t, svc.Detach(context.Background(), 1, 10), ErrNoAttachment)
}

func TestDetach_OnlyOwner(t *testing.T) {
	repo := new(mockItemRepo)
	svc := NewService(repo, new(mockStore))

	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.PortfolioItem{ID: 10, UserID: 9}, nil)

	assert.ErrorIs(t, svc.Detach(context.Background(), 1, 10), ErrForbidden)
}

func TestDelete_RemovesStoredObjectFirst(t *testing.T) {
	repo := new(mockItemRepo)
	store := new(mockStore)
	svc := NewService(repo, store)

	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.PortfolioItem{
		ID:     10,
		UserID: 1,
		Attachment: &domain.Attachment{
			Kind: domain.AttachmentPdf, URL: "u", StorageKey: "1/1-2.pdf",
		},
	}, nil)
	store.On("Remove", mock.Anything, []string{"1/1-2.pdf"}).Return(nil)
	repo.On("Delete", mock.Anything, int64(10)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 1, 10))
	store.AssertNumberOfCalls(t, "Remove", 1)
}
