package portfolio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/prayash42/GamingCommunity/internal/domain"
	"github.com/prayash42/GamingCommunity/internal/pkg/utils"
	"github.com/prayash42/GamingCommunity/internal/storage"

	"gorm.io/gorm"
)

// MaxAttachmentSize bounds a single uploaded attachment.
const MaxAttachmentSize = 50 * 1024 * 1024 // 50 MB

// Service keeps a portfolio item's stored bytes and its database-visible
// attachment fields in agreement. An item holds at most one attachment;
// replacing it always goes through an explicit detach.
type Service struct {
	items PortfolioRepository
	store storage.Store
}

func NewService(items PortfolioRepository, store storage.Store) *Service {
	return &Service{items: items, store: store}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateItemRequest) (*domain.PortfolioItem, error) {
	if userID <= 0 || strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidRequest
	}

	item := &domain.PortfolioItem{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Tags:        utils.NormalizeTags(req.Tags),
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	if id <= 0 {
		return nil, ErrInvalidRequest
	}
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.PortfolioItem, error) {
	if userID <= 0 {
		return nil, ErrInvalidRequest
	}
	return s.items.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateItemRequest) (*domain.PortfolioItem, error) {
	if userID <= 0 || id <= 0 || strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidRequest
	}

	item, err := s.ownedItem(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	item.Title = strings.TrimSpace(req.Title)
	item.Description = req.Description
	item.Tags = utils.NormalizeTags(req.Tags)

	if err := s.items.Update(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes the item and, when it holds a stored attachment, the stored
// object first. A failed storage delete aborts the whole operation so the
// object is never orphaned.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	item, err := s.ownedItem(ctx, userID, id)
	if err != nil {
		return err
	}

	if att := item.Attachment; att != nil && att.Kind != domain.AttachmentLink {
		if err := s.store.Remove(ctx, att.StorageKey); err != nil {
			return err
		}
	}

	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// AttachFile uploads the file and records the attachment on the item. The
// storage key is `{userID}/{userID}-{millis}{ext}`: per-user namespacing plus
// a millisecond timestamp keeps keys collision-resistant, and the store
// refuses to overwrite should two uploads still collide. The item row is
// only touched after the upload succeeded.
func (s *Service) AttachFile(ctx context.Context, userID, id int64, fileName string, size int64, file io.Reader) (*domain.Attachment, error) {
	if userID <= 0 || id <= 0 || fileName == "" {
		return nil, ErrInvalidRequest
	}
	if size == 0 {
		return nil, ErrEmptyFile
	}
	if size > MaxAttachmentSize {
		return nil, ErrFileTooLarge
	}

	kind := domain.ClassifyAttachment(fileName)
	if kind == domain.AttachmentLink {
		return nil, ErrUnsupportedFile
	}

	item, err := s.ownedItem(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if item.Attachment != nil {
		return nil, ErrAttachmentExists
	}

	key := buildStorageKey(userID, fileName)
	url, err := s.store.Put(ctx, key, file)
	if err != nil {
		return nil, err
	}

	att := &domain.Attachment{
		Kind:        kind,
		URL:         url,
		DisplayName: filepath.Base(fileName),
		StorageKey:  key,
	}

	if err := s.items.SetAttachment(ctx, id, att); err != nil {
		return nil, err
	}
	return att, nil
}

// AttachLink records an external URL as the attachment. No storage call is
// made.
func (s *Service) AttachLink(ctx context.Context, userID, id int64, url string) (*domain.Attachment, error) {
	url = strings.TrimSpace(url)
	if userID <= 0 || id <= 0 || url == "" {
		return nil, ErrInvalidRequest
	}

	item, err := s.ownedItem(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if item.Attachment != nil {
		return nil, ErrAttachmentExists
	}

	att := &domain.Attachment{
		Kind:        domain.AttachmentLink,
		URL:         url,
		DisplayName: url,
	}

	if err := s.items.SetAttachment(ctx, id, att); err != nil {
		return nil, err
	}
	return att, nil
}

// Detach clears the item's attachment. Link attachments need no storage
// call; image/pdf attachments issue exactly one delete for the stored key.
// When that delete fails the attachment stays in place, so a later retry can
// still reach the object instead of leaking it.
func (s *Service) Detach(ctx context.Context, userID, id int64) error {
	item, err := s.ownedItem(ctx, userID, id)
	if err != nil {
		return err
	}
	if item.Attachment == nil {
		return ErrNoAttachment
	}

	if item.Attachment.Kind != domain.AttachmentLink {
		if err := s.store.Remove(ctx, item.Attachment.StorageKey); err != nil {
			return err
		}
	}

	if err := s.items.ClearAttachment(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ownedItem(ctx context.Context, userID, id int64) (*domain.PortfolioItem, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, ErrForbidden
	}
	return item, nil
}

func buildStorageKey(userID int64, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%d/%d-%d%s", userID, userID, time.Now().UnixMilli(), ext)
}
