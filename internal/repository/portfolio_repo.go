package repository

import (
	"context"
	"time"

	"github.com/prayash42/GamingCommunity/internal/domain"
	"github.com/prayash42/GamingCommunity/internal/pkg/utils"

	"gorm.io/gorm"
)

type PortfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

type portfolioItemModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	UserID         int64     `gorm:"column:user_id;index"`
	Title          string    `gorm:"column:title"`
	Description    *string   `gorm:"column:description"`
	Tags           string    `gorm:"column:tags"`
	AttachmentKind *string   `gorm:"column:attachment_kind"`
	AttachmentURL  *string   `gorm:"column:attachment_url"`
	AttachmentName *string   `gorm:"column:attachment_name"`
	AttachmentKey  *string   `gorm:"column:attachment_key"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (portfolioItemModel) TableName() string { return "portfolio_items" }

func toDomainPortfolioItem(m portfolioItemModel) *domain.PortfolioItem {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	item := &domain.PortfolioItem{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: description,
		Tags:        utils.StringToTags(m.Tags),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if m.AttachmentKind != nil && m.AttachmentURL != nil {
		att := &domain.Attachment{
			Kind: domain.AttachmentKind(*m.AttachmentKind),
			URL:  *m.AttachmentURL,
		}
		if m.AttachmentName != nil {
			att.DisplayName = *m.AttachmentName
		}
		if m.AttachmentKey != nil {
			att.StorageKey = *m.AttachmentKey
		}
		item.Attachment = att
	}

	return item
}

func toPortfolioItemModel(p *domain.PortfolioItem) portfolioItemModel {
	var description *string
	if p.Description != "" {
		v := p.Description
		description = &v
	}

	m := portfolioItemModel{
		ID:          p.ID,
		UserID:      p.UserID,
		Title:       p.Title,
		Description: description,
		Tags:        utils.TagsToString(p.Tags),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if p.Attachment != nil {
		kind := string(p.Attachment.Kind)
		url := p.Attachment.URL
		m.AttachmentKind = &kind
		m.AttachmentURL = &url
		if p.Attachment.DisplayName != "" {
			v := p.Attachment.DisplayName
			m.AttachmentName = &v
		}
		if p.Attachment.StorageKey != "" {
			v := p.Attachment.StorageKey
			m.AttachmentKey = &v
		}
	}

	return m
}

func (r *PortfolioRepository) Create(ctx context.Context, p *domain.PortfolioItem) error {
	m := toPortfolioItemModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPortfolioItem(m)
	return nil
}

func (r *PortfolioRepository) GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	var m portfolioItemModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPortfolioItem(m), nil
}

func (r *PortfolioRepository) ListByUser(ctx context.Context, userID int64) ([]domain.PortfolioItem, error) {
	var rows []portfolioItemModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.PortfolioItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPortfolioItem(m))
	}
	return out, nil
}

func (r *PortfolioRepository) Update(ctx context.Context, p *domain.PortfolioItem) error {
	m := toPortfolioItemModel(p)
	tx := r.db.WithContext(ctx).Model(&portfolioItemModel{}).Where("id = ?", m.ID).
		Updates(map[string]any{
			"title":       m.Title,
			"description": m.Description,
			"tags":        m.Tags,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PortfolioRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&portfolioItemModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetAttachment writes all four attachment columns together. They describe a
// single stored object and must never diverge.
func (r *PortfolioRepository) SetAttachment(ctx context.Context, id int64, att *domain.Attachment) error {
	kind := string(att.Kind)
	cols := map[string]any{
		"attachment_kind": &kind,
		"attachment_url":  &att.URL,
		"attachment_name": &att.DisplayName,
	}
	if att.StorageKey != "" {
		cols["attachment_key"] = &att.StorageKey
	} else {
		cols["attachment_key"] = nil
	}

	tx := r.db.WithContext(ctx).Model(&portfolioItemModel{}).
		Where("id = ?", id).
		Updates(cols)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PortfolioRepository) ClearAttachment(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&portfolioItemModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attachment_kind": nil,
			"attachment_url":  nil,
			"attachment_name": nil,
			"attachment_key":  nil,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
