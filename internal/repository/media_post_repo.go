package repository

import (
	"context"
	"time"

	"github.com/prayash42/GamingCommunity/internal/domain"
	"github.com/prayash42/GamingCommunity/internal/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MediaPostRepository struct {
	db *gorm.DB
}

func NewMediaPostRepository(db *gorm.DB) *MediaPostRepository {
	return &MediaPostRepository{db: db}
}

type mediaPostModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	AuthorID  int64     `gorm:"column:author_id;index"`
	Title     string    `gorm:"column:title"`
	Body      string    `gorm:"column:body"`
	MediaURL  *string   `gorm:"column:media_url"`
	Tags      string    `gorm:"column:tags"`
	Upvotes   int64     `gorm:"column:upvotes"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (mediaPostModel) TableName() string { return "media_posts" }

func toDomainMediaPost(m mediaPostModel) *domain.MediaPost {
	var mediaURL string
	if m.MediaURL != nil {
		mediaURL = *m.MediaURL
	}

	return &domain.MediaPost{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Title:     m.Title,
		Body:      m.Body,
		MediaURL:  mediaURL,
		Tags:      utils.StringToTags(m.Tags),
		Upvotes:   m.Upvotes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toMediaPostModel(p *domain.MediaPost) mediaPostModel {
	var mediaURL *string
	if p.MediaURL != "" {
		v := p.MediaURL
		mediaURL = &v
	}

	return mediaPostModel{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Title:     p.Title,
		Body:      p.Body,
		MediaURL:  mediaURL,
		Tags:      utils.TagsToString(p.Tags),
		Upvotes:   p.Upvotes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *MediaPostRepository) Create(ctx context.Context, p *domain.MediaPost) error {
	m := toMediaPostModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainMediaPost(m)
	return nil
}

func (r *MediaPostRepository) GetByID(ctx context.Context, id int64) (*domain.MediaPost, error) {
	var m mediaPostModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainMediaPost(m), nil
}

func (r *MediaPostRepository) List(ctx context.Context, tag string, limit, offset int) ([]domain.MediaPost, error) {
	q := r.db.WithContext(ctx).Model(&mediaPostModel{}).Order("created_at DESC")
	if tag != "" {
		q = q.Where("tags LIKE ?", "%\""+tag+"\"%")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var rows []mediaPostModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.MediaPost, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainMediaPost(m))
	}
	return out, nil
}

func (r *MediaPostRepository) Update(ctx context.Context, p *domain.MediaPost) error {
	m := toMediaPostModel(p)
	tx := r.db.WithContext(ctx).Model(&mediaPostModel{}).Where("id = ?", m.ID).
		Updates(map[string]any{
			"title":     m.Title,
			"body":      m.Body,
			"media_url": m.MediaURL,
			"tags":      m.Tags,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MediaPostRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&mediaPostModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementUpvotes mirrors IdeaRepository.IncrementUpvotes for media posts.
func (r *MediaPostRepository) IncrementUpvotes(ctx context.Context, id int64) (int64, error) {
	var m mediaPostModel
	tx := r.db.WithContext(ctx).Model(&m).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "upvotes"}}}).
		Where("id = ?", id).
		UpdateColumn("upvotes", gorm.Expr("upvotes + 1"))
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return m.Upvotes, nil
}
