package repository

import (
	"context"
	"time"

	"github.com/prayash42/GamingCommunity/internal/domain"
	"github.com/prayash42/GamingCommunity/internal/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IdeaRepository struct {
	db *gorm.DB
}

func NewIdeaRepository(db *gorm.DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

type ideaModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	CreatorID   int64     `gorm:"column:creator_id;index"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Genre       *string   `gorm:"column:genre"`
	Tags        string    `gorm:"column:tags"`
	Upvotes     int64     `gorm:"column:upvotes"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (ideaModel) TableName() string { return "game_ideas" }

func toDomainIdea(m ideaModel) *domain.GameIdea {
	var genre string
	if m.Genre != nil {
		genre = *m.Genre
	}

	return &domain.GameIdea{
		ID:          m.ID,
		CreatorID:   m.CreatorID,
		Title:       m.Title,
		Description: m.Description,
		Genre:       genre,
		Tags:        utils.StringToTags(m.Tags),
		Upvotes:     m.Upvotes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toIdeaModel(i *domain.GameIdea) ideaModel {
	var genre *string
	if i.Genre != "" {
		v := i.Genre
		genre = &v
	}

	return ideaModel{
		ID:          i.ID,
		CreatorID:   i.CreatorID,
		Title:       i.Title,
		Description: i.Description,
		Genre:       genre,
		Tags:        utils.TagsToString(i.Tags),
		Upvotes:     i.Upvotes,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (r *IdeaRepository) Create(ctx context.Context, i *domain.GameIdea) error {
	m := toIdeaModel(i)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*i = *toDomainIdea(m)
	return nil
}

func (r *IdeaRepository) GetByID(ctx context.Context, id int64) (*domain.GameIdea, error) {
	var m ideaModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainIdea(m), nil
}

func (r *IdeaRepository) List(ctx context.Context, tag string, limit, offset int) ([]domain.GameIdea, error) {
	q := r.db.WithContext(ctx).Model(&ideaModel{}).Order("created_at DESC")
	if tag != "" {
		q = q.Where("tags LIKE ?", "%\""+tag+"\"%")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var rows []ideaModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.GameIdea, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainIdea(m))
	}
	return out, nil
}

func (r *IdeaRepository) Update(ctx context.Context, i *domain.GameIdea) error {
	m := toIdeaModel(i)
	tx := r.db.WithContext(ctx).Model(&ideaModel{}).Where("id = ?", m.ID).
		Updates(map[string]any{
			"title":       m.Title,
			"description": m.Description,
			"genre":       m.Genre,
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

func (r *IdeaRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&ideaModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementUpvotes applies the upvote as a single server-side
// `upvotes = upvotes + 1` and reads the new count back through RETURNING,
// so concurrent upvoters never clobber each other and each caller sees
// exactly the count its own increment produced.
func (r *IdeaRepository) IncrementUpvotes(ctx context.Context, id int64) (int64, error) {
	var m ideaModel
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
