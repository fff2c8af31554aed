package repository

import (
	"context"
	"time"

	"github.com/prayash42/GamingCommunity/internal/domain"
	"github.com/prayash42/GamingCommunity/internal/pkg/utils"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type projectModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	CreatorID   int64     `gorm:"column:creator_id;index"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Tags        string    `gorm:"column:tags"`
	RatingSum   int64     `gorm:"column:rating_sum"`
	RatingCount int64     `gorm:"column:rating_count"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (projectModel) TableName() string { return "projects" }

func toDomainProject(m projectModel) *domain.Project {
	return &domain.Project{
		ID:          m.ID,
		CreatorID:   m.CreatorID,
		Title:       m.Title,
		Description: m.Description,
		Tags:        utils.StringToTags(m.Tags),
		RatingSum:   m.RatingSum,
		RatingCount: m.RatingCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toProjectModel(p *domain.Project) projectModel {
	return projectModel{
		ID:          p.ID,
		CreatorID:   p.CreatorID,
		Title:       p.Title,
		Description: p.Description,
		Tags:        utils.TagsToString(p.Tags),
		RatingSum:   p.RatingSum,
		RatingCount: p.RatingCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	m := toProjectModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProject(m)
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var m projectModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProject(m), nil
}

func (r *ProjectRepository) List(ctx context.Context, tag string, limit, offset int) ([]domain.Project, error) {
	q := r.db.WithContext(ctx).Model(&projectModel{}).Order("created_at DESC")
	if tag != "" {
		q = q.Where("tags LIKE ?", "%\""+tag+"\"%")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var rows []projectModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Project, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainProject(m))
	}
	return out, nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	m := toProjectModel(p)
	tx := r.db.WithContext(ctx).Model(&projectModel{}).Where("id = ?", m.ID).
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

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&projectModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddRating inserts the feedback row and bumps the project aggregate in one
// transaction. rating_sum and rating_count are never written independently,
// and both increments run server-side, so concurrent raters cannot corrupt
// the average.
func (r *ProjectRepository) AddRating(ctx context.Context, fb *domain.Feedback) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toFeedbackModel(fb)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		res := tx.Model(&projectModel{}).
			Where("id = ?", fb.ProjectID).
			UpdateColumns(map[string]any{
				"rating_sum":   gorm.Expr("rating_sum + ?", fb.Rating),
				"rating_count": gorm.Expr("rating_count + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		*fb = *toDomainFeedback(m)
		return nil
	})
}
