package repository

import (
	"context"
	"time"

	"github.com/prayash42/GamingCommunity/internal/domain"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

type feedbackModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ProjectID int64     `gorm:"column:project_id;index"`
	UserID    int64     `gorm:"column:user_id;index"`
	Content   *string   `gorm:"column:content"`
	Rating    int       `gorm:"column:rating"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (feedbackModel) TableName() string { return "project_feedback" }

func toDomainFeedback(m feedbackModel) *domain.Feedback {
	var content string
	if m.Content != nil {
		content = *m.Content
	}

	return &domain.Feedback{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		UserID:    m.UserID,
		Content:   content,
		Rating:    m.Rating,
		CreatedAt: m.CreatedAt,
	}
}

func toFeedbackModel(f *domain.Feedback) feedbackModel {
	var content *string
	if f.Content != "" {
		v := f.Content
		content = &v
	}

	return feedbackModel{
		ID:        f.ID,
		ProjectID: f.ProjectID,
		UserID:    f.UserID,
		Content:   content,
		Rating:    f.Rating,
		CreatedAt: f.CreatedAt,
	}
}

func (r *FeedbackRepository) ListByProject(ctx context.Context, projectID int64, limit, offset int) ([]domain.Feedback, error) {
	q := r.db.WithContext(ctx).Model(&feedbackModel{}).
		Where("project_id = ?", projectID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var rows []feedbackModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Feedback, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainFeedback(m))
	}
	return out, nil
}
