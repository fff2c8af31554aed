package repository

import (
	"context"
	"time"

	"github.com/prayash42/GamingCommunity/internal/domain"

	"gorm.io/gorm"
)

type CollabRequestRepository struct {
	db *gorm.DB
}

func NewCollabRequestRepository(db *gorm.DB) *CollabRequestRepository {
	return &CollabRequestRepository{db: db}
}

type collabRequestModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ProjectID int64     `gorm:"column:project_id;uniqueIndex:uq_collab_project_user"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:uq_collab_project_user"`
	Message   *string   `gorm:"column:message"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (collabRequestModel) TableName() string { return "collaborator_requests" }

func toDomainCollabRequest(m collabRequestModel) *domain.CollaboratorRequest {
	var message string
	if m.Message != nil {
		message = *m.Message
	}

	return &domain.CollaboratorRequest{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		UserID:    m.UserID,
		Message:   message,
		Status:    domain.CollabStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toCollabRequestModel(c *domain.CollaboratorRequest) collabRequestModel {
	var message *string
	if c.Message != "" {
		v := c.Message
		message = &v
	}

	return collabRequestModel{
		ID:        c.ID,
		ProjectID: c.ProjectID,
		UserID:    c.UserID,
		Message:   message,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CollabRequestRepository) Create(ctx context.Context, c *domain.CollaboratorRequest) error {
	m := toCollabRequestModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCollabRequest(m)
	return nil
}

func (r *CollabRequestRepository) GetByID(ctx context.Context, id int64) (*domain.CollaboratorRequest, error) {
	var m collabRequestModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCollabRequest(m), nil
}

func (r *CollabRequestRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.CollaboratorRequest, error) {
	var rows []collabRequestModel
	tx := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.CollaboratorRequest, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCollabRequest(m))
	}
	return out, nil
}

func (r *CollabRequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.CollabStatus) (*domain.CollaboratorRequest, error) {
	tx := r.db.WithContext(ctx).Model(&collabRequestModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}
