package repository

import (
	"context"
	"time"

	"github.com/prayash42/GamingCommunity/internal/domain"
	"github.com/prayash42/GamingCommunity/internal/pkg/utils"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

type eventModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	OrganizerID int64     `gorm:"column:organizer_id;index"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Location    *string   `gorm:"column:location"`
	StartsAt    time.Time `gorm:"column:starts_at;index"`
	Tags        string    `gorm:"column:tags"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (eventModel) TableName() string { return "events" }

func toDomainEvent(m eventModel) *domain.Event {
	var location string
	if m.Location != nil {
		location = *m.Location
	}

	return &domain.Event{
		ID:          m.ID,
		OrganizerID: m.OrganizerID,
		Title:       m.Title,
		Description: m.Description,
		Location:    location,
		StartsAt:    m.StartsAt,
		Tags:        utils.StringToTags(m.Tags),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toEventModel(e *domain.Event) eventModel {
	var location *string
	if e.Location != "" {
		v := e.Location
		location = &v
	}

	return eventModel{
		ID:          e.ID,
		OrganizerID: e.OrganizerID,
		Title:       e.Title,
		Description: e.Description,
		Location:    location,
		StartsAt:    e.StartsAt,
		Tags:        utils.TagsToString(e.Tags),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	m := toEventModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEvent(m)
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var m eventModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEvent(m), nil
}

func (r *EventRepository) List(ctx context.Context, upcomingOnly bool, limit, offset int) ([]domain.Event, error) {
	q := r.db.WithContext(ctx).Model(&eventModel{}).Order("starts_at ASC")
	if upcomingOnly {
		q = q.Where("starts_at >= ?", time.Now())
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var rows []eventModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Event, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEvent(m))
	}
	return out, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	m := toEventModel(e)
	tx := r.db.WithContext(ctx).Model(&eventModel{}).Where("id = ?", m.ID).
		Updates(map[string]any{
			"title":       m.Title,
			"description": m.Description,
			"location":    m.Location,
			"starts_at":   m.StartsAt,
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

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&eventModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
