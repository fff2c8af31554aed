package domain

import (
	"math"
	"time"
)

// Project is a collaboration project looking for contributors. RatingSum and
// RatingCount form a compound aggregate: they are only ever updated together,
// in the same transaction that inserts the feedback row.
type Project struct {
	ID          int64     `json:"id"`
	CreatorID   int64     `json:"creator_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags,omitempty"`
	RatingSum   int64     `json:"rating_sum"`
	RatingCount int64     `json:"rating_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AverageRating returns the mean of all submitted ratings rounded to one
// decimal, or 0 when the project has no ratings yet.
func (p Project) AverageRating() float64 {
	if p.RatingCount == 0 {
		return 0
	}
	avg := float64(p.RatingSum) / float64(p.RatingCount)
	return math.Round(avg*10) / 10
}
