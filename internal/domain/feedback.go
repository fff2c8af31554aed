package domain

import "time"

// Feedback is a rating submission for a project. Rating is always in [1,5];
// creating a Feedback is the only thing that mutates a project's aggregate.
type Feedback struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content,omitempty"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}
