package domain

import "time"

type CollabStatus string

const (
	CollabPending  CollabStatus = "pending"
	CollabAccepted CollabStatus = "accepted"
	CollabDeclined CollabStatus = "declined"
)

// CollaboratorRequest is a user's application to join a project. One request
// per user per project; only the project owner may change its status.
type CollaboratorRequest struct {
	ID        int64        `json:"id"`
	ProjectID int64        `json:"project_id"`
	UserID    int64        `json:"user_id"`
	Message   string       `json:"message,omitempty"`
	Status    CollabStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
