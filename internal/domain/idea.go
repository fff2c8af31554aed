package domain

import "time"

// GameIdea is a pitched game concept. Upvotes is a server-maintained
// counter, only ever changed through an atomic increment.
type GameIdea struct {
	ID          int64     `json:"id"`
	CreatorID   int64     `json:"creator_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       string    `json:"genre,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Upvotes     int64     `json:"upvotes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
