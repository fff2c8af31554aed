package domain

import "time"

// MediaPost is an article or showcase post in the community feed.
type MediaPost struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	MediaURL  string    `json:"media_url,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Upvotes   int64     `json:"upvotes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
