package events

import "time"

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description" binding:"required"`
	Location    string    `json:"location,omitempty"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	Tags        []string  `json:"tags,omitempty"`
}

type UpdateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description" binding:"required"`
	Location    string    `json:"location,omitempty"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	Tags        []string  `json:"tags,omitempty"`
}
