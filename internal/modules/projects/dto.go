package projects

import "github.com/prayash42/GamingCommunity/internal/domain"

type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required"`
	Tags        []string `json:"tags,omitempty"`
}

type UpdateProjectRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required"`
	Tags        []string `json:"tags,omitempty"`
}

type SubmitRatingRequest struct {
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Content string `json:"content,omitempty"`
}

type ApplyRequest struct {
	Message string `json:"message,omitempty"`
}

type UpdateCollabStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted declined"`
}

// ProjectResponse decorates a project with its derived average so clients
// never recompute it from sum and count.
type ProjectResponse struct {
	domain.Project
	AverageRating float64 `json:"average_rating"`
}

func toProjectResponse(p domain.Project) ProjectResponse {
	return ProjectResponse{Project: p, AverageRating: p.AverageRating()}
}
