package ideas

type CreateIdeaRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required"`
	Genre       string   `json:"genre,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type UpdateIdeaRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required"`
	Genre       string   `json:"genre,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type UpvoteResponse struct {
	ID      int64 `json:"id"`
	Upvotes int64 `json:"upvotes"`
}
