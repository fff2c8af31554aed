package media

type CreatePostRequest struct {
	Title    string   `json:"title" binding:"required,max=200"`
	Body     string   `json:"body" binding:"required"`
	MediaURL string   `json:"media_url,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type UpdatePostRequest struct {
	Title    string   `json:"title" binding:"required,max=200"`
	Body     string   `json:"body" binding:"required"`
	MediaURL string   `json:"media_url,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type UpvoteResponse struct {
	ID      int64 `json:"id"`
	Upvotes int64 `json:"upvotes"`
}
