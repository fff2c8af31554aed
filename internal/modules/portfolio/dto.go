package portfolio

type CreateItemRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type UpdateItemRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type AttachLinkRequest struct {
	URL string `json:"url" binding:"required,url"`
}
