package domain

import (
	"path/filepath"
	"strings"
	"time"
)

type AttachmentKind string

const (
	AttachmentImage AttachmentKind = "image"
	AttachmentPdf   AttachmentKind = "pdf"
	AttachmentLink  AttachmentKind = "link"
)

// Attachment is the single optional file-or-link reference held by a
// portfolio item. StorageKey is empty for links; for image/pdf it names the
// stored object so detach can delete exactly the bytes that were uploaded.
type Attachment struct {
	Kind        AttachmentKind `json:"kind"`
	URL         string         `json:"url"`
	DisplayName string         `json:"display_name"`
	StorageKey  string         `json:"-"`
}

// PortfolioItem is one entry in a user's portfolio, with at most one
// attachment.
type PortfolioItem struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"user_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Attachment  *Attachment `json:"attachment,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ClassifyAttachment derives the attachment kind from a file name's
// extension, case-insensitively. Anything that is not a known image type or
// a PDF (including names with no extension) is treated as a link.
func ClassifyAttachment(fileName string) AttachmentKind {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch {
	case imageExtensions[ext]:
		return AttachmentImage
	case ext == ".pdf":
		return AttachmentPdf
	default:
		return AttachmentLink
	}
}
