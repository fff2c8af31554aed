package portfolio

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prayash42/GamingCommunity/internal/pkg/response"
	"github.com/prayash42/GamingCommunity/internal/storage"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/users/:id/portfolio", h.ListByUser)
		public.GET("/portfolio/:id", h.GetByID)
	}
	if protected != nil {
		protected.POST("/portfolio", h.Create)
		protected.PUT("/portfolio/:id", h.Update)
		protected.DELETE("/portfolio/:id", h.Delete)
		protected.POST("/portfolio/:id/attachment", h.AttachFile)
		protected.POST("/portfolio/:id/attachment/link", h.AttachLink)
		protected.DELETE("/portfolio/:id/attachment", h.Detach)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	item, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	items, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid portfolio item ID")
		return
	}

	item, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid portfolio item ID")
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.svc.Update(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid portfolio item ID")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) AttachFile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid portfolio item ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No file provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cannot read file")
		return
	}
	defer file.Close()

	att, err := h.svc.AttachFile(c.Request.Context(), c.GetInt64("user_id"), id,
		fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, att)
}

func (h *Handler) AttachLink(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid portfolio item ID")
		return
	}

	var req AttachLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A valid URL is required")
		return
	}

	att, err := h.svc.AttachLink(c.Request.Context(), c.GetInt64("user_id"), id, req.URL)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, att)
}

func (h *Handler) Detach(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid portfolio item ID")
		return
	}

	if err := h.svc.Detach(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"detached": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input")
	case errors.Is(err, ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File is empty")
	case errors.Is(err, ErrUnsupportedFile):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Only image and PDF uploads are supported; use a link instead")
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "VALIDATION_ERROR", "File exceeds the maximum allowed size")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Portfolio item not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this portfolio item")
	case errors.Is(err, ErrAttachmentExists):
		response.Error(c, http.StatusConflict, "CONFLICT", "Item already has an attachment; detach it first")
	case errors.Is(err, ErrNoAttachment):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Item has no attachment")
	case errors.Is(err, storage.ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "Storage key collision")
	case errors.Is(err, storage.ErrUpload):
		response.Error(c, http.StatusBadGateway, "UPLOAD_FAILED", "Upload failed, try again")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
