package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todolist-api/internal/dto"
	apierrors "github.com/yukikurage/todolist-api/internal/errors"
	"github.com/yukikurage/todolist-api/internal/services"
)

// TagHandler handles tag-related HTTP requests
type TagHandler struct {
	tagService *services.TagService
	logger     *slog.Logger
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(tagService *services.TagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{
		tagService: tagService,
		logger:     logger,
	}
}

func (h *TagHandler) ListTags(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	tags, err := h.tagService.List(c.Request.Context(), subject)
	if err != nil {
		internalError(c, h.logger, "list tags", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTagResponses(tags))
}

func (h *TagHandler) GetTag(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}
	id, ok := requireID(c)
	if !ok {
		return
	}

	tag, err := h.tagService.Get(c.Request.Context(), subject, id)
	if err != nil {
		h.respondTagError(c, "get tag", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTagResponse(*tag))
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	tag, err := h.tagService.Create(c.Request.Context(), subject, req.TagName)
	if err != nil {
		internalError(c, h.logger, "create tag", err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", c.Request.URL.Path, tag.ID))
	c.JSON(http.StatusCreated, dto.ToTagResponse(*tag))
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}
	id, ok := requireID(c)
	if !ok {
		return
	}

	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	if err := h.tagService.Update(c.Request.Context(), subject, id, req.TagName); err != nil {
		h.respondTagError(c, "update tag", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}
	id, ok := requireID(c)
	if !ok {
		return
	}

	if err := h.tagService.Delete(c.Request.Context(), subject, id); err != nil {
		h.respondTagError(c, "delete tag", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TagHandler) respondTagError(c *gin.Context, op string, err error) {
	if errors.Is(err, services.ErrTagNotFound) {
		apierrors.NotFound(c, "Tag not found")
		return
	}
	internalError(c, h.logger, op, err)
}
