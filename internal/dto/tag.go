package dto

import (
	"github.com/yukikurage/todolist-api/internal/models"
)

// TagRequest is the body of POST /tags and PUT /tags/:id
type TagRequest struct {
	TagName string `json:"tagName" binding:"required,max=50"`
}

// TagResponse represents a tag in API responses
type TagResponse struct {
	ID   uint64 `json:"tagId"`
	Name string `json:"tagName"`
}

func ToTagResponse(tag models.Tag) TagResponse {
	return TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
	}
}

// ToTagResponses converts a slice of tags, never returning nil
func ToTagResponses(tags []models.Tag) []TagResponse {
	out := make([]TagResponse, len(tags))
	for i, tag := range tags {
		out[i] = ToTagResponse(tag)
	}
	return out
}
