package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/todolist-api/internal/models"
	"github.com/yukikurage/todolist-api/internal/repository"
	"github.com/yukikurage/todolist-api/internal/utils"
)

// TagResolver turns client-supplied tag ids into tags the caller owns.
type TagResolver struct {
	tagRepo repository.TagRepository
}

// NewTagResolver creates a new TagResolver
func NewTagResolver(tagRepo repository.TagRepository) *TagResolver {
	return &TagResolver{tagRepo: tagRepo}
}

// Resolve returns the tags among ids that exist and belong to subject.
// Unknown and foreign ids are dropped without error.
func (r *TagResolver) Resolve(ctx context.Context, subject string, ids []uint64) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}

	tags, err := r.tagRepo.FindOwnedByIDs(ctx, subject, utils.UniqueUint64(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tags: %w", err)
	}
	return tags, nil
}
