package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/todolist-api/internal/models"
	"github.com/yukikurage/todolist-api/internal/repository"
	"gorm.io/gorm"
)

var ErrTagNotFound = errors.New("tag not found")

// TagService handles tag business logic
type TagService struct {
	tagRepo repository.TagRepository
}

// NewTagService creates a new TagService
func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

func (s *TagService) List(ctx context.Context, subject string) ([]models.Tag, error) {
	tags, err := s.tagRepo.List(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

func (s *TagService) Get(ctx context.Context, subject string, id uint64) (*models.Tag, error) {
	tag, err := s.tagRepo.FindByID(ctx, subject, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}
	return tag, nil
}

func (s *TagService) Create(ctx context.Context, subject, name string) (*models.Tag, error) {
	tag := &models.Tag{
		Name:       name,
		CognitoSub: subject,
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

// Update renames one of the subject's tags
func (s *TagService) Update(ctx context.Context, subject string, id uint64, name string) error {
	tag, err := s.Get(ctx, subject, id)
	if err != nil {
		return err
	}

	tag.Name = name
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return fmt.Errorf("failed to update tag: %w", err)
	}
	return nil
}

// Delete removes one of the subject's tags and detaches it from every todo
func (s *TagService) Delete(ctx context.Context, subject string, id uint64) error {
	if err := s.tagRepo.Delete(ctx, subject, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}
