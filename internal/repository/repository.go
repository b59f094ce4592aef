package repository

import (
	"context"

	"github.com/yukikurage/todolist-api/internal/models"
)

// Every method takes the owning subject, and no method reads or writes a row
// owned by anyone else. A row owned by another subject is reported exactly
// like a missing one, as gorm.ErrRecordNotFound.

// TodoRepository defines the interface for todo data access
type TodoRepository interface {
	// List returns all todos owned by subject with their tags
	List(ctx context.Context, subject string) ([]models.Todo, error)

	// FindByID finds an owned todo by ID with optional preloading
	FindByID(ctx context.Context, subject string, id uint64, preload ...string) (*models.Todo, error)

	// Create inserts a todo; the caller sets CognitoSub
	Create(ctx context.Context, todo *models.Todo) error

	// Update writes description, done flag, due date and update time
	Update(ctx context.Context, todo *models.Todo) error

	// ReplaceTags clears the todo's association and adds tags
	ReplaceTags(ctx context.Context, todo *models.Todo, tags []models.Tag) error

	// Delete removes an owned todo and its association rows
	Delete(ctx context.Context, subject string, id uint64) error
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	// List returns all tags owned by subject
	List(ctx context.Context, subject string) ([]models.Tag, error)

	// FindByID finds an owned tag by ID
	FindByID(ctx context.Context, subject string, id uint64) (*models.Tag, error)

	// FindOwnedByIDs returns the tags among ids that exist and belong to subject
	FindOwnedByIDs(ctx context.Context, subject string, ids []uint64) ([]models.Tag, error)

	// Create inserts a tag; the caller sets CognitoSub
	Create(ctx context.Context, tag *models.Tag) error

	// Update renames an owned tag
	Update(ctx context.Context, tag *models.Tag) error

	// Delete removes an owned tag and its association rows
	Delete(ctx context.Context, subject string, id uint64) error
}
