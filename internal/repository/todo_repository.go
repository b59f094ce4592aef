package repository

import (
	"context"

	"github.com/yukikurage/todolist-api/internal/database"
	"github.com/yukikurage/todolist-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTodoRepository is a GORM implementation of TodoRepository
type GormTodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &GormTodoRepository{db: db}
}

// List returns all todos owned by subject with their tags
func (r *GormTodoRepository) List(ctx context.Context, subject string) ([]models.Todo, error) {
	todos := []models.Todo{}
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(subject)).
		Preload("Tags").
		Order("todo_id").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// FindByID finds an owned todo by ID with optional preloading
func (r *GormTodoRepository) FindByID(ctx context.Context, subject string, id uint64, preload ...string) (*models.Todo, error) {
	var todo models.Todo
	query := r.db.WithContext(ctx).Scopes(database.OwnedBy(subject))

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("todo_id = ?", id).First(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// Create inserts a todo without touching associations
func (r *GormTodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(todo).Error
}

// Update writes the mutable columns of todo
func (r *GormTodoRepository) Update(ctx context.Context, todo *models.Todo) error {
	return r.db.WithContext(ctx).
		Model(todo).
		Scopes(database.OwnedBy(todo.CognitoSub)).
		Select("description", "is_done", "due_date", "update_at").
		Updates(todo).Error
}

// ReplaceTags clears the todo's association, then adds tags
func (r *GormTodoRepository) ReplaceTags(ctx context.Context, todo *models.Todo, tags []models.Tag) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_id = ?", todo.ID).Delete(&models.TodoTag{}).Error; err != nil {
			return err
		}

		if len(tags) == 0 {
			return nil
		}

		rows := make([]models.TodoTag, len(tags))
		for i, tag := range tags {
			rows[i] = models.TodoTag{TodoID: todo.ID, TagID: tag.ID}
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return err
	}

	todo.Tags = tags
	return nil
}

// Delete removes an owned todo and its association rows
func (r *GormTodoRepository) Delete(ctx context.Context, subject string, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Todo
		if err := tx.Scopes(database.OwnedBy(subject)).
			Where("todo_id = ?", id).
			First(&existing).Error; err != nil {
			return err
		}

		if err := tx.Where("todo_id = ?", id).Delete(&models.TodoTag{}).Error; err != nil {
			return err
		}

		return tx.Delete(&existing).Error
	})
}
