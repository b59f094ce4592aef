package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/todolist-api/internal/models"
	"github.com/yukikurage/todolist-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTodoNotFound        = errors.New("todo not found")
	ErrDescriptionRequired = errors.New("description is required")
)

// TodoService handles todo business logic
type TodoService struct {
	todoRepo repository.TodoRepository
	tx       repository.Transactor
}

// NewTodoService creates a new TodoService. Writes that touch a todo and its
// tags run inside one transaction from tx.
func NewTodoService(todoRepo repository.TodoRepository, tx repository.Transactor) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
		tx:       tx,
	}
}

// CreateTodoInput represents input for creating a todo
type CreateTodoInput struct {
	Description string
	DueDate     *time.Time
	TagIDs      []uint64
}

// UpdateTodoInput represents input for updating a todo. Nil fields are left
// unchanged. A non-nil TagIDs replaces the tag set, so an empty slice
// clears it.
type UpdateTodoInput struct {
	Description *string
	IsDone      *bool
	DueDate     *time.Time
	TagIDs      *[]uint64
}

// List returns the subject's todos with their tags
func (s *TodoService) List(ctx context.Context, subject string) ([]models.Todo, error) {
	todos, err := s.todoRepo.List(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// Get returns one of the subject's todos with its tags
func (s *TodoService) Get(ctx context.Context, subject string, id uint64) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByID(ctx, subject, id, "Tags")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	return todo, nil
}

// Create inserts a todo owned by subject, then attaches the owned subset of
// the requested tags. Both steps commit or roll back together.
func (s *TodoService) Create(ctx context.Context, subject string, input CreateTodoInput) (*models.Todo, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, ErrDescriptionRequired
	}

	now := time.Now()
	todo := &models.Todo{
		Description: input.Description,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		CognitoSub:  subject,
	}

	err := s.tx.WithinTransaction(ctx, func(todos repository.TodoRepository, tags repository.TagRepository) error {
		if err := todos.Create(ctx, todo); err != nil {
			return fmt.Errorf("failed to create todo: %w", err)
		}

		owned, err := NewTagResolver(tags).Resolve(ctx, subject, input.TagIDs)
		if err != nil {
			return err
		}
		if err := todos.ReplaceTags(ctx, todo, owned); err != nil {
			return fmt.Errorf("failed to attach tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, subject, todo.ID)
}

// Update applies the non-nil fields of input. An empty description is
// ignored. The update time is refreshed even when nothing else changes.
// Field and tag changes commit or roll back together.
func (s *TodoService) Update(ctx context.Context, subject string, id uint64, input UpdateTodoInput) error {
	todo, err := s.todoRepo.FindByID(ctx, subject, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to find todo: %w", err)
	}

	if input.Description != nil && *input.Description != "" {
		todo.Description = *input.Description
	}
	if input.IsDone != nil {
		todo.IsDone = *input.IsDone
	}
	if input.DueDate != nil {
		todo.DueDate = input.DueDate
	}
	todo.UpdatedAt = time.Now()

	return s.tx.WithinTransaction(ctx, func(todos repository.TodoRepository, tags repository.TagRepository) error {
		if err := todos.Update(ctx, todo); err != nil {
			return fmt.Errorf("failed to update todo: %w", err)
		}

		if input.TagIDs == nil {
			return nil
		}
		owned, err := NewTagResolver(tags).Resolve(ctx, subject, *input.TagIDs)
		if err != nil {
			return err
		}
		if err := todos.ReplaceTags(ctx, todo, owned); err != nil {
			return fmt.Errorf("failed to replace tags: %w", err)
		}
		return nil
	})
}

// Delete removes one of the subject's todos
func (s *TodoService) Delete(ctx context.Context, subject string, id uint64) error {
	if err := s.todoRepo.Delete(ctx, subject, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}
