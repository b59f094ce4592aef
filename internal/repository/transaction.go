package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor runs a unit of work against repositories that share one
// database transaction. Returning an error from fn rolls everything back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(todos TodoRepository, tags TagRepository) error) error
}

// GormTransactor is a GORM implementation of Transactor
type GormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a new Transactor
func NewTransactor(db *gorm.DB) Transactor {
	return &GormTransactor{db: db}
}

// WithinTransaction calls fn with repositories bound to a single transaction
func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(todos TodoRepository, tags TagRepository) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewTodoRepository(tx), NewTagRepository(tx))
	})
}
