package repository

import (
	"context"

	"github.com/yukikurage/todolist-api/internal/database"
	"github.com/yukikurage/todolist-api/internal/models"
	"gorm.io/gorm"
)

// GormTagRepository is a GORM implementation of TagRepository
type GormTagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &GormTagRepository{db: db}
}

// List returns all tags owned by subject
func (r *GormTagRepository) List(ctx context.Context, subject string) ([]models.Tag, error) {
	tags := []models.Tag{}
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(subject)).
		Order("tag_id").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// FindByID finds an owned tag by ID
func (r *GormTagRepository) FindByID(ctx context.Context, subject string, id uint64) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(subject)).
		Where("tag_id = ?", id).
		First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindOwnedByIDs returns the subset of ids that are tags owned by subject
func (r *GormTagRepository) FindOwnedByIDs(ctx context.Context, subject string, ids []uint64) ([]models.Tag, error) {
	tags := []models.Tag{}
	if len(ids) == 0 {
		return tags, nil
	}

	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(subject)).
		Where("tag_id IN ?", ids).
		Order("tag_id").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// Create inserts a tag
func (r *GormTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

// Update renames an owned tag
func (r *GormTagRepository) Update(ctx context.Context, tag *models.Tag) error {
	result := r.db.WithContext(ctx).
		Model(&models.Tag{}).
		Scopes(database.OwnedBy(tag.CognitoSub)).
		Where("tag_id = ?", tag.ID).
		Update("tag_name", tag.Name)
	return result.Error
}

// Delete removes an owned tag and its association rows
func (r *GormTagRepository) Delete(ctx context.Context, subject string, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Tag
		if err := tx.Scopes(database.OwnedBy(subject)).
			Where("tag_id = ?", id).
			First(&existing).Error; err != nil {
			return err
		}

		if err := tx.Where("tag_id = ?", id).Delete(&models.TodoTag{}).Error; err != nil {
			return err
		}

		return tx.Delete(&existing).Error
	})
}
