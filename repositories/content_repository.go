package repositories

import (
	"strings"

	"second-brain-server/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentRepository interface {
	Create(content *models.Content) error
	GetByIDForOwner(id, ownerID uint) (*models.Content, error)
	GetListForOwner(ownerID uint, params models.ContentListParams) ([]models.Content, error)
	UpdateWithTags(content *models.Content, tags *[]models.Tag) error
	Delete(content *models.Content) error
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(content *models.Content) error {
	return r.db.Create(content).Error
}

// GetByIDForOwner filters on (id, user_id) in one query, so content owned by
// someone else is indistinguishable from content that does not exist.
func (r *contentRepository) GetByIDForOwner(id, ownerID uint) (*models.Content, error) {
	var content models.Content
	err := r.db.Where("contents.id = ? AND contents.user_id = ?", id, ownerID).
		Preload("User").
		Preload("Tags").
		First(&content).Error
	return &content, err
}

func (r *contentRepository) GetListForOwner(ownerID uint, params models.ContentListParams) ([]models.Content, error) {
	var contents []models.Content

	query := r.db.Model(&models.Content{}).
		Where("contents.user_id = ?", ownerID).
		Preload("User").
		Preload("Tags")

	if params.Type != "" {
		query = query.Where("contents.type = ?", params.Type)
	}

	if params.TagID > 0 {
		query = query.Joins("JOIN content_tags ON content_tags.content_id = contents.id").
			Where("content_tags.tag_id = ?", params.TagID)
	}

	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(contents.title) LIKE ? OR LOWER(contents.description) LIKE ?", pattern, pattern)
	}

	err := query.Order("contents.created_at desc").Find(&contents).Error
	return contents, err
}

// UpdateWithTags saves the scalar columns and, when tags is non-nil, replaces
// the whole tag association in the same transaction. Replace-after-save in one
// transaction keeps a failed attach from leaving the content tag-less.
func (r *contentRepository) UpdateWithTags(content *models.Content, tags *[]models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(content).Error; err != nil {
			return err
		}
		if tags != nil {
			assoc := tx.Model(content).Association("Tags")
			if len(*tags) == 0 {
				if err := assoc.Clear(); err != nil {
					return err
				}
			} else if err := assoc.Replace(*tags); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *contentRepository) Delete(content *models.Content) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(content).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(content).Error
	})
}
