package services

import (
	"errors"

	"second-brain-server/models"
	"second-brain-server/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	// CreateOrGet returns the tag for the normalized title, creating it on
	// first use. The bool reports whether a new row was created.
	CreateOrGet(rawTitle string) (*models.Tag, bool, error)
	List() ([]models.Tag, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) CreateOrGet(rawTitle string) (*models.Tag, bool, error) {
	title := models.NormalizeTagTitle(rawTitle)
	if title == "" {
		return nil, false, models.ErrorValidation{Message: "Tag title is required"}
	}

	existing, err := s.tagRepo.GetByTitle(title)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	tag := &models.Tag{Title: title}
	if err := s.tagRepo.Create(tag); err != nil {
		// A concurrent creator won the unique index on title. Their row is
		// the tag we wanted, so fetch it instead of reporting a conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, fetchErr := s.tagRepo.GetByTitle(title)
			if fetchErr != nil {
				return nil, false, fetchErr
			}
			return winner, false, nil
		}
		return nil, false, err
	}

	return tag, true, nil
}

func (s *tagService) List() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}
