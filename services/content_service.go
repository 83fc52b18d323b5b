package services

import (
	"errors"

	"second-brain-server/models"
	"second-brain-server/repositories"

	"gorm.io/gorm"
)

type ContentService interface {
	Create(ownerID uint, req models.CreateContentRequest) (*models.Content, error)
	ListForOwner(ownerID uint, params models.ContentListParams) ([]models.Content, error)
	ListHome(ownerID uint) ([]models.Content, error)
	ListByType(ownerID uint, contentType models.ContentType, params models.ContentListParams) ([]models.Content, error)
	GetByID(ownerID, contentID uint) (*models.Content, error)
	Update(ownerID, contentID uint, req models.UpdateContentRequest) (*models.Content, error)
	Delete(ownerID, contentID uint) error
}

type contentService struct {
	contentRepo repositories.ContentRepository
	tagRepo     repositories.TagRepository
}

func NewContentService(contentRepo repositories.ContentRepository, tagRepo repositories.TagRepository) ContentService {
	return &contentService{
		contentRepo: contentRepo,
		tagRepo:     tagRepo,
	}
}

func (s *contentService) Create(ownerID uint, req models.CreateContentRequest) (*models.Content, error) {
	if req.Title == "" || req.Description == "" || req.Type == "" {
		return nil, models.ErrorValidation{Message: "Title, description, and type are required"}
	}

	contentType := models.ContentType(req.Type)
	if !contentType.IsValid() {
		return nil, models.ErrorValidation{Message: "Invalid content type"}
	}

	// Resolve tag ids before any row is written so an unknown id rejects the
	// whole create.
	tags, err := s.resolveTags(req.TagIDs)
	if err != nil {
		return nil, err
	}

	content := &models.Content{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Link:        normalizeLink(req.Link),
		Type:        contentType,
		Tags:        tags,
	}

	if err := s.contentRepo.Create(content); err != nil {
		return nil, err
	}

	return s.GetByID(ownerID, content.ID)
}

func (s *contentService) ListForOwner(ownerID uint, params models.ContentListParams) ([]models.Content, error) {
	return s.contentRepo.GetListForOwner(ownerID, params)
}

func (s *contentService) ListHome(ownerID uint) ([]models.Content, error) {
	return s.contentRepo.GetListForOwner(ownerID, models.ContentListParams{})
}

func (s *contentService) ListByType(ownerID uint, contentType models.ContentType, params models.ContentListParams) ([]models.Content, error) {
	params.Type = string(contentType)
	return s.contentRepo.GetListForOwner(ownerID, params)
}

func (s *contentService) GetByID(ownerID, contentID uint) (*models.Content, error) {
	content, err := s.contentRepo.GetByIDForOwner(contentID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Content not found"}
		}
		return nil, err
	}
	return content, nil
}

func (s *contentService) Update(ownerID, contentID uint, req models.UpdateContentRequest) (*models.Content, error) {
	content, err := s.GetByID(ownerID, contentID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil && !models.ContentType(*req.Type).IsValid() {
		return nil, models.ErrorValidation{Message: "Invalid content type"}
	}

	// Resolve the replacement tag set up front; a nil pointer leaves the
	// existing association untouched, an empty list clears it.
	var tags *[]models.Tag
	if req.TagIDs != nil {
		resolved, err := s.resolveTags(*req.TagIDs)
		if err != nil {
			return nil, err
		}
		tags = &resolved
	}

	if req.Title != nil {
		content.Title = *req.Title
	}
	if req.Description != nil {
		content.Description = *req.Description
	}
	if req.Link != nil {
		content.Link = normalizeLink(req.Link)
	}
	if req.Type != nil {
		content.Type = models.ContentType(*req.Type)
	}

	if err := s.contentRepo.UpdateWithTags(content, tags); err != nil {
		return nil, err
	}

	return s.GetByID(ownerID, contentID)
}

func (s *contentService) Delete(ownerID, contentID uint) error {
	content, err := s.GetByID(ownerID, contentID)
	if err != nil {
		return err
	}
	return s.contentRepo.Delete(content)
}

// resolveTags loads the tags for a set of ids, deduplicated so repeating an id
// attaches the tag once. Any id that resolves to nothing rejects the call.
func (s *contentService) resolveTags(ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}

	seen := make(map[uint]bool, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	tags, err := s.tagRepo.GetByIDs(unique)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(unique) {
		return nil, models.ErrorNotFound{Message: "One or more tags not found"}
	}

	return tags, nil
}

// normalizeLink maps an empty link to absent, matching the create contract
// where link defaults to null.
func normalizeLink(link *string) *string {
	if link == nil || *link == "" {
		return nil
	}
	return link
}
