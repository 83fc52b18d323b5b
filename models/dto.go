package models

import "time"

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string         `json:"token"`
	User  UserProjection `json:"user"`
}

type CreateTagRequest struct {
	Title string `json:"title"`
}

type CreateContentRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Link        *string `json:"link"`
	Type        string  `json:"type"`
	TagIDs      []uint  `json:"tagIds"`
}

// UpdateContentRequest is a partial patch: nil means "leave untouched". TagIDs
// is a pointer to a slice so an explicit empty list (clear all tags) is
// distinguishable from the field being absent.
type UpdateContentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
	Type        *string `json:"type"`
	TagIDs      *[]uint `json:"tagIds"`
}

type ContentListParams struct {
	Type   string `form:"type"`
	TagID  uint   `form:"tagId"`
	Search string `form:"search"`
}

type ContentResponse struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Link        *string        `json:"link"`
	Type        ContentType    `json:"type"`
	Tags        []Tag          `json:"tags"`
	User        UserProjection `json:"user"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// HomeContentResponse drops the owner echo and trims tags to id+title. It is
// the landing-view projection, not a filtered variant of ContentResponse.
type HomeContentResponse struct {
	ID          uint         `json:"id"`
	Type        ContentType  `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Link        *string      `json:"link"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Tags        []TagSummary `json:"tags"`
}

func NewContentResponse(content *Content) ContentResponse {
	tags := content.Tags
	if tags == nil {
		tags = []Tag{}
	}
	return ContentResponse{
		ID:          content.ID,
		Title:       content.Title,
		Description: content.Description,
		Link:        content.Link,
		Type:        content.Type,
		Tags:        tags,
		User:        content.User.Projection(),
		CreatedAt:   content.CreatedAt,
		UpdatedAt:   content.UpdatedAt,
	}
}

func NewContentResponses(contents []Content) []ContentResponse {
	responses := make([]ContentResponse, 0, len(contents))
	for i := range contents {
		responses = append(responses, NewContentResponse(&contents[i]))
	}
	return responses
}

func NewHomeContentResponse(content *Content) HomeContentResponse {
	tags := make([]TagSummary, 0, len(content.Tags))
	for i := range content.Tags {
		tags = append(tags, content.Tags[i].Summary())
	}
	return HomeContentResponse{
		ID:          content.ID,
		Type:        content.Type,
		Title:       content.Title,
		Description: content.Description,
		Link:        content.Link,
		CreatedAt:   content.CreatedAt,
		UpdatedAt:   content.UpdatedAt,
		Tags:        tags,
	}
}

func NewHomeContentResponses(contents []Content) []HomeContentResponse {
	responses := make([]HomeContentResponse, 0, len(contents))
	for i := range contents {
		responses = append(responses, NewHomeContentResponse(&contents[i]))
	}
	return responses
}
