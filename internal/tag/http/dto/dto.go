// Package dto provides data transfer objects for the tag HTTP layer.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	"github.com/ourshop/shop/internal/tag/domain"
	customValidation "github.com/ourshop/shop/internal/validation"
)

// TagRequest carries the writable tag fields for create and update.
type TagRequest struct {
	Type   string `json:"type"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Validate checks if the tag request is valid.
func (r *TagRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Type, validation.Required, customValidation.NotBlank, validation.Length(1, 64)),
		validation.Field(&r.Label, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
	)
}

// ToInput converts the request to a domain input.
func (r *TagRequest) ToInput() *domain.TagInput {
	return &domain.TagInput{Type: r.Type, Label: r.Label, Active: r.Active}
}

// TagResponse represents a tag in API responses.
type TagResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Label     string    `json:"label"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagListResponse wraps a page of tags.
type TagListResponse struct {
	Data []TagResponse `json:"data"`
}

// MapTagToResponse converts a domain tag to an API response.
func MapTagToResponse(tag *domain.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID.String(),
		Type:      tag.Type,
		Label:     tag.Label,
		Active:    tag.Active,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}

// MapTagsToListResponse converts domain tags to a list response.
func MapTagsToListResponse(tags []*domain.Tag) TagListResponse {
	data := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		data = append(data, MapTagToResponse(tag))
	}
	return TagListResponse{Data: data}
}
