// Package domain defines catalog tags.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/errors"
)

// Tag labels catalog entries. The (Type, Label) pair is unique.
type Tag struct {
	ID        uuid.UUID
	Type      string
	Label     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TagInput contains the writable tag fields.
type TagInput struct {
	Type   string
	Label  string
	Active bool
}

// Tag errors.
var (
	ErrTagNotFound = errors.Wrap(errors.ErrNotFound, "tag not found")
	ErrTagExists   = errors.Wrap(errors.ErrConflict, "tag with this type and label already exists")
)
