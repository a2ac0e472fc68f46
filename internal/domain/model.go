package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel is the common base struct for all domain models.
// Identifiers are opaque UUID strings assigned on first insert; an empty ID
// means the entity has not been persisted yet, and the JSON representation
// omits it entirely in that case.
type BaseModel struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// GetID returns the entity identifier, or the empty string for a transient
// (not-yet-created) entity.
func (m BaseModel) GetID() string {
	return m.ID
}

// BeforeCreate assigns a UUID identifier when none is set.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// RefID extracts the identifier carried by a relation value, or nil when the
// relation is unset or references a transient entity.
func RefID[T interface{ GetID() string }](ref *T) *string {
	if ref == nil {
		return nil
	}
	id := (*ref).GetID()
	if id == "" {
		return nil
	}
	return &id
}

// PageRequest holds pagination, sorting, and filtering parameters.
type PageRequest struct {
	Page     int
	PageSize int
	Sort     string
	Filter   map[string]string
}

// PageResult is a page of items together with pagination metadata.
type PageResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}
