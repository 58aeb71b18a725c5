package models

import (
	"time"

	"flexdeck/internal/domain/models/flexdoc"
)

// Template is a reusable document seed, either public (library) or
// owned by a user. Cloning a template produces a fresh draft.
type Template struct {
	ID          string           `json:"id" db:"id"`
	OwnerID     *string          `json:"owner_id" db:"owner_id"` // NULL = built-in public template
	IsPublic    bool             `json:"is_public" db:"is_public"`
	Name        string           `json:"name" db:"name"`
	Description *string          `json:"description" db:"description"`
	DocModel    flexdoc.Document `json:"doc_model" db:"doc_model"` // JSONB
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`
}
