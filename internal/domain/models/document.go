package models

import (
	"time"

	"flexdeck/internal/domain/models/flexdoc"
)

// Doc is a stored draft: the editable document model plus its computed
// status. Status is recomputed on every save, never trusted from the
// client.
type Doc struct {
	ID        string           `json:"id" db:"id"`
	OwnerID   string           `json:"owner_id" db:"owner_id"`
	Type      flexdoc.DocType  `json:"type" db:"type"`
	Title     string           `json:"title" db:"title"`
	Content   flexdoc.Document `json:"content" db:"content"` // JSONB
	Status    flexdoc.Status   `json:"status" db:"status"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" db:"updated_at"`
}
