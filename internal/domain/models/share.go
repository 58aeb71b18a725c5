package models

import "time"

// Share maps an opaque, unguessable token to one published version.
// At most one share per document is active at any time; the token is
// resolved publicly (no auth) by the share flow.
type Share struct {
	ID        string    `json:"id" db:"id"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	DocID     string    `json:"doc_id" db:"doc_id"`
	VersionID string    `json:"version_id" db:"version_id"`
	Token     string    `json:"token" db:"token"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
