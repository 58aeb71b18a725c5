package models

import (
	"encoding/json"
	"time"

	"flexdeck/internal/domain/models/flexdoc"
)

// Version is one published, immutable snapshot of a document: the
// compiled wire-format JSON plus the validation report taken at
// publish time. Versions are append-only and monotonically numbered
// per document; they are never edited after creation.
type Version struct {
	ID               string          `json:"id" db:"id"`
	OwnerID          string          `json:"owner_id" db:"owner_id"`
	DocID            string          `json:"doc_id" db:"doc_id"`
	VersionNo        int             `json:"version_no" db:"version_no"`
	FlexJSON         json.RawMessage `json:"flex_json" db:"flex_json"` // persisted verbatim, handed unmodified to the share flow
	ValidationReport flexdoc.Report  `json:"validation_report" db:"validation_report"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}
