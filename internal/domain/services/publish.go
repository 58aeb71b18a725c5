package services

import (
	"context"
	"encoding/json"

	"flexdeck/internal/domain/models"
	"flexdeck/internal/flex/wire"
)

// PublishService handles the publish gate, version snapshots and share
// tokens.
type PublishService interface {
	// Publish runs the strict gate, compiles the draft with a freshly
	// minted token, and atomically inserts the next version snapshot
	// while swapping the active share. Fails with ErrNotPublishable
	// when blocking issues remain.
	Publish(ctx context.Context, docID, ownerID string) (*PublishResult, error)

	// ListVersions lists a document's snapshots, newest first
	ListVersions(ctx context.Context, docID, ownerID string) ([]models.Version, error)

	// GetVersion retrieves one snapshot
	GetVersion(ctx context.Context, versionID, ownerID string) (*models.Version, error)

	// GetActiveShare returns the document's active share, or
	// ErrNotFound when it was never published
	GetActiveShare(ctx context.Context, docID, ownerID string) (*models.Share, error)

	// ResolveToken resolves a share token publicly. Revoked or unknown
	// tokens return ErrNotFound with no hint whether the token ever
	// existed.
	ResolveToken(ctx context.Context, token string) (*ShareResolution, error)

	// ResolveActiveToken returns the active token for a document
	// publicly. The anonymous share viewer uses this when it is opened
	// with a document id instead of a token.
	ResolveActiveToken(ctx context.Context, docID string) (string, error)

	// ShareMessages compiles the draft into the ordered message slice
	// handed to the platform share API, splitting video heroes into
	// standalone video messages.
	ShareMessages(ctx context.Context, docID, ownerID string) ([]wire.ShareMessage, error)
}

// PublishResult is everything the editor needs after a publish
type PublishResult struct {
	Version  *models.Version `json:"version"`
	Share    *models.Share   `json:"share"`
	ShareURL string          `json:"share_url"`
}

// ShareResolution is the public payload behind a share token
type ShareResolution struct {
	Token     string          `json:"token"`
	DocID     string          `json:"doc_id"`
	VersionNo int             `json:"version_no"`
	FlexJSON  json.RawMessage `json:"flex_json"`
}
