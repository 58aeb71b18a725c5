package services

import (
	"context"

	"flexdeck/internal/domain/models/flexdoc"
)

// ImageChecker probes external image URLs for publish-time viability.
// Checks are advisory and fail soft: an unreachable check service
// never blocks editing, it only records a warn-level result.
type ImageChecker interface {
	// Check probes the URL and classifies it as pass, warn or fail
	Check(ctx context.Context, url string) *flexdoc.ImageCheckResult
}
