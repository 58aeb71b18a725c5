package imagecheck

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"flexdeck/internal/domain/models/flexdoc"
	"flexdeck/internal/domain/services"
)

// maxImageBytes is the advisory size ceiling for hero images. Larger
// images still render but load slowly on mobile, so they only warn.
const maxImageBytes = 5 << 20

// checker probes image URLs with a HEAD request, falling back to a
// ranged GET for hosts that reject HEAD.
type checker struct {
	client *http.Client
	logger *slog.Logger
}

// NewChecker creates an image checker with the given probe timeout
func NewChecker(timeout time.Duration, logger *slog.Logger) services.ImageChecker {
	return &checker{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Check probes the URL and classifies it. It never returns an error;
// network failures classify as fail with a reason code so the caller
// can persist the result and move on.
func (c *checker) Check(ctx context.Context, rawURL string) *flexdoc.ImageCheckResult {
	result := func(ok bool, level flexdoc.CheckLevel, reason string) *flexdoc.ImageCheckResult {
		return &flexdoc.ImageCheckResult{
			OK:         ok,
			Level:      level,
			ReasonCode: reason,
			CheckedAt:  time.Now().UTC().Format(time.RFC3339),
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return result(false, flexdoc.CheckFail, "invalid_url")
	}
	if u.Scheme != "https" {
		// The platform refuses non-HTTPS image URLs outright
		return result(false, flexdoc.CheckFail, "not_https")
	}

	resp, err := c.probe(ctx, rawURL)
	if err != nil {
		c.logger.Debug("image probe failed", "url", rawURL, "error", err)
		return result(false, flexdoc.CheckFail, "unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return result(false, flexdoc.CheckFail, "bad_status")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return result(false, flexdoc.CheckFail, "not_an_image")
	}

	if resp.ContentLength > maxImageBytes {
		return result(true, flexdoc.CheckWarn, "too_large")
	}
	if contentType == "" {
		// Host did not say what it is serving; let it through with a
		// warning instead of blocking publish on a flaky CDN
		return result(true, flexdoc.CheckWarn, "unknown_content_type")
	}

	return result(true, flexdoc.CheckPass, "")
}

// probe issues HEAD first and retries with a single-byte ranged GET
// when the host rejects HEAD.
func (c *checker) probe(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err == nil && resp.StatusCode != http.StatusMethodNotAllowed && resp.StatusCode != http.StatusNotImplemented {
		return resp, nil
	}
	if resp != nil {
		resp.Body.Close()
	}

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Range", "bytes=0-0")

	return c.client.Do(req)
}
