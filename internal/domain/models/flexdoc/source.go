package flexdoc

// ImageCheckResult is the cached outcome of the out-of-core
// reachability probe for an externally linked image.
type ImageCheckResult struct {
	OK         bool       `json:"ok"`
	Level      CheckLevel `json:"level"`
	ReasonCode string     `json:"reasonCode,omitempty"`
	CheckedAt  string     `json:"checkedAt,omitempty"` // RFC 3339
}

// ImageSource points at an uploaded asset or an external URL.
// External sources carry the last reachability check result; a "fail"
// check blocks publish but not preview.
type ImageSource struct {
	Kind      SourceKind        `json:"kind"`
	AssetID   string            `json:"assetId,omitempty"`
	URL       string            `json:"url"`
	LastCheck *ImageCheckResult `json:"lastCheck,omitempty"`
}

// VideoSource points at a video plus its mandatory preview image.
type VideoSource struct {
	Kind           SourceKind `json:"kind"`
	AssetID        string     `json:"assetId,omitempty"`
	URL            string     `json:"url"`
	PreviewAssetID string     `json:"previewAssetId,omitempty"`
	PreviewURL     string     `json:"previewUrl"`
}
