package flexdoc

// IssueLevel separates blocking errors from non-blocking warnings.
type IssueLevel string

const (
	LevelError IssueLevel = "error"
	LevelWarn  IssueLevel = "warn"
)

// Status is the computed publish-readiness of a document.
type Status string

const (
	// StatusDraft means structural errors exist; publish is refused.
	StatusDraft Status = "draft"
	// StatusPreviewable means no errors, but at least one image's
	// publish-reachability is unconfirmed; preview works, publish is
	// blocked until the image check passes.
	StatusPreviewable Status = "previewable"
	// StatusPublishable means the document passes every check.
	StatusPublishable Status = "publishable"
)

// Machine-stable issue codes. UI highlighting and tests key off these,
// so they never change meaning.
const (
	CodeFooterTooManyButtons = "E_FOOTER_TOO_MANY_BUTTONS"
	CodeTextRequired         = "E_TEXT_REQUIRED"
	CodeButtonLabelTooLong   = "E_BUTTON_LABEL_TOO_LONG"
	CodeActionRequired       = "E_ACTION_REQUIRED"
	CodeActionURIInvalid     = "E_ACTION_URI_INVALID"
	CodeActionURIProtocol    = "E_ACTION_URI_PROTOCOL"
	CodeURITooLong           = "E_URI_TOO_LONG"
	CodeMessageTextRequired  = "E_MESSAGE_TEXT_REQUIRED"
	CodeTitleEmpty           = "E_TITLE_EMPTY"
	CodeTitleTooLong         = "E_TITLE_TOO_LONG"
	CodeParagraphEmpty       = "E_PARAGRAPH_EMPTY"
	CodeParagraphTooLong     = "E_PARAGRAPH_TOO_LONG"
	CodeKVLabelEmpty         = "E_KV_LABEL_EMPTY"
	CodeKVValueEmpty         = "E_KV_VALUE_EMPTY"
	CodeListEmpty            = "E_LIST_EMPTY"
	CodeHeroRequired         = "E_HERO_REQUIRED"
	CodeVideoURLRequired     = "E_VIDEO_URL_REQUIRED"
	CodeVideoURLHTTPS        = "E_VIDEO_URL_HTTPS"
	CodeVideoPreviewRequired = "E_VIDEO_PREVIEW_REQUIRED"
	CodeVideoBubbleSize      = "E_VIDEO_BUBBLE_SIZE"
	CodeVideoInCarousel      = "E_VIDEO_IN_CAROUSEL"
	CodeCarouselEmpty        = "E_CAROUSEL_EMPTY"
	CodeCarouselTooMany      = "E_CAROUSEL_TOO_MANY"
	CodeDocEmpty             = "E_DOC_EMPTY"
	// CodeImagePublishBlock is the publish-gate escalation of
	// CodeWarnImagePublishBlock.
	CodeImagePublishBlock = "E_IMAGE_PUBLISH_BLOCK"

	CodeWarnColorFormat       = "W_COLOR_FORMAT"
	CodeWarnKVLabelLong       = "W_KV_LABEL_LONG"
	CodeWarnKVValueLong       = "W_KV_VALUE_LONG"
	CodeWarnVideoPreviewHTTPS = "W_VIDEO_PREVIEW_HTTPS"
	CodeWarnImagePublishBlock = "W_IMAGE_PUBLISH_BLOCK"
)

// Issue is one located validation finding.
type Issue struct {
	Code    string     `json:"code"`
	Level   IssueLevel `json:"level"`
	Message string     `json:"message"`
	// Path locates the offending node in the document, e.g.
	// "cards[2].section.footer[0].action.uri".
	Path string `json:"path"`
}

// Report is the result of validating a document. Status is computed,
// never stored: draft if any error, previewable if the only problems
// are unconfirmed image reachability warnings, publishable otherwise.
type Report struct {
	Status   Status  `json:"status"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}
