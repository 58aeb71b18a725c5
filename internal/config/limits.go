package config

// Flex Message platform ceilings. These mirror the limits the LINE
// client enforces on delivered messages; the validator treats them as
// hard errors unless noted.
const (
	// MaxTitleLength is the hard ceiling for a title component's text.
	MaxTitleLength = 400

	// MaxParagraphLength is the hard ceiling for a paragraph component's text.
	MaxParagraphLength = 2000

	// MaxButtonLabelLength is the hard ceiling for a footer button label.
	MaxButtonLabelLength = 20

	// MaxURILength is the hard ceiling for any uri action target.
	MaxURILength = 2000

	// MaxKeyValueLabelLength is a soft (warning) bound for key_value labels.
	MaxKeyValueLabelLength = 40

	// MaxKeyValueValueLength is a soft (warning) bound for key_value values.
	MaxKeyValueValueLength = 300

	// MaxFooterButtons is the maximum number of enabled footer buttons.
	MaxFooterButtons = 3

	// MaxCarouselCards is the validator's strict card ceiling. The
	// platform technically accepts up to MaxCarouselBubbles, but
	// delivery beyond five cards is unreliable, so publishing is
	// blocked earlier.
	MaxCarouselCards = 5

	// MaxCarouselBubbles is the compiler's truncation ceiling. Cards
	// beyond this count are silently dropped during compilation.
	MaxCarouselBubbles = 10

	// MaxShareMessages is the most messages the in-app share picker accepts.
	MaxShareMessages = 5

	// MaxTemplateNameLength bounds template names (VARCHAR(255) column).
	MaxTemplateNameLength = 255

	// MaxDocumentTitleLength bounds stored document titles (VARCHAR(255) column).
	MaxDocumentTitleLength = 255
)
