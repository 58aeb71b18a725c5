package flexdoc

// DocType discriminates the document union.
type DocType string

const (
	DocTypeBubble   DocType = "bubble"
	DocTypeCarousel DocType = "carousel"
	DocTypeFolder   DocType = "folder"
)

// ComponentKind discriminates hero, body and footer components.
type ComponentKind string

const (
	KindHeroImage    ComponentKind = "hero_image"
	KindHeroVideo    ComponentKind = "hero_video"
	KindTitle        ComponentKind = "title"
	KindParagraph    ComponentKind = "paragraph"
	KindKeyValue     ComponentKind = "key_value"
	KindList         ComponentKind = "list"
	KindDivider      ComponentKind = "divider"
	KindSpacer       ComponentKind = "spacer"
	KindFooterButton ComponentKind = "footer_button"
)

// SizeToken is a named size step understood by the wire format.
type SizeToken string

const (
	SizeXS SizeToken = "xs"
	SizeSM SizeToken = "sm"
	SizeMD SizeToken = "md"
	SizeLG SizeToken = "lg"
	SizeXL SizeToken = "xl"
)

// BubbleSize selects the rendered bubble width.
type BubbleSize string

const (
	BubbleNano  BubbleSize = "nano"
	BubbleMicro BubbleSize = "micro"
	BubbleKilo  BubbleSize = "kilo"
	BubbleMega  BubbleSize = "mega"
	BubbleGiga  BubbleSize = "giga"
)

// AspectRatio is a "W:H" ratio token, e.g. "16:9".
type AspectRatio string

const (
	RatioSquare AspectRatio = "1:1"
	RatioWide   AspectRatio = "16:9"
	RatioPhoto  AspectRatio = "4:3"
	RatioHero   AspectRatio = "20:13"
	RatioTall   AspectRatio = "2:3"
	RatioFull   AspectRatio = "9:16"
)

// ImageFit selects how an image fills its frame.
type ImageFit string

const (
	FitCover   ImageFit = "cover"
	FitContain ImageFit = "contain"
)

// Align is a horizontal text alignment.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// Weight is a text weight.
type Weight string

const (
	WeightRegular Weight = "regular"
	WeightBold    Weight = "bold"
)

// ButtonStyle is the visual style of a footer button.
type ButtonStyle string

const (
	StylePrimary   ButtonStyle = "primary"
	StyleSecondary ButtonStyle = "secondary"
)

// SourceKind discriminates uploaded vs externally linked media.
type SourceKind string

const (
	SourceUpload   SourceKind = "upload"
	SourceExternal SourceKind = "external"
)

// CheckLevel classifies an image reachability probe result.
type CheckLevel string

const (
	CheckPass CheckLevel = "pass"
	CheckWarn CheckLevel = "warn"
	CheckFail CheckLevel = "fail"
)

// OverlayHeight is the overlay band height of a special card:
// "auto" or a fixed percentage between 30% and 70%.
type OverlayHeight string

const OverlayAuto OverlayHeight = "auto"

// VideoBubbleSizes are the only bubble sizes a video hero renders in.
var VideoBubbleSizes = []BubbleSize{BubbleKilo, BubbleMega, BubbleGiga}
