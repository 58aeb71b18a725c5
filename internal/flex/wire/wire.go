// Package wire defines the exact nested JSON structure the messaging
// platform's client renders. Field names and nesting are reproduced
// bit-for-bit; fields the platform omits are omitempty here so the
// serialized output matches what the platform accepts.
package wire

// Message is the top-level flex message envelope.
type Message struct {
	Type     string    `json:"type"` // always "flex"
	AltText  string    `json:"altText"`
	Contents Container `json:"contents"`
}

// Container is a Bubble or a Carousel.
type Container interface {
	container()
}

// Bubble is a single rendered card.
type Bubble struct {
	Type   string `json:"type"` // always "bubble"
	Size   string `json:"size,omitempty"`
	Hero   Node   `json:"hero,omitempty"`
	Body   *Box   `json:"body,omitempty"`
	Footer *Box   `json:"footer,omitempty"`
}

func (*Bubble) container() {}

// Carousel is a horizontally paged sequence of bubbles (max 10).
type Carousel struct {
	Type     string    `json:"type"` // always "carousel"
	Contents []*Bubble `json:"contents"`
}

func (*Carousel) container() {}

// Node is any element that can appear inside a box or as a hero.
type Node interface {
	node()
}

// Box lays out child nodes vertically, horizontally or on a shared
// text baseline.
type Box struct {
	Type            string  `json:"type"` // always "box"
	Layout          string  `json:"layout"`
	Contents        []Node  `json:"contents"`
	Spacing         string  `json:"spacing,omitempty"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	CornerRadius    string  `json:"cornerRadius,omitempty"`
	PaddingAll      string  `json:"paddingAll,omitempty"`
	Position        string  `json:"position,omitempty"` // "absolute"
	OffsetTop       string  `json:"offsetTop,omitempty"`
	OffsetBottom    string  `json:"offsetBottom,omitempty"`
	OffsetStart     string  `json:"offsetStart,omitempty"`
	OffsetEnd       string  `json:"offsetEnd,omitempty"`
	Height          string  `json:"height,omitempty"`
	JustifyContent  string  `json:"justifyContent,omitempty"`
	Action          *Action `json:"action,omitempty"`
}

func (*Box) node() {}

// Text renders a text run. Wrap is always serialized; the compiler
// sets it true for every text node it emits.
type Text struct {
	Type   string  `json:"type"` // always "text"
	Text   string  `json:"text"`
	Size   string  `json:"size,omitempty"`
	Color  string  `json:"color,omitempty"`
	Weight string  `json:"weight,omitempty"` // "regular" | "bold"
	Align  string  `json:"align,omitempty"`
	Wrap   bool    `json:"wrap"`
	Flex   int     `json:"flex,omitempty"`
	Action *Action `json:"action,omitempty"`
}

func (*Text) node() {}

// Image renders an image from an absolute URL.
type Image struct {
	Type        string `json:"type"` // always "image"
	URL         string `json:"url"`
	Size        string `json:"size,omitempty"` // "full"
	AspectRatio string `json:"aspectRatio,omitempty"`
	AspectMode  string `json:"aspectMode,omitempty"` // "cover" | "contain"
	Gravity     string `json:"gravity,omitempty"`
}

func (*Image) node() {}

// Video renders an inline video hero. AltContent is the image shown by
// clients that cannot play inline video.
type Video struct {
	Type        string `json:"type"` // always "video"
	URL         string `json:"url"`
	PreviewURL  string `json:"previewUrl"`
	AspectRatio string `json:"aspectRatio,omitempty"`
	AltContent  *Image `json:"altContent"`
}

func (*Video) node() {}

// Button renders a tappable action.
type Button struct {
	Type   string  `json:"type"` // always "button"
	Style  string  `json:"style,omitempty"`
	Color  string  `json:"color,omitempty"`
	Action *Action `json:"action"`
	Height string  `json:"height,omitempty"`
}

func (*Button) node() {}

// Separator renders a divider line.
type Separator struct {
	Type   string `json:"type"` // always "separator"
	Margin string `json:"margin,omitempty"`
}

func (*Separator) node() {}

// Spacer renders a fixed-size gap. Size is carried verbatim from the
// document; the platform applies its own default when it is absent.
type Spacer struct {
	Type string `json:"type"` // always "spacer"
	Size string `json:"size,omitempty"`
}

func (*Spacer) node() {}

// Action is a tap action attached to a node.
type Action struct {
	Type  string `json:"type"` // "uri" | "message"
	Label string `json:"label,omitempty"`
	URI   string `json:"uri,omitempty"`
	Text  string `json:"text,omitempty"`
}

// VideoMessage is a plain (non-flex) video message. The share picker
// cannot deliver video nodes inside flex messages, so a video hero is
// sent as a separate message of this shape.
type VideoMessage struct {
	Type               string `json:"type"` // always "video"
	OriginalContentURL string `json:"originalContentUrl"`
	PreviewImageURL    string `json:"previewImageUrl"`
}

// ShareMessage is any message the in-app share picker accepts.
type ShareMessage interface {
	shareMessage()
}

func (*Message) shareMessage()      {}
func (*VideoMessage) shareMessage() {}
