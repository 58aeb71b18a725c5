package flexdoc

// HeroComponent is a tagged variant over hero_image and hero_video.
// Image fields are set for hero_image, video fields for hero_video.
type HeroComponent struct {
	ID      string        `json:"id"`
	Kind    ComponentKind `json:"kind"`
	Enabled bool          `json:"enabled"`

	// hero_image
	Image *ImageSource `json:"image,omitempty"`
	Mode  ImageFit     `json:"mode,omitempty"`

	// hero_video
	Video *VideoSource `json:"video,omitempty"`

	Ratio  AspectRatio `json:"ratio,omitempty"`
	Action *Action     `json:"action,omitempty"`
}

// ListItem is one bullet entry of a list component.
type ListItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// BodyComponent is a tagged variant over the body content kinds:
// title, paragraph, key_value, list, divider, spacer. Which fields are
// meaningful depends on Kind; compilation and validation dispatch on it
// exhaustively.
type BodyComponent struct {
	ID      string        `json:"id"`
	Kind    ComponentKind `json:"kind"`
	Enabled bool          `json:"enabled"`

	// title / paragraph
	Text   string    `json:"text,omitempty"`
	Size   SizeToken `json:"size,omitempty"` // also the spacer size
	Weight Weight    `json:"weight,omitempty"`
	Color  string    `json:"color,omitempty"`
	Align  Align     `json:"align,omitempty"` // title only
	Wrap   bool      `json:"wrap,omitempty"`

	// key_value
	Label  string  `json:"label,omitempty"`
	Value  string  `json:"value,omitempty"`
	Action *Action `json:"action,omitempty"`

	// list
	Items []ListItem `json:"items,omitempty"`
}

// FooterButton is one footer call-to-action.
type FooterButton struct {
	ID            string        `json:"id"`
	Kind          ComponentKind `json:"kind"`
	Enabled       bool          `json:"enabled"`
	Label         string        `json:"label"`
	Action        *Action       `json:"action,omitempty"`
	Style         ButtonStyle   `json:"style,omitempty"`
	BgColor       string        `json:"bgColor,omitempty"`
	TextColor     string        `json:"textColor,omitempty"`
	AutoTextColor bool          `json:"autoTextColor,omitempty"`
}
