package flexdoc

import (
	"encoding/json"
	"fmt"
)

// BlockStyle styles one bubble block.
type BlockStyle struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// BubbleStyles carries optional per-block styling.
type BubbleStyles struct {
	Header *BlockStyle `json:"header,omitempty"`
	Hero   *BlockStyle `json:"hero,omitempty"`
	Body   *BlockStyle `json:"body,omitempty"`
	Footer *BlockStyle `json:"footer,omitempty"`
}

// Section is a regular card body: at most one rendered hero, ordered
// body components, and up to three enabled footer buttons.
type Section struct {
	Hero   []HeroComponent `json:"hero"`
	Body   []BodyComponent `json:"body"`
	Footer []FooterButton  `json:"footer"`
	Styles *BubbleStyles   `json:"styles,omitempty"`
}

// OverlayConfig configures the bottom overlay band of a special card.
// BackgroundColor supports 8-digit hex for transparency (e.g. #03303Acc).
type OverlayConfig struct {
	BackgroundColor string        `json:"backgroundColor"`
	Height          OverlayHeight `json:"height"`
}

// SpecialSection is a full-bleed card: a background image with body
// content rendered over it inside a bottom-anchored overlay.
type SpecialSection struct {
	Kind    string          `json:"kind"` // always "special"
	Image   ImageSource     `json:"image"`
	Ratio   AspectRatio     `json:"ratio"`
	Overlay OverlayConfig   `json:"overlay"`
	Body    []BodyComponent `json:"body"`
}

// CardSection is the tagged union of Section and SpecialSection,
// discriminated by the presence of kind == "special" in the JSON.
type CardSection struct {
	Regular *Section
	Special *SpecialSection
}

// IsSpecial reports whether the card is a full-bleed special card.
func (s CardSection) IsSpecial() bool { return s.Special != nil }

func (s CardSection) MarshalJSON() ([]byte, error) {
	switch {
	case s.Special != nil:
		return json.Marshal(s.Special)
	case s.Regular != nil:
		return json.Marshal(s.Regular)
	default:
		return []byte("null"), nil
	}
}

func (s *CardSection) UnmarshalJSON(data []byte) error {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("card section: %w", err)
	}

	if probe.Kind == "special" {
		var special SpecialSection
		if err := json.Unmarshal(data, &special); err != nil {
			return fmt.Errorf("special section: %w", err)
		}
		s.Special = &special
		s.Regular = nil
		return nil
	}

	var regular Section
	if err := json.Unmarshal(data, &regular); err != nil {
		return fmt.Errorf("section: %w", err)
	}
	s.Regular = &regular
	s.Special = nil
	return nil
}

// Card is one page of a carousel.
type Card struct {
	ID      string      `json:"id"`
	Name    string      `json:"name,omitempty"`
	Section CardSection `json:"section"`
}
