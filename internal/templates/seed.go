package templates

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"flexdeck/internal/domain/models/flexdoc"
	"flexdeck/internal/flex"
)

// Seed builds a fresh draft for the given template kind.
func (r *Registry) Seed(kind, title string) (flexdoc.Document, error) {
	switch kind {
	case "bubble":
		return r.SeedBubble(title)
	case "carousel":
		desc, err := r.Get(kind)
		if err != nil {
			return flexdoc.Document{}, err
		}
		return r.SeedCarousel(desc.CardCount, title)
	case "special":
		return r.SeedSpecial(title)
	default:
		return flexdoc.Document{}, fmt.Errorf("unknown template kind %q", kind)
	}
}

// SeedBubble builds a blank single-card draft.
func (r *Registry) SeedBubble(title string) (flexdoc.Document, error) {
	desc, err := r.Get("bubble")
	if err != nil {
		return flexdoc.Document{}, err
	}
	if title == "" {
		title = "New draft (bubble)"
	}

	return flexdoc.Document{Bubble: &flexdoc.BubbleDoc{
		Type:  flexdoc.DocTypeBubble,
		Title: title,
		Section: flexdoc.Section{
			Hero: []flexdoc.HeroComponent{seedHero(desc)},
			Body: []flexdoc.BodyComponent{
				seedTitle("Your main headline"),
				seedParagraph("Write a short introduction here"),
				{
					ID:      newID("kv_"),
					Kind:    flexdoc.KindKeyValue,
					Enabled: true,
					Label:   "Phone",
					Value:   "0912-345-678",
					Action:  &flexdoc.Action{Type: flexdoc.ActionURI, URI: "https://example.com"},
				},
			},
			Footer: seedFooter(desc),
		},
	}}, nil
}

// SeedCarousel builds a blank carousel draft with cardCount cards,
// clamped to the validator's strict ceiling.
func (r *Registry) SeedCarousel(cardCount int, title string) (flexdoc.Document, error) {
	desc, err := r.Get("carousel")
	if err != nil {
		return flexdoc.Document{}, err
	}
	if title == "" {
		title = "New draft (carousel)"
	}
	if cardCount < 1 {
		cardCount = 1
	}
	if cardCount > 5 {
		cardCount = 5
	}

	cards := make([]flexdoc.Card, 0, cardCount)
	for i := 0; i < cardCount; i++ {
		cards = append(cards, flexdoc.Card{
			ID: newID("card_"),
			Section: flexdoc.CardSection{Regular: &flexdoc.Section{
				Hero: []flexdoc.HeroComponent{seedHero(desc)},
				Body: []flexdoc.BodyComponent{
					seedTitle(fmt.Sprintf("Plan %c - most popular", 'A'+i)),
					seedParagraph("Short description..."),
				},
				Footer: seedFooter(desc),
			}},
		})
	}

	return flexdoc.Document{Carousel: &flexdoc.CarouselDoc{
		Type:  flexdoc.DocTypeCarousel,
		Title: title,
		Cards: cards,
	}}, nil
}

// SeedSpecial builds a carousel draft with a single full-bleed card.
func (r *Registry) SeedSpecial(title string) (flexdoc.Document, error) {
	desc, err := r.Get("special")
	if err != nil {
		return flexdoc.Document{}, err
	}
	if title == "" {
		title = "New draft (full-bleed)"
	}

	overlayHeight := flexdoc.OverlayAuto
	if desc.OverlayHeight != "" {
		overlayHeight = flexdoc.OverlayHeight(desc.OverlayHeight)
	}

	card := flexdoc.Card{
		ID: newID("card_"),
		Section: flexdoc.CardSection{Special: &flexdoc.SpecialSection{
			Kind:  "special",
			Image: seedImage(desc),
			Ratio: flexdoc.RatioTall,
			Overlay: flexdoc.OverlayConfig{
				BackgroundColor: desc.OverlayColor,
				Height:          overlayHeight,
			},
			Body: []flexdoc.BodyComponent{
				seedStyledTitle("Headline", "#FFFFFF"),
				seedStyledParagraph("Description text...", "#FFFFFF"),
			},
		}},
	}

	return flexdoc.Document{Carousel: &flexdoc.CarouselDoc{
		Type:  flexdoc.DocTypeCarousel,
		Title: title,
		Cards: []flexdoc.Card{card},
	}}, nil
}

func seedImage(desc *Descriptor) flexdoc.ImageSource {
	return flexdoc.ImageSource{
		Kind: flexdoc.SourceExternal,
		URL:  desc.PlaceholderURL,
		LastCheck: &flexdoc.ImageCheckResult{
			OK:        true,
			Level:     flexdoc.CheckPass,
			CheckedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

func seedHero(desc *Descriptor) flexdoc.HeroComponent {
	img := seedImage(desc)
	return flexdoc.HeroComponent{
		ID:      newID("hero_"),
		Kind:    flexdoc.KindHeroImage,
		Enabled: true,
		Image:   &img,
		Ratio:   flexdoc.RatioWide,
		Mode:    flexdoc.FitCover,
	}
}

func seedTitle(text string) flexdoc.BodyComponent {
	return seedStyledTitle(text, "#111111")
}

func seedStyledTitle(text, color string) flexdoc.BodyComponent {
	return flexdoc.BodyComponent{
		ID:      newID("t_"),
		Kind:    flexdoc.KindTitle,
		Enabled: true,
		Text:    text,
		Size:    flexdoc.SizeLG,
		Weight:  flexdoc.WeightBold,
		Color:   color,
		Align:   flexdoc.AlignStart,
	}
}

func seedParagraph(text string) flexdoc.BodyComponent {
	return seedStyledParagraph(text, "#333333")
}

func seedStyledParagraph(text, color string) flexdoc.BodyComponent {
	return flexdoc.BodyComponent{
		ID:      newID("p_"),
		Kind:    flexdoc.KindParagraph,
		Enabled: true,
		Text:    text,
		Size:    flexdoc.SizeMD,
		Color:   color,
		Wrap:    true,
	}
}

func seedFooter(desc *Descriptor) []flexdoc.FooterButton {
	buttons := make([]flexdoc.FooterButton, 0, len(desc.Buttons))
	for _, b := range desc.Buttons {
		style := flexdoc.StylePrimary
		if b.Style == string(flexdoc.StyleSecondary) {
			style = flexdoc.StyleSecondary
		}
		buttons = append(buttons, flexdoc.FooterButton{
			ID:            newID("btn_"),
			Kind:          flexdoc.KindFooterButton,
			Enabled:       true,
			Label:         b.Label,
			Action:        &flexdoc.Action{Type: flexdoc.ActionURI, URI: b.URI},
			Style:         style,
			BgColor:       b.Color,
			TextColor:     flex.AutoTextColor(b.Color),
			AutoTextColor: true,
		})
	}
	return buttons
}

// newID returns a short unique component id with a readable prefix.
func newID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
