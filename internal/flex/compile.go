package flex

import (
	"net/url"

	"flexdeck/internal/config"
	"flexdeck/internal/domain/models/flexdoc"
	"flexdeck/internal/flex/wire"
)

// Palette defaults baked into compiled output.
const (
	colorInk     = "#111111"
	colorMuted   = "#8E8E93"
	colorPrimary = "#0A84FF"
)

const defaultAltText = "Flex Message"

// Context supplies the externally resolved values the compiler cannot
// produce itself. It is plain data: the compiler stays pure and reads
// no ambient state.
type Context struct {
	// DocID is the stable identifier of the document being compiled.
	DocID string
	// ShareToken, when set, is the minted token share actions link to.
	// Without it the deep link falls back to the document id (preview).
	ShareToken string
	// LIFFID is the platform application id for share deep links.
	LIFFID string
	// ShareBaseURL is the LIFF entry base, default https://liff.line.me.
	ShareBaseURL string
	// AltText overrides the document title as the message alt text.
	AltText string
}

// Compile converts a document into the wire-format message tree. It
// performs no validation: malformed input yields a best-effort tree
// (missing heroes silently omitted, over-count carousels truncated),
// mirroring the platform's permissive live-preview behavior.
func Compile(doc flexdoc.Document, ctx Context) wire.Message {
	altText := ctx.AltText
	if altText == "" {
		altText = doc.Title()
	}
	if altText == "" {
		altText = defaultAltText
	}

	msg := wire.Message{Type: "flex", AltText: altText}

	switch {
	case doc.Bubble != nil:
		msg.Contents = sectionBubble(flexdoc.CardSection{Regular: &doc.Bubble.Section}, doc.Bubble.BubbleSize, ctx)
	case doc.Carousel != nil:
		cards := doc.Carousel.Cards
		if len(cards) > config.MaxCarouselBubbles {
			// Silent truncation: the validator is where over-count
			// documents get rejected.
			cards = cards[:config.MaxCarouselBubbles]
		}
		carousel := &wire.Carousel{Type: "carousel", Contents: make([]*wire.Bubble, 0, len(cards))}
		for _, card := range cards {
			carousel.Contents = append(carousel.Contents, sectionBubble(card.Section, doc.Carousel.BubbleSize, ctx))
		}
		msg.Contents = carousel
	default:
		// Folders and empty documents have no renderable content.
		msg.Contents = &wire.Bubble{Type: "bubble", Body: bodyBox(nil, ctx)}
	}

	return msg
}

func sectionBubble(section flexdoc.CardSection, size flexdoc.BubbleSize, ctx Context) *wire.Bubble {
	if section.Special != nil {
		return specialBubble(section.Special, size, ctx)
	}

	bubble := &wire.Bubble{Type: "bubble", Size: string(size)}
	if section.Regular == nil {
		bubble.Body = bodyBox(nil, ctx)
		return bubble
	}

	bubble.Hero = heroNode(section.Regular.Hero)
	bubble.Body = bodyBox(section.Regular.Body, ctx)
	bubble.Footer = footerBox(section.Regular.Footer, ctx)
	return bubble
}

// heroNode selects at most one enabled hero. An enabled image wins
// over an enabled video; among equals the first enabled one renders.
func heroNode(hero []flexdoc.HeroComponent) wire.Node {
	if img := enabledHero(hero, flexdoc.KindHeroImage); img != nil && img.Image != nil {
		heroURL := safeHTTPSURL(img.Image.URL)
		if heroURL == "" {
			return nil
		}
		return &wire.Image{
			Type:        "image",
			URL:         heroURL,
			Size:        "full",
			AspectRatio: string(img.Ratio),
			AspectMode:  string(img.Mode),
		}
	}

	if vid := enabledHero(hero, flexdoc.KindHeroVideo); vid != nil && vid.Video != nil {
		ratio := string(vid.Ratio)
		if ratio == "" {
			ratio = string(flexdoc.RatioWide)
		}
		return &wire.Video{
			Type:        "video",
			URL:         vid.Video.URL,
			PreviewURL:  vid.Video.PreviewURL,
			AspectRatio: ratio,
			AltContent: &wire.Image{
				Type:        "image",
				URL:         vid.Video.PreviewURL,
				Size:        "full",
				AspectRatio: ratio,
				AspectMode:  string(flexdoc.FitCover),
			},
		}
	}

	return nil
}

func bodyBox(body []flexdoc.BodyComponent, ctx Context) *wire.Box {
	contents := bodyNodes(body, ctx)
	return &wire.Box{Type: "box", Layout: "vertical", Spacing: "md", Contents: contents}
}

// bodyNodes maps enabled components 1:1, in document order, into wire
// nodes. Disabled components contribute nothing. An empty result
// becomes a single muted placeholder so the bubble keeps a body.
func bodyNodes(body []flexdoc.BodyComponent, ctx Context) []wire.Node {
	contents := make([]wire.Node, 0, len(body))

	for _, c := range body {
		if !c.Enabled {
			continue
		}

		switch c.Kind {
		case flexdoc.KindTitle:
			weight := string(flexdoc.WeightRegular)
			if c.Weight == flexdoc.WeightBold {
				weight = string(flexdoc.WeightBold)
			}
			contents = append(contents, &wire.Text{
				Type:   "text",
				Text:   c.Text,
				Weight: weight,
				Size:   string(c.Size),
				Color:  c.Color,
				Align:  string(c.Align),
				Wrap:   true,
			})

		case flexdoc.KindParagraph:
			contents = append(contents, &wire.Text{
				Type:  "text",
				Text:  c.Text,
				Size:  string(c.Size),
				Color: c.Color,
				Wrap:  true,
			})

		case flexdoc.KindKeyValue:
			value := &wire.Text{Type: "text", Text: c.Value, Size: "sm", Color: colorInk, Flex: 5, Wrap: true}
			// The tap target is the value cell, not the whole row.
			if c.Action != nil {
				value.Action = compileAction(c.Action, "", ctx)
			}
			contents = append(contents, &wire.Box{
				Type:    "box",
				Layout:  "baseline",
				Spacing: "sm",
				Contents: []wire.Node{
					&wire.Text{Type: "text", Text: c.Label, Size: "sm", Color: colorMuted, Flex: 2, Wrap: true},
					value,
				},
			})

		case flexdoc.KindList:
			items := make([]wire.Node, 0, len(c.Items))
			for _, it := range c.Items {
				items = append(items, &wire.Text{
					Type:  "text",
					Text:  "• " + it.Text,
					Size:  "sm",
					Color: colorInk,
					Wrap:  true,
				})
			}
			contents = append(contents, &wire.Box{Type: "box", Layout: "vertical", Spacing: "sm", Contents: items})

		case flexdoc.KindDivider:
			contents = append(contents, &wire.Separator{Type: "separator", Margin: "md"})

		case flexdoc.KindSpacer:
			contents = append(contents, &wire.Spacer{Type: "spacer", Size: string(c.Size)})
		}
	}

	if len(contents) == 0 {
		contents = append(contents, &wire.Text{Type: "text", Text: "(empty)", Size: "sm", Color: colorMuted, Wrap: true})
	}
	return contents
}

func footerBox(footer []flexdoc.FooterButton, ctx Context) *wire.Box {
	buttons := make([]wire.Node, 0, config.MaxFooterButtons)
	for _, b := range footer {
		if !b.Enabled {
			continue
		}
		if len(buttons) == config.MaxFooterButtons {
			break
		}
		color := b.BgColor
		if !IsHexColor(color) {
			color = colorPrimary
		}
		buttons = append(buttons, &wire.Button{
			Type:   "button",
			Style:  string(flexdoc.StylePrimary),
			Color:  color,
			Action: compileAction(b.Action, b.Label, ctx),
			Height: "sm",
		})
	}

	if len(buttons) == 0 {
		return nil
	}
	return &wire.Box{Type: "box", Layout: "vertical", Spacing: "sm", Contents: buttons}
}

// specialBubble builds a full-bleed card: a zero-padding body holding
// the background image and an absolutely positioned overlay box
// anchored to the bottom edge.
func specialBubble(s *flexdoc.SpecialSection, size flexdoc.BubbleSize, ctx Context) *wire.Bubble {
	ratio := string(s.Ratio)
	if ratio == "" {
		ratio = string(flexdoc.RatioTall)
	}

	background := &wire.Image{
		Type:        "image",
		URL:         s.Image.URL,
		Size:        "full",
		AspectRatio: ratio,
		AspectMode:  string(flexdoc.FitCover),
		Gravity:     "top",
	}

	overlay := &wire.Box{
		Type:            "box",
		Layout:          "vertical",
		Position:        "absolute",
		OffsetBottom:    "0px",
		OffsetStart:     "0px",
		OffsetEnd:       "0px",
		BackgroundColor: s.Overlay.BackgroundColor,
		PaddingAll:      "12px",
		Contents:        bodyNodes(s.Body, ctx),
	}
	if s.Overlay.Height != "" && s.Overlay.Height != flexdoc.OverlayAuto {
		overlay.Height = string(s.Overlay.Height)
		overlay.JustifyContent = "flex-end"
	}

	return &wire.Bubble{
		Type: "bubble",
		Size: string(size),
		Body: &wire.Box{
			Type:       "box",
			Layout:     "vertical",
			PaddingAll: "0px",
			Contents:   []wire.Node{background, overlay},
		},
	}
}

func compileAction(a *flexdoc.Action, label string, ctx Context) *wire.Action {
	if a == nil {
		return nil
	}

	out := &wire.Action{Label: label}
	switch a.Type {
	case flexdoc.ActionURI:
		out.Type = "uri"
		out.URI = a.URI
	case flexdoc.ActionMessage:
		out.Type = "message"
		out.Text = a.Text
	case flexdoc.ActionShare:
		out.Type = "uri"
		out.URI = ShareDeepLink(ctx)
	default:
		out.Type = "uri"
		out.URI = "https://example.com"
	}
	return out
}

// ShareDeepLink builds the deep link that re-enters the share flow for
// this document: the LIFF entry point with the SPA route and query
// packed into liff.state. The link carries the minted token when one
// exists, the document id during preview, and a placeholder otherwise.
func ShareDeepLink(ctx Context) string {
	base := ctx.ShareBaseURL
	if base == "" {
		base = "https://liff.line.me"
	}
	liffID := ctx.LIFFID
	if liffID == "" {
		liffID = "YOUR_LIFF_ID"
	}

	var state string
	switch {
	case ctx.ShareToken != "":
		state = "/share?token=" + url.QueryEscape(ctx.ShareToken) + "&autoshare=1"
	case ctx.DocID != "":
		state = "/share?id=" + url.QueryEscape(ctx.DocID) + "&autoshare=1"
	default:
		state = "/share?id=PREVIEW_MODE&autoshare=1"
	}

	return base + "/" + liffID + "?liff.state=" + url.QueryEscape(state)
}
