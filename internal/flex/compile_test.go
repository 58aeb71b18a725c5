package flex

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"flexdeck/internal/domain/models/flexdoc"
	"flexdeck/internal/flex/wire"
)

func testCtx() Context {
	return Context{
		DocID:        "doc-1",
		LIFFID:       "1234-abcd",
		ShareBaseURL: "https://liff.line.me",
	}
}

func TestCompile_IsDeterministic(t *testing.T) {
	doc := validBubble()
	ctx := testCtx()

	first := Compile(doc, ctx)
	second := Compile(doc, ctx)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated compilation differs (-first +second):\n%s", diff)
	}
}

func TestCompile_AltTextFallbackChain(t *testing.T) {
	doc := validBubble()

	tests := []struct {
		name     string
		override string
		title    string
		want     string
	}{
		{"override wins", "Custom alt", "Shop card", "Custom alt"},
		{"title next", "", "Shop card", "Shop card"},
		{"default last", "", "", "Flex Message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc.Bubble.Title = tt.title
			ctx := testCtx()
			ctx.AltText = tt.override

			msg := Compile(doc, ctx)
			if msg.AltText != tt.want {
				t.Errorf("altText = %q, want %q", msg.AltText, tt.want)
			}
		})
	}
}

func TestCompile_DisabledComponentLeavesNoTrace(t *testing.T) {
	doc := validBubble()
	extra := titleComp("hidden headline")
	extra.ID = "t_2"
	extra.Enabled = false
	doc.Bubble.Section.Body = append(doc.Bubble.Section.Body, extra)

	msg := Compile(doc, testCtx())
	bubble := msg.Contents.(*wire.Bubble)
	if len(bubble.Body.Contents) != 1 {
		t.Errorf("expected 1 body node, got %d", len(bubble.Body.Contents))
	}
}

func TestCompile_EmptyBodyGetsPlaceholder(t *testing.T) {
	doc := validBubble()
	doc.Bubble.Section.Body = nil

	msg := Compile(doc, testCtx())
	bubble := msg.Contents.(*wire.Bubble)

	if len(bubble.Body.Contents) != 1 {
		t.Fatalf("expected 1 placeholder node, got %d", len(bubble.Body.Contents))
	}
	text, ok := bubble.Body.Contents[0].(*wire.Text)
	if !ok || text.Text != "(empty)" {
		t.Errorf("expected muted (empty) placeholder, got %#v", bubble.Body.Contents[0])
	}
}

func TestCompile_SpacerSizeCarriedVerbatim(t *testing.T) {
	doc := validBubble()
	doc.Bubble.Section.Body = []flexdoc.BodyComponent{
		titleComp("Headline"),
		{ID: "s1", Kind: flexdoc.KindSpacer, Enabled: true, Size: flexdoc.SizeXL},
		{ID: "s2", Kind: flexdoc.KindSpacer, Enabled: true},
	}

	msg := Compile(doc, testCtx())
	bubble := msg.Contents.(*wire.Bubble)

	sized := bubble.Body.Contents[1].(*wire.Spacer)
	if sized.Size != string(flexdoc.SizeXL) {
		t.Errorf("spacer size = %q, want %q", sized.Size, flexdoc.SizeXL)
	}

	bare := bubble.Body.Contents[2].(*wire.Spacer)
	if bare.Size != "" {
		t.Errorf("unset spacer size = %q, want it left for the platform default", bare.Size)
	}
}

func TestCompile_CarouselTruncatesAtTen(t *testing.T) {
	cards := make([]flexdoc.Card, 11)
	for i := range cards {
		cards[i] = flexdoc.Card{
			ID: "c",
			Section: flexdoc.CardSection{Regular: &flexdoc.Section{
				Hero: []flexdoc.HeroComponent{imageHero()},
				Body: []flexdoc.BodyComponent{titleComp("Plan")},
			}},
		}
	}
	doc := flexdoc.Document{Carousel: &flexdoc.CarouselDoc{Type: flexdoc.DocTypeCarousel, Title: "x", Cards: cards}}

	msg := Compile(doc, testCtx())
	carousel := msg.Contents.(*wire.Carousel)
	if len(carousel.Contents) != 10 {
		t.Errorf("expected 10 bubbles, got %d", len(carousel.Contents))
	}
}

func TestCompile_FooterCapsAtThreeButtons(t *testing.T) {
	doc := validBubble()
	doc.Bubble.Section.Footer = []flexdoc.FooterButton{
		footerBtn("A", "https://a.example"), footerBtn("B", "https://b.example"),
		footerBtn("C", "https://c.example"), footerBtn("D", "https://d.example"),
	}

	msg := Compile(doc, testCtx())
	bubble := msg.Contents.(*wire.Bubble)
	if len(bubble.Footer.Contents) != 3 {
		t.Errorf("expected 3 buttons, got %d", len(bubble.Footer.Contents))
	}
}

func TestCompile_NoEnabledButtonsOmitsFooter(t *testing.T) {
	doc := validBubble()
	doc.Bubble.Section.Footer = nil

	msg := Compile(doc, testCtx())
	bubble := msg.Contents.(*wire.Bubble)
	if bubble.Footer != nil {
		t.Errorf("expected no footer, got %#v", bubble.Footer)
	}
}

func TestCompile_BadButtonColorFallsBack(t *testing.T) {
	doc := validBubble()
	btn := footerBtn("Open", "https://a.example")
	btn.BgColor = "bogus"
	doc.Bubble.Section.Footer = []flexdoc.FooterButton{btn}

	msg := Compile(doc, testCtx())
	bubble := msg.Contents.(*wire.Bubble)
	button := bubble.Footer.Contents[0].(*wire.Button)
	if button.Color != "#0A84FF" {
		t.Errorf("color = %q, want palette primary", button.Color)
	}
}

func TestCompile_KeyValueActionOnValueCell(t *testing.T) {
	doc := validBubble()
	doc.Bubble.Section.Body = []flexdoc.BodyComponent{{
		ID: "kv", Kind: flexdoc.KindKeyValue, Enabled: true,
		Label: "Phone", Value: "0912-345-678",
		Action: &flexdoc.Action{Type: flexdoc.ActionURI, URI: "tel:0912345678"},
	}}

	msg := Compile(doc, testCtx())
	bubble := msg.Contents.(*wire.Bubble)
	row := bubble.Body.Contents[0].(*wire.Box)

	label := row.Contents[0].(*wire.Text)
	value := row.Contents[1].(*wire.Text)

	if label.Action != nil {
		t.Error("label cell must not carry the action")
	}
	if value.Action == nil || value.Action.URI != "tel:0912345678" {
		t.Errorf("value cell action = %#v, want tel link", value.Action)
	}
	if row.Action != nil {
		t.Error("row box must not carry the action")
	}
}

func TestCompile_ImageHeroWinsOverVideo(t *testing.T) {
	doc := validBubble()
	doc.Bubble.BubbleSize = flexdoc.BubbleMega
	doc.Bubble.Section.Hero = []flexdoc.HeroComponent{
		videoHero("https://v.example/a.mp4", "https://v.example/a.jpg"),
		imageHero(),
	}

	msg := Compile(doc, testCtx())
	bubble := msg.Contents.(*wire.Bubble)
	if _, ok := bubble.Hero.(*wire.Image); !ok {
		t.Errorf("hero = %#v, want image", bubble.Hero)
	}
}

func TestCompile_NonHTTPSImageHeroIsOmitted(t *testing.T) {
	doc := validBubble()
	doc.Bubble.Section.Hero[0].Image.URL = "http://cdn.example.com/hero.png"

	msg := Compile(doc, testCtx())
	bubble := msg.Contents.(*wire.Bubble)
	if bubble.Hero != nil {
		t.Errorf("expected hero omitted for non-HTTPS url, got %#v", bubble.Hero)
	}
}

func TestCompile_VideoHeroCarriesAltContent(t *testing.T) {
	doc := validBubble()
	doc.Bubble.BubbleSize = flexdoc.BubbleMega
	doc.Bubble.Section.Hero = []flexdoc.HeroComponent{videoHero("https://v.example/a.mp4", "https://v.example/a.jpg")}

	msg := Compile(doc, testCtx())
	bubble := msg.Contents.(*wire.Bubble)
	video, ok := bubble.Hero.(*wire.Video)
	if !ok {
		t.Fatalf("hero = %#v, want video", bubble.Hero)
	}
	if video.AltContent == nil || video.AltContent.URL != "https://v.example/a.jpg" {
		t.Errorf("altContent = %#v, want preview image", video.AltContent)
	}
	if video.AspectRatio != "16:9" {
		t.Errorf("aspectRatio = %q, want 16:9", video.AspectRatio)
	}
}

func TestCompile_SpecialCardShape(t *testing.T) {
	doc := flexdoc.Document{Carousel: &flexdoc.CarouselDoc{
		Type:  flexdoc.DocTypeCarousel,
		Title: "Full bleed",
		Cards: []flexdoc.Card{{
			ID: "c1",
			Section: flexdoc.CardSection{Special: &flexdoc.SpecialSection{
				Kind:    "special",
				Image:   *checkedImage(),
				Ratio:   flexdoc.RatioTall,
				Overlay: flexdoc.OverlayConfig{BackgroundColor: "#03303Acc", Height: "40%"},
				Body:    []flexdoc.BodyComponent{titleComp("Headline")},
			}},
		}},
	}}

	msg := Compile(doc, testCtx())
	bubble := msg.Contents.(*wire.Carousel).Contents[0]

	if bubble.Body.PaddingAll != "0px" {
		t.Errorf("body paddingAll = %q, want 0px", bubble.Body.PaddingAll)
	}
	if len(bubble.Body.Contents) != 2 {
		t.Fatalf("expected background + overlay, got %d nodes", len(bubble.Body.Contents))
	}

	background := bubble.Body.Contents[0].(*wire.Image)
	if background.Gravity != "top" || background.AspectMode != "cover" {
		t.Errorf("background = %#v, want top-gravity cover image", background)
	}

	overlay := bubble.Body.Contents[1].(*wire.Box)
	if overlay.Position != "absolute" || overlay.OffsetBottom != "0px" {
		t.Errorf("overlay = %#v, want absolute bottom-anchored box", overlay)
	}
	if overlay.Height != "40%" || overlay.JustifyContent != "flex-end" {
		t.Errorf("fixed-height overlay should bottom-justify, got height=%q justify=%q", overlay.Height, overlay.JustifyContent)
	}
	if overlay.BackgroundColor != "#03303Acc" {
		t.Errorf("overlay backgroundColor = %q", overlay.BackgroundColor)
	}
}

func TestCompile_SpecialCardAutoOverlayHasNoHeight(t *testing.T) {
	doc := flexdoc.Document{Carousel: &flexdoc.CarouselDoc{
		Type:  flexdoc.DocTypeCarousel,
		Title: "Full bleed",
		Cards: []flexdoc.Card{{
			ID: "c1",
			Section: flexdoc.CardSection{Special: &flexdoc.SpecialSection{
				Kind:    "special",
				Image:   *checkedImage(),
				Overlay: flexdoc.OverlayConfig{BackgroundColor: "#03303Acc", Height: flexdoc.OverlayAuto},
				Body:    []flexdoc.BodyComponent{titleComp("Headline")},
			}},
		}},
	}}

	msg := Compile(doc, testCtx())
	overlay := msg.Contents.(*wire.Carousel).Contents[0].Body.Contents[1].(*wire.Box)
	if overlay.Height != "" || overlay.JustifyContent != "" {
		t.Errorf("auto overlay must size to content, got height=%q justify=%q", overlay.Height, overlay.JustifyContent)
	}
}

func TestShareDeepLink(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want string
	}{
		{
			name: "token wins",
			ctx:  Context{DocID: "doc-1", ShareToken: "tok123", LIFFID: "1234-abcd"},
			want: "token%3Dtok123",
		},
		{
			name: "doc id during preview",
			ctx:  Context{DocID: "doc-1", LIFFID: "1234-abcd"},
			want: "id%3Ddoc-1",
		},
		{
			name: "placeholder without either",
			ctx:  Context{LIFFID: "1234-abcd"},
			want: "PREVIEW_MODE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := ShareDeepLink(tt.ctx)
			if !strings.HasPrefix(link, "https://liff.line.me/1234-abcd?liff.state=") {
				t.Errorf("link = %q, want LIFF entry prefix", link)
			}
			if !strings.Contains(link, tt.want) {
				t.Errorf("link = %q, want it to contain %q", link, tt.want)
			}
		})
	}
}

func TestCompile_ShareActionUsesDeepLink(t *testing.T) {
	doc := validBubble()
	doc.Bubble.Section.Footer = []flexdoc.FooterButton{{
		ID: "b1", Kind: flexdoc.KindFooterButton, Enabled: true, Label: "Share",
		Action: &flexdoc.Action{Type: flexdoc.ActionShare},
	}}
	ctx := testCtx()
	ctx.ShareToken = "tok123"

	msg := Compile(doc, ctx)
	button := msg.Contents.(*wire.Bubble).Footer.Contents[0].(*wire.Button)
	if button.Action.Type != "uri" || !strings.Contains(button.Action.URI, "token%3Dtok123") {
		t.Errorf("share action = %#v, want deep link carrying the token", button.Action)
	}
}
