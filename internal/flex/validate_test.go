package flex

import (
	"strings"
	"testing"

	"flexdeck/internal/domain/models/flexdoc"
)

// checkedImage returns an external image with a passing reachability
// check, the state every template seed starts in.
func checkedImage() *flexdoc.ImageSource {
	return &flexdoc.ImageSource{
		Kind: flexdoc.SourceExternal,
		URL:  "https://cdn.example.com/hero.png",
		LastCheck: &flexdoc.ImageCheckResult{
			OK:        true,
			Level:     flexdoc.CheckPass,
			CheckedAt: "2026-08-01T00:00:00Z",
		},
	}
}

func imageHero() flexdoc.HeroComponent {
	return flexdoc.HeroComponent{
		ID:      "hero_1",
		Kind:    flexdoc.KindHeroImage,
		Enabled: true,
		Image:   checkedImage(),
		Ratio:   flexdoc.RatioWide,
		Mode:    flexdoc.FitCover,
	}
}

func videoHero(videoURL, previewURL string) flexdoc.HeroComponent {
	return flexdoc.HeroComponent{
		ID:      "hero_v",
		Kind:    flexdoc.KindHeroVideo,
		Enabled: true,
		Video:   &flexdoc.VideoSource{Kind: flexdoc.SourceExternal, URL: videoURL, PreviewURL: previewURL},
		Ratio:   flexdoc.RatioWide,
	}
}

func titleComp(text string) flexdoc.BodyComponent {
	return flexdoc.BodyComponent{ID: "t_1", Kind: flexdoc.KindTitle, Enabled: true, Text: text, Size: flexdoc.SizeLG, Weight: flexdoc.WeightBold}
}

func footerBtn(label, uri string) flexdoc.FooterButton {
	return flexdoc.FooterButton{
		ID:      "btn_" + label,
		Kind:    flexdoc.KindFooterButton,
		Enabled: true,
		Label:   label,
		Action:  &flexdoc.Action{Type: flexdoc.ActionURI, URI: uri},
		Style:   flexdoc.StylePrimary,
	}
}

func validBubble() flexdoc.Document {
	return flexdoc.Document{Bubble: &flexdoc.BubbleDoc{
		Type:  flexdoc.DocTypeBubble,
		Title: "Shop card",
		Section: flexdoc.Section{
			Hero:   []flexdoc.HeroComponent{imageHero()},
			Body:   []flexdoc.BodyComponent{titleComp("Big summer sale")},
			Footer: []flexdoc.FooterButton{footerBtn("Open", "https://example.com")},
		},
	}}
}

func hasCode(issues []flexdoc.Issue, code string) bool {
	for _, i := range issues {
		if i.Code == code {
			return true
		}
	}
	return false
}

func TestValidate_ValidBubbleIsPublishable(t *testing.T) {
	rep := Validate(validBubble())

	if rep.Status != flexdoc.StatusPublishable {
		t.Fatalf("status = %q, want publishable (errors: %+v)", rep.Status, rep.Errors)
	}
	if len(rep.Errors) != 0 {
		t.Errorf("expected no errors, got %+v", rep.Errors)
	}
}

func TestValidate_FolderAlwaysPublishable(t *testing.T) {
	doc := flexdoc.Document{Folder: &flexdoc.FolderDoc{Type: flexdoc.DocTypeFolder, ID: "f1", Name: "Campaigns"}}

	rep := Validate(doc)
	if rep.Status != flexdoc.StatusPublishable {
		t.Errorf("status = %q, want publishable", rep.Status)
	}
	if len(rep.Errors) != 0 || len(rep.Warnings) != 0 {
		t.Errorf("expected empty report, got errors=%v warnings=%v", rep.Errors, rep.Warnings)
	}
}

func TestValidate_BodyErrors(t *testing.T) {
	tests := []struct {
		name     string
		comp     flexdoc.BodyComponent
		wantCode string
	}{
		{
			name:     "empty title",
			comp:     titleComp(""),
			wantCode: flexdoc.CodeTitleEmpty,
		},
		{
			name:     "whitespace only title",
			comp:     titleComp("   "),
			wantCode: flexdoc.CodeTitleEmpty,
		},
		{
			name:     "over-long title",
			comp:     titleComp(strings.Repeat("x", 401)),
			wantCode: flexdoc.CodeTitleTooLong,
		},
		{
			name:     "empty paragraph",
			comp:     flexdoc.BodyComponent{ID: "p1", Kind: flexdoc.KindParagraph, Enabled: true, Text: "\t"},
			wantCode: flexdoc.CodeParagraphEmpty,
		},
		{
			name:     "key_value missing label",
			comp:     flexdoc.BodyComponent{ID: "kv1", Kind: flexdoc.KindKeyValue, Enabled: true, Value: "0912-345-678"},
			wantCode: flexdoc.CodeKVLabelEmpty,
		},
		{
			name:     "key_value missing value",
			comp:     flexdoc.BodyComponent{ID: "kv2", Kind: flexdoc.KindKeyValue, Enabled: true, Label: "Phone"},
			wantCode: flexdoc.CodeKVValueEmpty,
		},
		{
			name: "key_value action with empty uri",
			comp: flexdoc.BodyComponent{
				ID: "kv3", Kind: flexdoc.KindKeyValue, Enabled: true,
				Label: "Phone", Value: "0912-345-678",
				Action: &flexdoc.Action{Type: flexdoc.ActionURI},
			},
			wantCode: flexdoc.CodeActionURIProtocol,
		},
		{
			name: "key_value action with unsafe scheme",
			comp: flexdoc.BodyComponent{
				ID: "kv4", Kind: flexdoc.KindKeyValue, Enabled: true,
				Label: "Site", Value: "tap here",
				Action: &flexdoc.Action{Type: flexdoc.ActionURI, URI: "javascript:alert(1)"},
			},
			wantCode: flexdoc.CodeActionURIProtocol,
		},
		{
			name:     "empty list",
			comp:     flexdoc.BodyComponent{ID: "l1", Kind: flexdoc.KindList, Enabled: true},
			wantCode: flexdoc.CodeListEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validBubble()
			doc.Bubble.Section.Body = []flexdoc.BodyComponent{tt.comp}

			rep := Validate(doc)
			if !hasCode(rep.Errors, tt.wantCode) {
				t.Errorf("expected %s, got %+v", tt.wantCode, rep.Errors)
			}
			if rep.Status != flexdoc.StatusDraft {
				t.Errorf("status = %q, want draft", rep.Status)
			}
		})
	}
}

func TestValidate_DisabledComponentsAreSkipped(t *testing.T) {
	doc := validBubble()
	broken := titleComp("")
	broken.Enabled = false
	doc.Bubble.Section.Body = append(doc.Bubble.Section.Body, broken)

	rep := Validate(doc)
	if len(rep.Errors) != 0 {
		t.Errorf("disabled component should not be validated, got %+v", rep.Errors)
	}
}

func TestValidate_FooterErrors(t *testing.T) {
	tests := []struct {
		name     string
		footer   []flexdoc.FooterButton
		wantCode string
	}{
		{
			name: "four enabled buttons",
			footer: []flexdoc.FooterButton{
				footerBtn("A", "https://a.example"), footerBtn("B", "https://b.example"),
				footerBtn("C", "https://c.example"), footerBtn("D", "https://d.example"),
			},
			wantCode: flexdoc.CodeFooterTooManyButtons,
		},
		{
			name:     "missing label",
			footer:   []flexdoc.FooterButton{footerBtn("", "https://a.example")},
			wantCode: flexdoc.CodeTextRequired,
		},
		{
			name:     "over-long label",
			footer:   []flexdoc.FooterButton{footerBtn(strings.Repeat("x", 21), "https://a.example")},
			wantCode: flexdoc.CodeButtonLabelTooLong,
		},
		{
			name: "missing action",
			footer: []flexdoc.FooterButton{{
				ID: "b1", Kind: flexdoc.KindFooterButton, Enabled: true, Label: "Open",
			}},
			wantCode: flexdoc.CodeActionRequired,
		},
		{
			name:     "javascript scheme rejected",
			footer:   []flexdoc.FooterButton{footerBtn("Open", "javascript:alert(1)")},
			wantCode: flexdoc.CodeActionURIProtocol,
		},
		{
			name:     "over-long uri",
			footer:   []flexdoc.FooterButton{footerBtn("Open", "https://example.com/"+strings.Repeat("x", 2000))},
			wantCode: flexdoc.CodeURITooLong,
		},
		{
			name: "message action without text",
			footer: []flexdoc.FooterButton{{
				ID: "b1", Kind: flexdoc.KindFooterButton, Enabled: true, Label: "Hi",
				Action: &flexdoc.Action{Type: flexdoc.ActionMessage},
			}},
			wantCode: flexdoc.CodeMessageTextRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validBubble()
			doc.Bubble.Section.Footer = tt.footer

			rep := Validate(doc)
			if !hasCode(rep.Errors, tt.wantCode) {
				t.Errorf("expected %s, got %+v", tt.wantCode, rep.Errors)
			}
		})
	}
}

func TestValidate_FourButtonsDisabledOneIsFine(t *testing.T) {
	doc := validBubble()
	disabled := footerBtn("D", "https://d.example")
	disabled.Enabled = false
	doc.Bubble.Section.Footer = []flexdoc.FooterButton{
		footerBtn("A", "https://a.example"), footerBtn("B", "https://b.example"),
		footerBtn("C", "https://c.example"), disabled,
	}

	rep := Validate(doc)
	if hasCode(rep.Errors, flexdoc.CodeFooterTooManyButtons) {
		t.Errorf("disabled button should not count toward the cap: %+v", rep.Errors)
	}
}

func TestValidate_Carousel(t *testing.T) {
	card := func() flexdoc.Card {
		return flexdoc.Card{
			ID: "c",
			Section: flexdoc.CardSection{Regular: &flexdoc.Section{
				Hero: []flexdoc.HeroComponent{imageHero()},
				Body: []flexdoc.BodyComponent{titleComp("Plan")},
			}},
		}
	}

	t.Run("empty carousel", func(t *testing.T) {
		doc := flexdoc.Document{Carousel: &flexdoc.CarouselDoc{Type: flexdoc.DocTypeCarousel, Title: "x"}}
		rep := Validate(doc)
		if !hasCode(rep.Errors, flexdoc.CodeCarouselEmpty) {
			t.Errorf("expected E_CAROUSEL_EMPTY, got %+v", rep.Errors)
		}
	})

	t.Run("six cards", func(t *testing.T) {
		cards := make([]flexdoc.Card, 6)
		for i := range cards {
			cards[i] = card()
		}
		doc := flexdoc.Document{Carousel: &flexdoc.CarouselDoc{Type: flexdoc.DocTypeCarousel, Title: "x", Cards: cards}}
		rep := Validate(doc)
		if !hasCode(rep.Errors, flexdoc.CodeCarouselTooMany) {
			t.Errorf("expected E_CAROUSEL_TOO_MANY, got %+v", rep.Errors)
		}
	})

	t.Run("card without hero", func(t *testing.T) {
		c := card()
		c.Section.Regular.Hero = nil
		doc := flexdoc.Document{Carousel: &flexdoc.CarouselDoc{Type: flexdoc.DocTypeCarousel, Title: "x", Cards: []flexdoc.Card{c}}}
		rep := Validate(doc)
		if !hasCode(rep.Errors, flexdoc.CodeHeroRequired) {
			t.Errorf("expected E_HERO_REQUIRED, got %+v", rep.Errors)
		}
	})

	t.Run("video hero in carousel", func(t *testing.T) {
		c := card()
		c.Section.Regular.Hero = []flexdoc.HeroComponent{videoHero("https://v.example/a.mp4", "https://v.example/a.jpg")}
		doc := flexdoc.Document{Carousel: &flexdoc.CarouselDoc{Type: flexdoc.DocTypeCarousel, Title: "x", Cards: []flexdoc.Card{c}}}
		rep := Validate(doc)
		if !hasCode(rep.Errors, flexdoc.CodeVideoInCarousel) {
			t.Errorf("expected E_VIDEO_IN_CAROUSEL, got %+v", rep.Errors)
		}
	})
}

func TestValidate_VideoHero(t *testing.T) {
	videoBubble := func(videoURL, previewURL string, size flexdoc.BubbleSize) flexdoc.Document {
		return flexdoc.Document{Bubble: &flexdoc.BubbleDoc{
			Type:       flexdoc.DocTypeBubble,
			Title:      "Video card",
			BubbleSize: size,
			Section: flexdoc.Section{
				Hero: []flexdoc.HeroComponent{videoHero(videoURL, previewURL)},
				Body: []flexdoc.BodyComponent{titleComp("Watch")},
			},
		}}
	}

	tests := []struct {
		name     string
		doc      flexdoc.Document
		wantCode string
	}{
		{
			name:     "missing video url",
			doc:      videoBubble("", "https://v.example/a.jpg", flexdoc.BubbleMega),
			wantCode: flexdoc.CodeVideoURLRequired,
		},
		{
			name:     "http video url",
			doc:      videoBubble("http://v.example/a.mp4", "https://v.example/a.jpg", flexdoc.BubbleMega),
			wantCode: flexdoc.CodeVideoURLHTTPS,
		},
		{
			name:     "missing preview",
			doc:      videoBubble("https://v.example/a.mp4", "", flexdoc.BubbleMega),
			wantCode: flexdoc.CodeVideoPreviewRequired,
		},
		{
			name:     "wrong bubble size",
			doc:      videoBubble("https://v.example/a.mp4", "https://v.example/a.jpg", ""),
			wantCode: flexdoc.CodeVideoBubbleSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := Validate(tt.doc)
			if !hasCode(rep.Errors, tt.wantCode) {
				t.Errorf("expected %s, got %+v", tt.wantCode, rep.Errors)
			}
		})
	}

	t.Run("valid video bubble", func(t *testing.T) {
		rep := Validate(videoBubble("https://v.example/a.mp4", "https://v.example/a.jpg", flexdoc.BubbleMega))
		if len(rep.Errors) != 0 {
			t.Errorf("expected no errors, got %+v", rep.Errors)
		}
	})
}

func TestValidate_UncheckedImageIsPreviewable(t *testing.T) {
	doc := validBubble()
	doc.Bubble.Section.Hero[0].Image.LastCheck = nil
	doc.Bubble.Section.Hero[0].Image.URL = "http://cdn.example.com/hero.png"

	rep := Validate(doc)
	if len(rep.Errors) != 0 {
		t.Fatalf("expected no errors, got %+v", rep.Errors)
	}
	if !hasCode(rep.Warnings, flexdoc.CodeWarnImagePublishBlock) {
		t.Errorf("expected W_IMAGE_PUBLISH_BLOCK, got %+v", rep.Warnings)
	}
	if rep.Status != flexdoc.StatusPreviewable {
		t.Errorf("status = %q, want previewable", rep.Status)
	}
}

func TestIsPublishable_EscalatesImageWarning(t *testing.T) {
	doc := validBubble()
	doc.Bubble.Section.Hero[0].Image.URL = "http://cdn.example.com/hero.png"

	ok, blocking := IsPublishable(doc)
	if ok {
		t.Fatal("expected gate to refuse")
	}
	if !hasCode(blocking, flexdoc.CodeImagePublishBlock) {
		t.Errorf("expected E_IMAGE_PUBLISH_BLOCK, got %+v", blocking)
	}
}

func TestIsPublishable_AcceptsValidDocument(t *testing.T) {
	ok, blocking := IsPublishable(validBubble())
	if !ok {
		t.Errorf("expected gate to accept, blocking: %+v", blocking)
	}
}

func TestValidate_ColorWarningDoesNotBlock(t *testing.T) {
	doc := validBubble()
	doc.Bubble.Section.Body[0].Color = "red"

	rep := Validate(doc)
	if !hasCode(rep.Warnings, flexdoc.CodeWarnColorFormat) {
		t.Errorf("expected W_COLOR_FORMAT, got %+v", rep.Warnings)
	}
	if rep.Status != flexdoc.StatusPublishable {
		t.Errorf("status = %q, want publishable (warnings never block)", rep.Status)
	}
}

func TestValidate_IssuePathsLocateTheNode(t *testing.T) {
	doc := validBubble()
	doc.Bubble.Section.Body = []flexdoc.BodyComponent{titleComp("ok"), titleComp("")}

	rep := Validate(doc)
	if len(rep.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %+v", rep.Errors)
	}
	if got, want := rep.Errors[0].Path, "section.body[1].text"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
