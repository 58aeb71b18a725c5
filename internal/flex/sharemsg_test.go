package flex

import (
	"testing"

	"flexdeck/internal/domain/models/flexdoc"
	"flexdeck/internal/flex/wire"
)

func TestShareMessages_VideoHeroSplitsIntoTwo(t *testing.T) {
	doc := validBubble()
	doc.Bubble.BubbleSize = flexdoc.BubbleMega
	doc.Bubble.Section.Hero = []flexdoc.HeroComponent{videoHero("https://v.example/a.mp4", "https://v.example/a.jpg")}

	messages := ShareMessages(doc, testCtx())
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}

	video, ok := messages[0].(*wire.VideoMessage)
	if !ok {
		t.Fatalf("first message = %#v, want plain video", messages[0])
	}
	if video.OriginalContentURL != "https://v.example/a.mp4" {
		t.Errorf("originalContentUrl = %q", video.OriginalContentURL)
	}
	if video.PreviewImageURL != "https://v.example/a.jpg" {
		t.Errorf("previewImageUrl = %q", video.PreviewImageURL)
	}

	flexMsg, ok := messages[1].(*wire.Message)
	if !ok {
		t.Fatalf("second message = %#v, want flex", messages[1])
	}
	bubble := flexMsg.Contents.(*wire.Bubble)
	image, ok := bubble.Hero.(*wire.Image)
	if !ok {
		t.Fatalf("demoted hero = %#v, want image", bubble.Hero)
	}
	if image.URL != "https://v.example/a.jpg" {
		t.Errorf("demoted hero url = %q, want the preview image", image.URL)
	}
}

func TestShareMessages_ImageHeroStaysSingle(t *testing.T) {
	messages := ShareMessages(validBubble(), testCtx())
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	flexMsg := messages[0].(*wire.Message)
	if _, ok := flexMsg.Contents.(*wire.Bubble).Hero.(*wire.Image); !ok {
		t.Errorf("hero should remain an image")
	}
}

func TestShareMessages_CarouselVideoDemotedInPlace(t *testing.T) {
	doc := flexdoc.Document{Carousel: &flexdoc.CarouselDoc{
		Type:       flexdoc.DocTypeCarousel,
		Title:      "Mixed",
		BubbleSize: flexdoc.BubbleMega,
		Cards: []flexdoc.Card{
			{ID: "c1", Section: flexdoc.CardSection{Regular: &flexdoc.Section{
				Hero: []flexdoc.HeroComponent{videoHero("https://v.example/a.mp4", "https://v.example/a.jpg")},
				Body: []flexdoc.BodyComponent{titleComp("Clip")},
			}}},
			{ID: "c2", Section: flexdoc.CardSection{Regular: &flexdoc.Section{
				Hero: []flexdoc.HeroComponent{imageHero()},
				Body: []flexdoc.BodyComponent{titleComp("Still")},
			}}},
		},
	}}

	messages := ShareMessages(doc, testCtx())
	if len(messages) != 1 {
		t.Fatalf("expected a single flex message, got %d", len(messages))
	}

	carousel := messages[0].(*wire.Message).Contents.(*wire.Carousel)
	for i, bubble := range carousel.Contents {
		if _, ok := bubble.Hero.(*wire.Video); ok {
			t.Errorf("card %d still carries a video hero", i)
		}
	}
	if _, ok := carousel.Contents[0].Hero.(*wire.Image); !ok {
		t.Errorf("demoted hero = %#v, want image", carousel.Contents[0].Hero)
	}
}
