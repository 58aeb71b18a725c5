package flex

import (
	"flexdeck/internal/config"
	"flexdeck/internal/domain/models/flexdoc"
	"flexdeck/internal/flex/wire"
)

// ShareMessages compiles a document into the message array handed to
// the in-app share picker. The picker cannot deliver video nodes
// inside flex messages, so a bubble with a video hero is split into a
// plain video message followed by the flex message with the hero
// replaced by its preview image. Carousel cards never carry video (the
// validator rejects them), but any that slipped through are downgraded
// the same way instead of failing delivery.
func ShareMessages(doc flexdoc.Document, ctx Context) []wire.ShareMessage {
	msg := Compile(doc, ctx)

	messages := make([]wire.ShareMessage, 0, 2)

	switch contents := msg.Contents.(type) {
	case *wire.Bubble:
		if video, ok := contents.Hero.(*wire.Video); ok {
			messages = append(messages, &wire.VideoMessage{
				Type:               "video",
				OriginalContentURL: video.URL,
				PreviewImageURL:    previewImageURL(video),
			})
			contents.Hero = demoteVideoHero(video)
		}
	case *wire.Carousel:
		for _, bubble := range contents.Contents {
			if video, ok := bubble.Hero.(*wire.Video); ok {
				bubble.Hero = demoteVideoHero(video)
			}
		}
	}

	messages = append(messages, &msg)

	if len(messages) > config.MaxShareMessages {
		messages = messages[:config.MaxShareMessages]
	}
	return messages
}

// demoteVideoHero replaces a video hero with its preview image.
func demoteVideoHero(video *wire.Video) wire.Node {
	if video.AltContent != nil {
		return video.AltContent
	}
	return &wire.Image{
		Type:        "image",
		URL:         video.PreviewURL,
		Size:        "full",
		AspectRatio: video.AspectRatio,
		AspectMode:  string(flexdoc.FitCover),
	}
}

func previewImageURL(video *wire.Video) string {
	if video.PreviewURL != "" {
		return video.PreviewURL
	}
	if video.AltContent != nil {
		return video.AltContent.URL
	}
	return ""
}
