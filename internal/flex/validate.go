// Package flex holds the document core: a pure validator deciding
// publish readiness and a pure compiler producing the platform wire
// format. Neither performs I/O; both are total over the document type.
package flex

import (
	"fmt"
	"strings"

	"flexdeck/internal/config"
	"flexdeck/internal/domain/models/flexdoc"
)

// Validate walks a document and returns a report of coded, path-located
// errors and warnings plus the computed publish-readiness status. It
// never fails: malformed documents produce issues, not Go errors.
func Validate(doc flexdoc.Document) flexdoc.Report {
	// Folders have no renderable content.
	if doc.Folder != nil {
		return flexdoc.Report{Status: flexdoc.StatusPublishable, Errors: []flexdoc.Issue{}, Warnings: []flexdoc.Issue{}}
	}

	v := &validator{}

	switch {
	case doc.Bubble != nil:
		v.checkSection(flexdoc.CardSection{Regular: &doc.Bubble.Section}, "section", false)
		v.checkBubbleVideoSize(doc.Bubble)
	case doc.Carousel != nil:
		v.checkCarousel(doc.Carousel)
	default:
		v.addError(flexdoc.CodeDocEmpty, "document has no content", "")
	}

	return flexdoc.Report{
		Status:   computeStatus(v.errors, v.warnings),
		Errors:   v.errors,
		Warnings: v.warnings,
	}
}

// IsPublishable is the publish gate: it reruns Validate and escalates
// every unconfirmed-image-reachability warning into a hard error. This
// must be called again at publish time even when a cached report
// exists, because the cached image check can go stale between edits
// and publish.
func IsPublishable(doc flexdoc.Document) (bool, []flexdoc.Issue) {
	rep := Validate(doc)

	errors := make([]flexdoc.Issue, 0, len(rep.Errors))
	errors = append(errors, rep.Errors...)
	for _, w := range rep.Warnings {
		if w.Code == flexdoc.CodeWarnImagePublishBlock {
			errors = append(errors, flexdoc.Issue{
				Code:    flexdoc.CodeImagePublishBlock,
				Level:   flexdoc.LevelError,
				Message: w.Message,
				Path:    w.Path,
			})
		}
	}

	return len(errors) == 0, errors
}

func computeStatus(errors, warnings []flexdoc.Issue) flexdoc.Status {
	if len(errors) > 0 {
		return flexdoc.StatusDraft
	}
	for _, w := range warnings {
		if w.Code == flexdoc.CodeWarnImagePublishBlock {
			return flexdoc.StatusPreviewable
		}
	}
	return flexdoc.StatusPublishable
}

type validator struct {
	errors   []flexdoc.Issue
	warnings []flexdoc.Issue
}

func (v *validator) addError(code, message, path string) {
	v.errors = append(v.errors, flexdoc.Issue{Code: code, Level: flexdoc.LevelError, Message: message, Path: path})
}

func (v *validator) addWarning(code, message, path string) {
	v.warnings = append(v.warnings, flexdoc.Issue{Code: code, Level: flexdoc.LevelWarn, Message: message, Path: path})
}

func (v *validator) checkCarousel(doc *flexdoc.CarouselDoc) {
	if len(doc.Cards) < 1 {
		v.addError(flexdoc.CodeCarouselEmpty, "carousel needs at least 1 card", "cards")
	}
	if len(doc.Cards) > config.MaxCarouselCards {
		v.addError(flexdoc.CodeCarouselTooMany,
			fmt.Sprintf("carousel can have at most %d cards", config.MaxCarouselCards), "cards")
	}

	// The platform cannot deliver video heroes inside carousels,
	// independent of every other video rule.
	for i, card := range doc.Cards {
		if card.Section.Regular == nil {
			continue
		}
		if enabledHero(card.Section.Regular.Hero, flexdoc.KindHeroVideo) != nil {
			v.addError(flexdoc.CodeVideoInCarousel,
				"video heroes are not supported in carousels; use a standalone bubble",
				fmt.Sprintf("cards[%d].section.hero", i))
		}
	}

	for i, card := range doc.Cards {
		v.checkSection(card.Section, fmt.Sprintf("cards[%d].section", i), true)
	}
}

func (v *validator) checkBubbleVideoSize(doc *flexdoc.BubbleDoc) {
	if enabledHero(doc.Section.Hero, flexdoc.KindHeroVideo) == nil {
		return
	}
	for _, size := range flexdoc.VideoBubbleSizes {
		if doc.BubbleSize == size {
			return
		}
	}
	v.addError(flexdoc.CodeVideoBubbleSize,
		"a bubble with a video hero must use bubbleSize kilo, mega or giga", "bubbleSize")
}

func (v *validator) checkSection(section flexdoc.CardSection, base string, requireHero bool) {
	if section.Special != nil {
		if !imagePublishable(section.Special.Image) {
			v.addWarning(flexdoc.CodeWarnImagePublishBlock,
				"image reachability is unconfirmed (previewable, not publishable)", base+".image")
		}
		if bg := section.Special.Overlay.BackgroundColor; bg != "" && !IsHexColorAlpha(bg) {
			v.addWarning(flexdoc.CodeWarnColorFormat, "use #RRGGBB or #RRGGBBAA", base+".overlay.backgroundColor")
		}
		v.checkBody(section.Special.Body, base+".body")
		return
	}
	if section.Regular == nil {
		return
	}

	heroImage := enabledHero(section.Regular.Hero, flexdoc.KindHeroImage)
	heroVideo := enabledHero(section.Regular.Hero, flexdoc.KindHeroVideo)

	if requireHero && heroImage == nil && heroVideo == nil {
		v.addError(flexdoc.CodeHeroRequired, "every card needs a hero image or video", base+".hero")
	}

	if heroImage != nil && heroImage.Image != nil && !imagePublishable(*heroImage.Image) {
		v.addWarning(flexdoc.CodeWarnImagePublishBlock,
			"image reachability is unconfirmed (previewable, not publishable)", base+".hero_image")
	}

	if heroVideo != nil {
		v.checkHeroVideo(heroVideo, base)
	}

	v.checkBody(section.Regular.Body, base+".body")
	v.checkFooter(section.Regular.Footer, base+".footer")
}

func (v *validator) checkHeroVideo(hero *flexdoc.HeroComponent, base string) {
	var videoURL, previewURL string
	if hero.Video != nil {
		videoURL = hero.Video.URL
		previewURL = hero.Video.PreviewURL
	}

	if blank(videoURL) {
		v.addError(flexdoc.CodeVideoURLRequired, "video URL is required", base+".hero_video.url")
	} else if safeHTTPSURL(videoURL) == "" {
		v.addError(flexdoc.CodeVideoURLHTTPS, "video URL must use HTTPS", base+".hero_video.url")
	}

	if blank(previewURL) {
		v.addError(flexdoc.CodeVideoPreviewRequired, "video preview image is required", base+".hero_video.previewUrl")
	} else if safeHTTPSURL(previewURL) == "" && previewURL[0] != '/' {
		v.addWarning(flexdoc.CodeWarnVideoPreviewHTTPS, "video preview image should use HTTPS", base+".hero_video.previewUrl")
	}
}

func (v *validator) checkBody(body []flexdoc.BodyComponent, base string) {
	for i, c := range body {
		if !c.Enabled {
			continue
		}
		path := fmt.Sprintf("%s[%d]", base, i)
		switch c.Kind {
		case flexdoc.KindTitle:
			if blank(c.Text) {
				v.addError(flexdoc.CodeTitleEmpty, "title text is required", path+".text")
			} else if len([]rune(c.Text)) > config.MaxTitleLength {
				v.addError(flexdoc.CodeTitleTooLong,
					fmt.Sprintf("title can have at most %d characters", config.MaxTitleLength), path+".text")
			}
			if c.Color != "" && !IsHexColor(c.Color) {
				v.addWarning(flexdoc.CodeWarnColorFormat, "use #RRGGBB", path+".color")
			}
		case flexdoc.KindParagraph:
			if blank(c.Text) {
				v.addError(flexdoc.CodeParagraphEmpty, "paragraph text is required", path+".text")
			} else if len([]rune(c.Text)) > config.MaxParagraphLength {
				v.addError(flexdoc.CodeParagraphTooLong,
					fmt.Sprintf("paragraph can have at most %d characters", config.MaxParagraphLength), path+".text")
			}
			if c.Color != "" && !IsHexColor(c.Color) {
				v.addWarning(flexdoc.CodeWarnColorFormat, "use #RRGGBB", path+".color")
			}
		case flexdoc.KindKeyValue:
			if blank(c.Label) {
				v.addError(flexdoc.CodeKVLabelEmpty, "label is required", path+".label")
			} else if len([]rune(c.Label)) > config.MaxKeyValueLabelLength {
				v.addWarning(flexdoc.CodeWarnKVLabelLong,
					fmt.Sprintf("labels should stay within %d characters", config.MaxKeyValueLabelLength), path+".label")
			}
			if blank(c.Value) {
				v.addError(flexdoc.CodeKVValueEmpty, "value is required", path+".value")
			} else if len([]rune(c.Value)) > config.MaxKeyValueValueLength {
				v.addWarning(flexdoc.CodeWarnKVValueLong,
					fmt.Sprintf("values should stay within %d characters", config.MaxKeyValueValueLength), path+".value")
			}
			if c.Action != nil && c.Action.Type == flexdoc.ActionURI {
				v.checkActionURI(c.Action.URI, path+".action.uri")
			}
		case flexdoc.KindList:
			if len(c.Items) == 0 {
				v.addError(flexdoc.CodeListEmpty, "list needs at least one item", path+".items")
			}
		case flexdoc.KindDivider, flexdoc.KindSpacer:
			// nothing to check
		}
	}
}

func (v *validator) checkFooter(footer []flexdoc.FooterButton, base string) {
	enabled := 0
	for _, b := range footer {
		if b.Enabled {
			enabled++
		}
	}
	if enabled > config.MaxFooterButtons {
		v.addError(flexdoc.CodeFooterTooManyButtons,
			fmt.Sprintf("footer can have at most %d buttons", config.MaxFooterButtons), base)
	}

	for i, b := range footer {
		if !b.Enabled {
			continue
		}
		path := fmt.Sprintf("%s[%d]", base, i)

		if blank(b.Label) {
			v.addError(flexdoc.CodeTextRequired, "button label is required", path+".label")
		} else if len([]rune(b.Label)) > config.MaxButtonLabelLength {
			v.addError(flexdoc.CodeButtonLabelTooLong,
				fmt.Sprintf("button labels can have at most %d characters", config.MaxButtonLabelLength), path+".label")
		}

		switch {
		case b.Action == nil:
			v.addError(flexdoc.CodeActionRequired, "button action is required", path+".action")
		case b.Action.Type == flexdoc.ActionURI:
			if blank(b.Action.URI) {
				v.addError(flexdoc.CodeActionURIInvalid, "link is malformed", path+".action.uri")
			} else {
				v.checkActionURI(b.Action.URI, path+".action.uri")
			}
		case b.Action.Type == flexdoc.ActionMessage:
			if blank(b.Action.Text) {
				v.addError(flexdoc.CodeMessageTextRequired, "message text is required", path+".action.text")
			}
		}

		if b.BgColor != "" && !IsHexColor(b.BgColor) {
			v.addWarning(flexdoc.CodeWarnColorFormat, "use #RRGGBB", path+".bgColor")
		}
		if b.TextColor != "" && !IsHexColor(b.TextColor) {
			v.addWarning(flexdoc.CodeWarnColorFormat, "use #RRGGBB", path+".textColor")
		}
	}
}

func (v *validator) checkActionURI(uri, path string) {
	if !SafeURIScheme(uri) {
		v.addError(flexdoc.CodeActionURIProtocol,
			"links support only https://, http://, tel:, line:// and liff://", path)
	} else if len(uri) > config.MaxURILength {
		v.addError(flexdoc.CodeURITooLong,
			fmt.Sprintf("links can have at most %d characters", config.MaxURILength), path)
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// enabledHero returns the first enabled hero of the given kind.
// Image/video precedence at compile time is a tie-break, not an error.
func enabledHero(hero []flexdoc.HeroComponent, kind flexdoc.ComponentKind) *flexdoc.HeroComponent {
	for i := range hero {
		if hero[i].Enabled && hero[i].Kind == kind {
			return &hero[i]
		}
	}
	return nil
}

// imagePublishable reports whether the platform is known to be able to
// fetch the image. Uploads must be HTTPS; external images must not
// have a failed reachability check and must be HTTPS or same-origin.
func imagePublishable(img flexdoc.ImageSource) bool {
	if img.Kind == flexdoc.SourceUpload {
		return safeHTTPSURL(img.URL) != ""
	}
	if img.LastCheck != nil && img.LastCheck.Level == flexdoc.CheckFail {
		return false
	}
	return safeHTTPSURL(img.URL) != "" || (img.URL != "" && img.URL[0] == '/')
}
