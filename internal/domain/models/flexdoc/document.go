package flexdoc

import (
	"encoding/json"
	"fmt"
)

// BubbleDoc is a single editable card.
type BubbleDoc struct {
	Type       DocType    `json:"type"` // always "bubble"
	Title      string     `json:"title"`
	Section    Section    `json:"section"`
	BubbleSize BubbleSize `json:"bubbleSize,omitempty"`
	FolderID   *string    `json:"folderId,omitempty"`
}

// CarouselDoc is an ordered sequence of cards sent as one message.
type CarouselDoc struct {
	Type       DocType    `json:"type"` // always "carousel"
	Title      string     `json:"title"`
	Cards      []Card     `json:"cards"`
	BubbleSize BubbleSize `json:"bubbleSize,omitempty"`
	FolderID   *string    `json:"folderId,omitempty"`
}

// FolderDoc is an organizational container. It is never compiled to
// the wire format and always validates as publishable.
type FolderDoc struct {
	Type     DocType `json:"type"` // always "folder"
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parentId,omitempty"`
}

// Document is the tagged union over bubble, carousel and folder,
// discriminated by the top-level "type" field. Exactly one variant is
// set.
type Document struct {
	Bubble   *BubbleDoc
	Carousel *CarouselDoc
	Folder   *FolderDoc
}

// Type returns the discriminator of the set variant.
func (d Document) Type() DocType {
	switch {
	case d.Bubble != nil:
		return DocTypeBubble
	case d.Carousel != nil:
		return DocTypeCarousel
	case d.Folder != nil:
		return DocTypeFolder
	default:
		return ""
	}
}

// Title returns the display title of the set variant.
func (d Document) Title() string {
	switch {
	case d.Bubble != nil:
		return d.Bubble.Title
	case d.Carousel != nil:
		return d.Carousel.Title
	case d.Folder != nil:
		return d.Folder.Name
	default:
		return ""
	}
}

func (d Document) MarshalJSON() ([]byte, error) {
	switch {
	case d.Bubble != nil:
		d.Bubble.Type = DocTypeBubble
		return json.Marshal(d.Bubble)
	case d.Carousel != nil:
		d.Carousel.Type = DocTypeCarousel
		return json.Marshal(d.Carousel)
	case d.Folder != nil:
		d.Folder.Type = DocTypeFolder
		return json.Marshal(d.Folder)
	default:
		return []byte("null"), nil
	}
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type DocType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("document: %w", err)
	}

	*d = Document{}
	switch probe.Type {
	case DocTypeBubble:
		var b BubbleDoc
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("bubble document: %w", err)
		}
		d.Bubble = &b
	case DocTypeCarousel:
		var c CarouselDoc
		if err := json.Unmarshal(data, &c); err != nil {
			return fmt.Errorf("carousel document: %w", err)
		}
		d.Carousel = &c
	case DocTypeFolder:
		var f FolderDoc
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("folder document: %w", err)
		}
		d.Folder = &f
	default:
		return fmt.Errorf("document: unknown type %q", probe.Type)
	}
	return nil
}
