package epaper

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// BlockKind is the discriminant of the block union.
type BlockKind string

// Block kind constants (typed).
const (
	KindArticle BlockKind = "article"
	KindImage   BlockKind = "image"
	KindAd      BlockKind = "ad"
)

// IsValid reports whether the kind is one of the three block variants.
func (k BlockKind) IsValid() bool {
	switch k {
	case KindArticle, KindImage, KindAd:
		return true
	default:
		return false
	}
}

// TextAlignment is the horizontal alignment of article text.
type TextAlignment string

// Text alignment constants.
const (
	AlignLeft    TextAlignment = "left"
	AlignCenter  TextAlignment = "center"
	AlignRight   TextAlignment = "right"
	AlignJustify TextAlignment = "justify"
)

// BlockLayout holds the presentation geometry shared by every block variant.
// Width and Height are free-form size tokens from the catalogue in
// defaults.go. X and Y are placeholders for drag-and-drop placement; nothing
// reads them yet.
type BlockLayout struct {
	Width    string `json:"width,omitempty"`
	Height   string `json:"height,omitempty"`
	Rotation int    `json:"rotation,omitempty"`
	X        int    `json:"x,omitempty"`
	Y        int    `json:"y,omitempty"`
}

// Block is the closed union of content blocks placed inside a section.
// The ID and kind of a block are fixed at creation; partial updates go
// through BlockPatch, which cannot touch either.
//
// The unexported method seals the union: only the variants in this package
// implement Block.
type Block interface {
	// BlockID returns the block's opaque unique identifier.
	BlockID() string

	// Kind returns the variant discriminant.
	Kind() BlockKind

	// Layout returns the shared presentation geometry.
	Layout() BlockLayout

	// withID returns a copy of the block carrying the given identifier.
	withID(id string) Block

	// applyPatch returns a copy with the patch's set fields merged in.
	applyPatch(p BlockPatch) Block
}

// ArticleBlock is a headlined text story.
type ArticleBlock struct {
	ID              string        `json:"id"`
	Type            BlockKind     `json:"type"`
	Headline        string        `json:"headline"`
	SubHeadline     string        `json:"subHeadline"`
	Content         string        `json:"content"`
	Byline          string        `json:"byline"`
	Category        string        `json:"category"`
	Location        string        `json:"location"`
	ArticleImageURL string        `json:"articleImageUrl,omitempty"`
	TextAlignment   TextAlignment `json:"textAlignment,omitempty"`
	FontSize        string        `json:"fontSize,omitempty"`
	LineSpacing     string        `json:"lineSpacing,omitempty"`
	BlockLayout
}

// BlockID returns the block identifier.
func (b ArticleBlock) BlockID() string { return b.ID }

// Kind returns KindArticle.
func (b ArticleBlock) Kind() BlockKind { return KindArticle }

// Layout returns the block's presentation geometry.
func (b ArticleBlock) Layout() BlockLayout { return b.BlockLayout }

func (b ArticleBlock) withID(id string) Block {
	b.ID = id
	return b
}

// ImageBlock is a standalone captioned image.
type ImageBlock struct {
	ID       string    `json:"id"`
	Type     BlockKind `json:"type"`
	ImageURL string    `json:"imageUrl"`
	Caption  string    `json:"caption"`
	BlockLayout
}

// BlockID returns the block identifier.
func (b ImageBlock) BlockID() string { return b.ID }

// Kind returns KindImage.
func (b ImageBlock) Kind() BlockKind { return KindImage }

// Layout returns the block's presentation geometry.
func (b ImageBlock) Layout() BlockLayout { return b.BlockLayout }

func (b ImageBlock) withID(id string) Block {
	b.ID = id
	return b
}

// AdBlock is an advertisement placement.
type AdBlock struct {
	ID         string    `json:"id"`
	Type       BlockKind `json:"type"`
	AdContent  string    `json:"adContent"`
	AdImageURL string    `json:"adImageUrl,omitempty"`
	TargetURL  string    `json:"targetUrl,omitempty"`
	BlockLayout
}

// BlockID returns the block identifier.
func (b AdBlock) BlockID() string { return b.ID }

// Kind returns KindAd.
func (b AdBlock) Kind() BlockKind { return KindAd }

// Layout returns the block's presentation geometry.
func (b AdBlock) Layout() BlockLayout { return b.BlockLayout }

func (b AdBlock) withID(id string) Block {
	b.ID = id
	return b
}

// NewArticleBlock creates an article block with editorial defaults. The
// byline credits the given author name, falling back to "Editor".
func NewArticleBlock(authorName string) ArticleBlock {
	if authorName == "" {
		authorName = "Editor"
	}
	return ArticleBlock{
		ID:            uuid.New().String(),
		Type:          KindArticle,
		Headline:      "New Article Headline",
		Content:       "Write your article content here...",
		Byline:        "By " + authorName,
		Category:      "Local News",
		TextAlignment: AlignLeft,
		FontSize:      "text-base",
		LineSpacing:   "leading-normal",
		BlockLayout:   BlockLayout{Width: "w-full", Height: "h-auto"},
	}
}

// NewImageBlock creates an image block pointing at a stock placeholder.
func NewImageBlock() ImageBlock {
	return ImageBlock{
		ID:          uuid.New().String(),
		Type:        KindImage,
		ImageURL:    "https://picsum.photos/400/250",
		Caption:     "Image caption",
		BlockLayout: BlockLayout{Width: "w-1/2", Height: "h-48"},
	}
}

// NewAdBlock creates an advertisement block with placeholder creative.
func NewAdBlock() AdBlock {
	return AdBlock{
		ID:          uuid.New().String(),
		Type:        KindAd,
		AdContent:   "Your advertisement text here",
		AdImageURL:  "https://via.placeholder.com/300x150?text=Advertisement",
		TargetURL:   "#",
		BlockLayout: BlockLayout{Width: "w-full", Height: "h-40"},
	}
}

// NewBlock creates a block of the requested kind with its defaults.
func NewBlock(kind BlockKind, authorName string) (Block, error) {
	switch kind {
	case KindArticle:
		return NewArticleBlock(authorName), nil
	case KindImage:
		return NewImageBlock(), nil
	case KindAd:
		return NewAdBlock(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidBlockKind, kind)
	}
}

// UnmarshalBlock decodes a single block from its JSON envelope, dispatching
// on the "type" discriminant.
func UnmarshalBlock(data []byte) (Block, error) {
	var probe struct {
		Type BlockKind `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch probe.Type {
	case KindArticle:
		var b ArticleBlock
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, err
		}
		return b, nil
	case KindImage:
		var b ImageBlock
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, err
		}
		return b, nil
	case KindAd:
		var b AdBlock
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidBlockKind, probe.Type)
	}
}

// UnmarshalJSON decodes a section, reconstructing the concrete block variants
// from their tagged envelopes.
func (s *Section) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID     string            `json:"id"`
		Type   string            `json:"type"`
		Title  string            `json:"title"`
		Blocks []json.RawMessage `json:"blocks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.ID = raw.ID
	s.Type = raw.Type
	s.Title = raw.Title
	s.Blocks = nil
	for _, rb := range raw.Blocks {
		block, err := UnmarshalBlock(rb)
		if err != nil {
			return err
		}
		s.Blocks = append(s.Blocks, block)
	}
	return nil
}
