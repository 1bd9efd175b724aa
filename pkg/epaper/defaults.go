package epaper

// LabeledOption pairs a stored value with its UI label.
type LabeledOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SectionType identifies one of the stock section templates.
type SectionType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BlockSizeOption is a width/height token pair from the size catalogue.
type BlockSizeOption struct {
	Width  string `json:"width"`
	Height string `json:"height"`
	Label  string `json:"label"`
}

// SectionTypes is the stock set of section templates offered by the editor.
// Section.Type is free-form; these are only the defaults.
var SectionTypes = []SectionType{
	{ID: "main-news", Name: "Main News"},
	{ID: "local-news", Name: "Local News"},
	{ID: "sports", Name: "Sports"},
	{ID: "editorial", Name: "Editorial"},
	{ID: "features", Name: "Features"},
	{ID: "advertisement", Name: "Advertisement"},
}

// ArticleCategories is the enumerated category list for article blocks.
var ArticleCategories = []string{
	"Local News", "National", "International", "Sports", "Technology",
	"Health", "Politics", "Business", "Entertainment", "Editorial",
}

// TextAlignmentOptions enumerates the article text alignments.
var TextAlignmentOptions = []LabeledOption{
	{Value: string(AlignLeft), Label: "Left"},
	{Value: string(AlignCenter), Label: "Center"},
	{Value: string(AlignRight), Label: "Right"},
	{Value: string(AlignJustify), Label: "Justify"},
}

// FontSizeOptions enumerates the article font size tokens.
var FontSizeOptions = []LabeledOption{
	{Value: "text-sm", Label: "Small"},
	{Value: "text-base", Label: "Normal"},
	{Value: "text-lg", Label: "Large"},
	{Value: "text-xl", Label: "X-Large"},
}

// LineSpacingOptions enumerates the article line spacing tokens.
var LineSpacingOptions = []LabeledOption{
	{Value: "leading-tight", Label: "Tight"},
	{Value: "leading-normal", Label: "Normal"},
	{Value: "leading-relaxed", Label: "Relaxed"},
}

// BlockSizeOptions enumerates the block size token pairs.
var BlockSizeOptions = []BlockSizeOption{
	{Width: "w-full", Height: "h-auto", Label: "Full Width / Auto Height"},
	{Width: "w-1/2", Height: "h-48", Label: "Half Width / Medium Height"},
	{Width: "w-1/3", Height: "h-32", Label: "Third Width / Small Height"},
	{Width: "w-2/3", Height: "h-64", Label: "Two-Thirds Width / Large Height"},
}

// AvailableTextModels lists the text generation models the editor exposes.
var AvailableTextModels = []LabeledOption{
	{Value: "gemini-2.5-flash", Label: "Gemini 2.5 Flash"},
	{Value: "gemini-3-pro-preview", Label: "Gemini 3 Pro Preview"},
}

// AvailableImageModels lists the image generation models the editor exposes.
var AvailableImageModels = []LabeledOption{
	{Value: "gemini-2.5-flash-image", Label: "Gemini 2.5 Flash Image"},
	{Value: "gemini-3-pro-image-preview", Label: "Gemini 3 Pro Image Preview"},
}

// DefaultLanguage is the language new editions start with.
const DefaultLanguage = LanguageEnglish

// DefaultGenerationConfig returns the generation tunables used when a request
// does not carry its own.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		TextModel:   "gemini-2.5-flash",
		ImageModel:  "gemini-2.5-flash-image",
		Temperature: 0.7,
		TopK:        64,
		TopP:        0.95,
	}
}
