package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

// OptionsHandler serves the editor's static catalogues (section templates,
// categories, formatting tokens, model lists)
type OptionsHandler struct{}

// NewOptionsHandler creates a new options handler
func NewOptionsHandler() *OptionsHandler {
	return &OptionsHandler{}
}

// Routes returns the routes for editor options
func (h *OptionsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetOptions)
	return r
}

// OptionsResponse bundles every catalogue the editor needs to render its
// controls
type OptionsResponse struct {
	SectionTypes      []epaper.SectionType     `json:"sectionTypes"`
	ArticleCategories []string                 `json:"articleCategories"`
	TextAlignments    []epaper.LabeledOption   `json:"textAlignments"`
	FontSizes         []epaper.LabeledOption   `json:"fontSizes"`
	LineSpacings      []epaper.LabeledOption   `json:"lineSpacings"`
	BlockSizes        []epaper.BlockSizeOption `json:"blockSizes"`
	TextModels        []epaper.LabeledOption   `json:"textModels"`
	ImageModels       []epaper.LabeledOption   `json:"imageModels"`
	DefaultConfig     epaper.GenerationConfig  `json:"defaultConfig"`
}

// GetOptions returns all editor catalogues
func (h *OptionsHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, OptionsResponse{
		SectionTypes:      epaper.SectionTypes,
		ArticleCategories: epaper.ArticleCategories,
		TextAlignments:    epaper.TextAlignmentOptions,
		FontSizes:         epaper.FontSizeOptions,
		LineSpacings:      epaper.LineSpacingOptions,
		BlockSizes:        epaper.BlockSizeOptions,
		TextModels:        epaper.AvailableTextModels,
		ImageModels:       epaper.AvailableImageModels,
		DefaultConfig:     epaper.DefaultGenerationConfig(),
	})
}
