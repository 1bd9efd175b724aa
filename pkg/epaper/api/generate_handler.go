package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

// GenerateHandler handles AI generation requests
type GenerateHandler struct {
	service epaper.Service
}

// NewGenerateHandler creates a new generation handler
func NewGenerateHandler(service epaper.Service) *GenerateHandler {
	return &GenerateHandler{service: service}
}

// Routes returns the routes for generation
func (h *GenerateHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(RequireUser)

	r.Post("/headline", h.GenerateHeadline)
	r.Post("/summary", h.GenerateSummary)
	r.Post("/image", h.GenerateImage)

	return r
}

// GenerateTextResponse carries the generated text and the updated edition
type GenerateTextResponse struct {
	Text    string          `json:"text"`
	Edition *epaper.Edition `json:"edition"`
}

// GenerateImageResponse carries the generated image and the updated edition.
// ImageURL is empty when the model produced no image; the edition is then
// unchanged.
type GenerateImageResponse struct {
	ImageURL string          `json:"imageUrl"`
	Edition  *epaper.Edition `json:"edition"`
}

// GenerateHeadline generates a headline for an article block
func (h *GenerateHandler) GenerateHeadline(w http.ResponseWriter, r *http.Request) {
	var req epaper.GenerateTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	edition, text, err := h.service.GenerateHeadline(r.Context(), req)
	if err != nil {
		slog.Error("Failed to generate headline", "edition_id", req.EditionID, "error", err)
		writeError(w, r, err)
		return
	}

	slog.Info("Headline generated", "edition_id", req.EditionID, "block_id", req.BlockID)
	render.JSON(w, r, GenerateTextResponse{Text: text, Edition: edition})
}

// GenerateSummary generates a 2-3 sentence summary for an article block
func (h *GenerateHandler) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	var req epaper.GenerateTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	edition, text, err := h.service.GenerateSummary(r.Context(), req)
	if err != nil {
		slog.Error("Failed to generate summary", "edition_id", req.EditionID, "error", err)
		writeError(w, r, err)
		return
	}

	slog.Info("Summary generated", "edition_id", req.EditionID, "block_id", req.BlockID)
	render.JSON(w, r, GenerateTextResponse{Text: text, Edition: edition})
}

// GenerateImage generates an image for a block
func (h *GenerateHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req epaper.GenerateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	edition, imageURL, err := h.service.GenerateBlockImage(r.Context(), req)
	if err != nil {
		slog.Error("Failed to generate image", "edition_id", req.EditionID, "error", err)
		writeError(w, r, err)
		return
	}

	slog.Info("Image generated", "edition_id", req.EditionID, "block_id", req.BlockID, "empty", imageURL == "")
	render.JSON(w, r, GenerateImageResponse{ImageURL: imageURL, Edition: edition})
}
