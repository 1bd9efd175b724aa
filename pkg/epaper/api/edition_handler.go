package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

// EditionHandler handles HTTP requests for editions, pages, sections and
// blocks using pkg/epaper
type EditionHandler struct {
	service epaper.Service
}

// NewEditionHandler creates a new edition handler
func NewEditionHandler(service epaper.Service) *EditionHandler {
	return &EditionHandler{service: service}
}

// Routes returns the routes for editions
func (h *EditionHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(RequireUser)

	r.Get("/", h.ListEditions)
	r.Post("/", h.CreateEdition)
	r.Get("/{editionID}", h.GetEdition)
	r.Patch("/{editionID}", h.UpdateEdition)
	r.Delete("/{editionID}", h.DeleteEdition)

	// Publish workflow
	r.Post("/{editionID}/publish", h.PublishEdition)
	r.Post("/{editionID}/approve", h.ApproveEdition)

	// Export
	r.Post("/{editionID}/export/images", h.ExportImages)

	// Pages
	r.Post("/{editionID}/pages", h.AddPage)
	r.Post("/{editionID}/pages/pdf", h.AddUploadedPage)
	r.Delete("/{editionID}/pages/{pageID}", h.DeletePage)
	r.Post("/{editionID}/pages/{pageID}/duplicate", h.DuplicatePage)
	r.Post("/{editionID}/pages/{pageID}/reorder", h.ReorderPages)
	r.Put("/{editionID}/pages/{pageID}/thumbnail", h.SetPageThumbnail)

	// Sections
	r.Post("/{editionID}/pages/{pageID}/sections", h.AddSection)
	r.Delete("/{editionID}/pages/{pageID}/sections/{sectionID}", h.RemoveSection)

	// Blocks
	r.Post("/{editionID}/pages/{pageID}/sections/{sectionID}/blocks", h.AddBlock)
	r.Patch("/{editionID}/pages/{pageID}/sections/{sectionID}/blocks/{blockID}", h.UpdateBlock)
	r.Delete("/{editionID}/pages/{pageID}/sections/{sectionID}/blocks/{blockID}", h.RemoveBlock)
	r.Post("/{editionID}/pages/{pageID}/sections/{sectionID}/blocks/{blockID}/move", h.MoveBlock)

	return r
}

// PublishResponse carries the new edition state and the user-facing message
type PublishResponse struct {
	Edition *epaper.Edition `json:"edition"`
	Message string          `json:"message"`
}

// ListEditions lists all editions
func (h *EditionHandler) ListEditions(w http.ResponseWriter, r *http.Request) {
	editions, err := h.service.ListEditions(r.Context())
	if err != nil {
		slog.Error("Failed to list editions", "error", err)
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, editions)
}

// CreateEdition creates a new draft edition with one empty page
func (h *EditionHandler) CreateEdition(w http.ResponseWriter, r *http.Request) {
	var req epaper.CreateEditionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	edition, err := h.service.CreateEdition(r.Context(), CurrentUser(r), req)
	if err != nil {
		slog.Error("Failed to create edition", "error", err)
		writeError(w, r, err)
		return
	}

	slog.Info("Edition created", "edition_id", edition.ID, "title", edition.Title)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, edition)
}

// GetEdition retrieves an edition by ID
func (h *EditionHandler) GetEdition(w http.ResponseWriter, r *http.Request) {
	edition, err := h.service.GetEdition(r.Context(), chi.URLParam(r, "editionID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, edition)
}

// UpdateEdition changes edition-level fields (title, language, schedule)
func (h *EditionHandler) UpdateEdition(w http.ResponseWriter, r *http.Request) {
	var req epaper.UpdateEditionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	edition, err := h.service.UpdateEdition(r.Context(), chi.URLParam(r, "editionID"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, edition)
}

// DeleteEdition deletes an edition
func (h *EditionHandler) DeleteEdition(w http.ResponseWriter, r *http.Request) {
	editionID := chi.URLParam(r, "editionID")
	if err := h.service.DeleteEdition(r.Context(), editionID); err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("Edition deleted", "edition_id", editionID)
	w.WriteHeader(http.StatusNoContent)
}

// PublishEdition runs the publish decision for the acting user
func (h *EditionHandler) PublishEdition(w http.ResponseWriter, r *http.Request) {
	editionID := chi.URLParam(r, "editionID")

	// The body is optional; an empty body publishes without touching the
	// schedule. ContentLength is unreliable for chunked requests, so decode
	// and treat EOF as "no body".
	var req epaper.PublishEditionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(w, r, err.Error())
		return
	}

	edition, message, err := h.service.PublishEdition(r.Context(), editionID, CurrentUser(r), req)
	if err != nil {
		slog.Error("Failed to publish edition", "edition_id", editionID, "error", err)
		writeError(w, r, err)
		return
	}

	slog.Info("Edition publish decided", "edition_id", editionID, "status", edition.Status)
	render.JSON(w, r, PublishResponse{Edition: edition, Message: message})
}

// ApproveEdition approves a pending edition (admin only)
func (h *EditionHandler) ApproveEdition(w http.ResponseWriter, r *http.Request) {
	editionID := chi.URLParam(r, "editionID")

	edition, err := h.service.ApproveEdition(r.Context(), editionID, CurrentUser(r))
	if err != nil {
		slog.Error("Failed to approve edition", "edition_id", editionID, "error", err)
		writeError(w, r, err)
		return
	}

	slog.Info("Edition approved", "edition_id", editionID)
	render.JSON(w, r, edition)
}

// ExportImagesResponse lists the asset keys written by an export
type ExportImagesResponse struct {
	Keys []string `json:"keys"`
}

// ExportImages writes every page render of an edition into the asset store
func (h *EditionHandler) ExportImages(w http.ResponseWriter, r *http.Request) {
	editionID := chi.URLParam(r, "editionID")

	keys, err := h.service.ExportEditionImages(r.Context(), editionID)
	if err != nil {
		slog.Error("Failed to export edition images", "edition_id", editionID, "error", err)
		writeError(w, r, err)
		return
	}

	slog.Info("Edition images exported", "edition_id", editionID, "count", len(keys))
	render.JSON(w, r, ExportImagesResponse{Keys: keys})
}

// AddPage appends an empty page to an edition
func (h *EditionHandler) AddPage(w http.ResponseWriter, r *http.Request) {
	edition, _, err := h.service.AddPage(r.Context(), chi.URLParam(r, "editionID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, edition)
}

// AddUploadedPageRequest carries the rendered page image for a PDF import
type AddUploadedPageRequest struct {
	PageImage string `json:"pageImage"`
}

// AddUploadedPage appends a page backed by an uploaded PDF render
func (h *EditionHandler) AddUploadedPage(w http.ResponseWriter, r *http.Request) {
	var req AddUploadedPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if req.PageImage == "" {
		badRequest(w, r, "pageImage is required")
		return
	}

	edition, _, err := h.service.AddUploadedPage(r.Context(), chi.URLParam(r, "editionID"), req.PageImage)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, edition)
}

// DeletePage removes a page and renumbers the remainder
func (h *EditionHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	edition, err := h.service.DeletePage(r.Context(), chi.URLParam(r, "editionID"), chi.URLParam(r, "pageID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, edition)
}

// DuplicatePage deep-copies a page under fresh identifiers
func (h *EditionHandler) DuplicatePage(w http.ResponseWriter, r *http.Request) {
	edition, err := h.service.DuplicatePage(r.Context(), chi.URLParam(r, "editionID"), chi.URLParam(r, "pageID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, edition)
}

// ReorderPages swaps a page with its neighbor
func (h *EditionHandler) ReorderPages(w http.ResponseWriter, r *http.Request) {
	var req epaper.ReorderPagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if !req.Direction.IsValid() {
		badRequest(w, r, "direction must be \"up\" or \"down\"")
		return
	}

	edition, err := h.service.ReorderPages(r.Context(), chi.URLParam(r, "editionID"), chi.URLParam(r, "pageID"), req.Direction)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, edition)
}

// SetPageThumbnailRequest carries the page thumbnail image
type SetPageThumbnailRequest struct {
	Thumbnail string `json:"thumbnail"`
}

// SetPageThumbnail stores the page thumbnail
func (h *EditionHandler) SetPageThumbnail(w http.ResponseWriter, r *http.Request) {
	var req SetPageThumbnailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	edition, err := h.service.SetPageThumbnail(r.Context(), chi.URLParam(r, "editionID"), chi.URLParam(r, "pageID"), req.Thumbnail)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, edition)
}

// AddSection adds a section to a page
func (h *EditionHandler) AddSection(w http.ResponseWriter, r *http.Request) {
	var req epaper.AddSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if req.Type == "" {
		badRequest(w, r, "section type is required")
		return
	}

	edition, err := h.service.AddSection(r.Context(), chi.URLParam(r, "editionID"), chi.URLParam(r, "pageID"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, edition)
}

// RemoveSection removes a section from a page
func (h *EditionHandler) RemoveSection(w http.ResponseWriter, r *http.Request) {
	edition, err := h.service.RemoveSection(r.Context(),
		chi.URLParam(r, "editionID"), chi.URLParam(r, "pageID"), chi.URLParam(r, "sectionID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, edition)
}

// AddBlock appends a block of the requested kind to a section
func (h *EditionHandler) AddBlock(w http.ResponseWriter, r *http.Request) {
	var req epaper.AddBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	edition, err := h.service.AddBlock(r.Context(),
		chi.URLParam(r, "editionID"), chi.URLParam(r, "pageID"), chi.URLParam(r, "sectionID"),
		req.Kind, CurrentUser(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, edition)
}

// UpdateBlock merges a partial update over a block
func (h *EditionHandler) UpdateBlock(w http.ResponseWriter, r *http.Request) {
	var patch epaper.BlockPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	edition, err := h.service.UpdateBlock(r.Context(),
		chi.URLParam(r, "editionID"), chi.URLParam(r, "pageID"), chi.URLParam(r, "sectionID"),
		chi.URLParam(r, "blockID"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, edition)
}

// RemoveBlock removes a block from its section
func (h *EditionHandler) RemoveBlock(w http.ResponseWriter, r *http.Request) {
	edition, err := h.service.RemoveBlock(r.Context(),
		chi.URLParam(r, "editionID"), chi.URLParam(r, "pageID"), chi.URLParam(r, "sectionID"),
		chi.URLParam(r, "blockID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, edition)
}

// MoveBlock moves a block one position within its section
func (h *EditionHandler) MoveBlock(w http.ResponseWriter, r *http.Request) {
	var req epaper.MoveBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if !req.Direction.IsValid() {
		badRequest(w, r, "direction must be \"up\" or \"down\"")
		return
	}

	edition, err := h.service.MoveBlock(r.Context(),
		chi.URLParam(r, "editionID"), chi.URLParam(r, "pageID"), chi.URLParam(r, "sectionID"),
		chi.URLParam(r, "blockID"), req.Direction)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, edition)
}
