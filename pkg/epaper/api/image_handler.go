package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/vincent-petithory/dataurl"

	"github.com/presslayer/epaper-studio/pkg/epaper"
	"github.com/presslayer/epaper-studio/pkg/epaper/imaging"
)

const (
	defaultCompressMaxWidth = 800
	defaultCompressQuality  = 70
	maxUploadBytes          = 20 << 20 // 20 MiB
)

// ImageHandler handles image compression, placeholder generation and stored
// asset retrieval
type ImageHandler struct {
	assets epaper.AssetStore
}

// NewImageHandler creates a new image handler
func NewImageHandler(assets epaper.AssetStore) *ImageHandler {
	return &ImageHandler{assets: assets}
}

// Routes returns the routes for images and assets
func (h *ImageHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(RequireUser)

	r.Post("/compress", h.CompressImage)
	r.Get("/placeholder", h.Placeholder)
	r.Get("/assets/*", h.DownloadAsset)

	return r
}

// CompressImageResponse carries the compressed image as a data URL
type CompressImageResponse struct {
	DataURL  string `json:"dataUrl"`
	AssetKey string `json:"assetKey,omitempty"`
}

// CompressImage accepts a multipart image upload and returns it as a
// width-capped JPEG data URL. Form fields maxWidth and quality override the
// defaults.
func (h *ImageHandler) CompressImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		badRequest(w, r, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		badRequest(w, r, "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}

	maxWidth := formInt(r, "maxWidth", defaultCompressMaxWidth)
	quality := formInt(r, "quality", defaultCompressQuality)

	dataURL, err := imaging.Compress(data, maxWidth, quality)
	if err != nil {
		slog.Error("Failed to compress image", "file", header.Filename, "error", err)
		badRequest(w, r, err.Error())
		return
	}

	resp := CompressImageResponse{DataURL: dataURL}
	if h.assets != nil {
		key := fmt.Sprintf("compressed/%d-%s", time.Now().UnixNano(), header.Filename)
		if du, err := dataurl.DecodeString(dataURL); err == nil {
			if err := h.assets.UploadWithParams(r.Context(), strings.NewReader(string(du.Data)), epaper.UploadParams{
				Key:      key,
				MimeType: du.ContentType(),
			}); err == nil {
				resp.AssetKey = key
			}
		}
	}

	slog.Info("Image compressed", "file", header.Filename, "max_width", maxWidth, "quality", quality)
	render.JSON(w, r, resp)
}

// PlaceholderResponse carries the generated placeholder as a data URL
type PlaceholderResponse struct {
	DataURL string `json:"dataUrl"`
}

// Placeholder renders a labeled placeholder image, standing in for camera
// capture. Query parameters: width, height, label.
func (h *ImageHandler) Placeholder(w http.ResponseWriter, r *http.Request) {
	width := queryInt(r, "width", 400)
	height := queryInt(r, "height", 300)
	label := r.URL.Query().Get("label")
	if label == "" {
		label = "Captured Image"
	}

	dataURL, err := imaging.Placeholder(width, height, label)
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}

	render.JSON(w, r, PlaceholderResponse{DataURL: dataURL})
}

// DownloadAsset streams a stored asset by key
func (h *ImageHandler) DownloadAsset(w http.ResponseWriter, r *http.Request) {
	if h.assets == nil {
		writeError(w, r, epaper.ErrNoAssetStore)
		return
	}
	key := chi.URLParam(r, "*")
	if key == "" {
		badRequest(w, r, "asset key is required")
		return
	}

	meta, err := h.assets.GetAssetMeta(r.Context(), key)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reader, err := h.assets.Download(r.Context(), key)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", meta.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(meta.Size, 10))
	if _, err := io.Copy(w, reader); err != nil {
		slog.Error("Failed to stream asset", "key", key, "error", err)
	}
}

func formInt(r *http.Request, name string, fallback int) int {
	v := r.FormValue(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
