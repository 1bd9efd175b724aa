package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

// RouterConfig carries the dependencies and toggles for the HTTP router
type RouterConfig struct {
	Service     epaper.Service
	Assets      epaper.AssetStore
	Environment string
}

// NewRouter assembles the full HTTP API under /api/v1
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS for development
	if cfg.Environment == "development" {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Access-Control-Allow-Origin", "*")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

				if r.Method == "OPTIONS" {
					w.WriteHeader(http.StatusOK)
					return
				}

				next.ServeHTTP(w, r)
			})
		})
	}

	r.Get("/health", handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", NewAuthHandler(cfg.Service).Routes())
		r.Mount("/editions", NewEditionHandler(cfg.Service).Routes())
		r.Mount("/generate", NewGenerateHandler(cfg.Service).Routes())
		r.Mount("/images", NewImageHandler(cfg.Assets).Routes())
		r.Mount("/options", NewOptionsHandler().Routes())
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok", "service": "epaper-studio"})
}
