package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/yuva-embroidery/storefront/internal/carousel"
	"github.com/yuva-embroidery/storefront/internal/storefront"
	"github.com/yuva-embroidery/storefront/internal/zoom"
)

type Handler struct {
	page       *storefront.Page
	slides     *carousel.Slides
	zoomFactor float64
}

type Option func(*Handler)

// WithSlides exposes a server-side carousel at /api/carousel.
func WithSlides(s *carousel.Slides) Option {
	return func(h *Handler) { h.slides = s }
}

func WithZoomFactor(f float64) Option {
	return func(h *Handler) { h.zoomFactor = f }
}

func New(page *storefront.Page, opts ...Option) *Handler {
	h := &Handler{
		page:       page,
		zoomFactor: zoom.DefaultFactor,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes wires every endpoint.
func (h *Handler) Routes() http.Handler {
	r := mux.NewRouter()
	notAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.MethodNotAllowedHandler = notAllowed

	// Subrouters report method mismatches through their own handler.
	api := r.PathPrefix("/api").Subrouter()
	api.MethodNotAllowedHandler = notAllowed
	api.HandleFunc("/cart", h.HandleCart).Methods(http.MethodGet)
	api.HandleFunc("/cart/items", h.HandleAddItem).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{id:-?[0-9]+}", h.HandleRemoveItem).Methods(http.MethodDelete)
	api.HandleFunc("/cart/detail", h.HandleAddFromDetail).Methods(http.MethodPost)
	api.HandleFunc("/checkout", h.HandleCheckout).Methods(http.MethodPost)
	api.HandleFunc("/search", h.HandleSearch).Methods(http.MethodGet)
	api.HandleFunc("/products/featured", h.HandleFeatured).Methods(http.MethodGet)
	api.HandleFunc("/notifications", h.HandleNotifications).Methods(http.MethodGet)
	api.HandleFunc("/login", h.HandleLogin).Methods(http.MethodPost)
	api.HandleFunc("/register", h.HandleRegister).Methods(http.MethodPost)
	api.HandleFunc("/carousel", h.HandleCarousel).Methods(http.MethodGet)
	api.HandleFunc("/zoom", h.HandleZoom).Methods(http.MethodPost)

	r.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})
	r.HandleFunc("/", h.HandleIndex).Methods(http.MethodGet)

	return r
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	if code >= http.StatusInternalServerError {
		slog.Error(message, "status", code)
	} else {
		slog.Warn(message, "status", code)
	}
	http.Error(w, message, code)
}
