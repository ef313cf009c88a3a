package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/yuva-embroidery/storefront/internal/zoom"
)

type zoomRequest struct {
	Image    zoom.Size  `json:"image"`
	Lens     zoom.Size  `json:"lens"`
	Viewport zoom.Size  `json:"viewport"`
	Cursor   zoom.Point `json:"cursor"`
	Factor   float64    `json:"factor,omitempty"`
}

// HandleZoom maps an image-local cursor to lens and background placement.
func (h *Handler) HandleZoom(w http.ResponseWriter, r *http.Request) {
	var req zoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Lens.Width <= 0 || req.Lens.Height <= 0 {
		h.writeError(w, "lens width and height must be positive", http.StatusBadRequest)
		return
	}
	if req.Factor <= 0 {
		req.Factor = h.zoomFactor
	}

	frame := zoom.Compute(zoom.Geometry{
		Image:    req.Image,
		Lens:     req.Lens,
		Viewport: req.Viewport,
		Factor:   req.Factor,
	}, req.Cursor)

	h.writeJSON(w, map[string]any{
		"frame":               frame,
		"background_position": zoom.PositionCSS(frame.BackgroundPosition),
		"background_size":     zoom.SizeCSS(frame.BackgroundSize),
	})
}
