package handlers

import (
	"net/http"
)

// HandleSearch returns matching products and the rendered results slot.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	slot, err := h.page.SearchSlot(query)
	if err != nil {
		h.writeError(w, "Failed to render search results: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, map[string]any{
		"query":    query,
		"products": h.page.Search(query),
		"html":     string(slot),
	})
}

func (h *Handler) HandleFeatured(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.page.Featured())
}

// HandleCarousel reports the current slide. A missing carousel reports
// present=false rather than an error.
func (h *Handler) HandleCarousel(w http.ResponseWriter, r *http.Request) {
	if h.slides == nil {
		h.writeJSON(w, map[string]any{"present": false})
		return
	}
	index, slide, ok := h.slides.Current()
	h.writeJSON(w, map[string]any{
		"present": ok,
		"index":   index,
		"slide":   slide,
		"count":   h.slides.Len(),
	})
}
