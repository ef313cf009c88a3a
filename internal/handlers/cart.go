package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/yuva-embroidery/storefront/internal/models"
	"github.com/yuva-embroidery/storefront/internal/storefront"
	"github.com/yuva-embroidery/storefront/internal/view"
)

type cartResponse struct {
	Cart  view.Model     `json:"cart"`
	Badge view.CartBadge `json:"badge"`
}

func (h *Handler) cartResponse() cartResponse {
	return cartResponse{Cart: h.page.View(), Badge: h.page.Badge()}
}

func (h *Handler) HandleCart(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.cartResponse())
}

// HandleAddItem accepts either {"product_id": N} for a catalog product or a
// full item.
func (h *Handler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ProductID *int `json:"product_id"`
		models.Item
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if request.ProductID != nil {
		if _, ok := h.page.AddProduct(r.Context(), *request.ProductID); !ok {
			h.writeError(w, "Product not found", http.StatusNotFound)
			return
		}
		h.writeJSON(w, h.cartResponse())
		return
	}

	if request.Name == "" {
		h.writeError(w, "name or product_id is required", http.StatusBadRequest)
		return
	}
	h.page.AddToCart(r.Context(), request.Item)
	h.writeJSON(w, h.cartResponse())
}

func (h *Handler) HandleAddFromDetail(w http.ResponseWriter, r *http.Request) {
	var sel storefront.DetailSelection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	h.page.AddFromDetail(r.Context(), sel)
	h.writeJSON(w, h.cartResponse())
}

// HandleRemoveItem removes by id and the optional size query parameter.
func (h *Handler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, "Invalid item id", http.StatusBadRequest)
		return
	}
	h.page.RemoveFromCart(r.Context(), models.LineKey{ID: id, Size: r.URL.Query().Get("size")})
	h.writeJSON(w, h.cartResponse())
}

func (h *Handler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	proceeded := h.page.Checkout()
	h.writeJSON(w, map[string]any{
		"proceeded": proceeded,
	})
}
