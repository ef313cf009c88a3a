package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/yuva-embroidery/storefront/internal/view"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Yuva Embroidery</title>
</head>
<body data-collection="{{.Collection}}">
  <span id="cartCount"{{if not .Badge.Visible}} style="display: none"{{end}}>{{index .Slots "cartCount"}}</span>
  <div id="featuredProducts" class="row">{{index .Slots "featuredProducts"}}</div>
  <div id="cartItems">{{index .Slots "cartItems"}}</div>
  <div>Total: <span id="cartTotal">{{index .Slots "cartTotal"}}</span></div>
  <button id="checkoutBtn"{{if not .Checkout}} disabled{{end}}>Checkout</button>
  <div id="searchResults"></div>
</body>
</html>
`))

// HandleIndex renders the page with every slot filled. The optional
// collection query parameter is forwarded to the collection hook.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if collection := r.URL.Query().Get("collection"); collection != "" {
		h.page.ApplyCollection(collection)
	}

	slots, err := h.page.Slots()
	if err != nil {
		h.writeError(w, "Failed to render page: "+err.Error(), http.StatusInternalServerError)
		return
	}

	data := struct {
		Slots      view.Slots
		Badge      view.CartBadge
		Checkout   bool
		Collection string
	}{
		Slots:      slots,
		Badge:      h.page.Badge(),
		Checkout:   h.page.View().CheckoutEnabled,
		Collection: h.page.Collection(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		slog.Error("Unable to render index", "err", err)
	}
}
