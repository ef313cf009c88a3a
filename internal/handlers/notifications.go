package handlers

import (
	"net/http"

	"github.com/yuva-embroidery/storefront/internal/notify"
)

func (h *Handler) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	active := h.page.Notifications()
	if active == nil {
		active = []notify.Notification{}
	}
	h.writeJSON(w, active)
}

// Account forms are placeholders until authentication exists.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	h.page.Login()
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	h.page.Register()
	w.WriteHeader(http.StatusAccepted)
}
