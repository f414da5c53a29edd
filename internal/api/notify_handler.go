package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/memberhub/backend/internal/notify"
)

type NotifyHandler struct {
	notifier notify.Notifier
}

func NewNotifyHandler(notifier notify.Notifier) *NotifyHandler {
	return &NotifyHandler{notifier: notifier}
}

type NotifyRequest struct {
	Content string `json:"content"`
}

// HandleNotify relays free text to the chat channel. Unlike the webhook path,
// the notifier outcome is the whole point here, so its error surfaces.
func (h *NotifyHandler) HandleNotify(w http.ResponseWriter, r *http.Request) {
	var req NotifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Content == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	if err := h.notifier.Send(r.Context(), req.Content); err != nil {
		log.Printf("Failed to send notification: %v", err)
		http.Error(w, "Failed to send notification", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]bool{"ok": true})
}
