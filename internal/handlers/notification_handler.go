package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/dinakar-24/sse-pay/internal/services"
)

type NotificationHandler struct {
	Service *services.NotificationService
}

func (h *NotificationHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		http.Error(w, "Missing token", http.StatusBadRequest)
		return
	}

	if err := h.Service.RegisterToken(r.Context(), contextUserID(r), req.Token); err != nil {
		log.Printf("RegisterToken error: %v", err)
		http.Error(w, "Failed to register token", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) RemoveToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		http.Error(w, "Missing token", http.StatusBadRequest)
		return
	}

	if err := h.Service.RemoveToken(r.Context(), contextUserID(r), req.Token); err != nil {
		log.Printf("RemoveToken error: %v", err)
		http.Error(w, "Failed to remove token", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
