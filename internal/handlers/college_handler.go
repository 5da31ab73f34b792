package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/services"
)

type CollegeHandler struct {
	Service *services.CollegeService
}

func (h *CollegeHandler) GetCollegeInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.Service.GetCollegeInfo(r.Context())
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			http.Error(w, "College info not set", http.StatusNotFound)
			return
		}
		log.Printf("GetCollegeInfo error: %v", err)
		http.Error(w, "Failed to get college info", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}

func (h *CollegeHandler) SaveCollegeInfo(w http.ResponseWriter, r *http.Request) {
	var info models.CollegeInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if info.Name == "" {
		http.Error(w, "Missing name", http.StatusBadRequest)
		return
	}

	if err := h.Service.SaveCollegeInfo(r.Context(), info); err != nil {
		log.Printf("SaveCollegeInfo error: %v", err)
		http.Error(w, "Failed to save college info", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
