package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/services"
)

type DueHandler struct {
	Service *services.DueService
}

func (h *DueHandler) CreateDue(w http.ResponseWriter, r *http.Request) {
	var d models.Due
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if d.StudentID == "" || d.Amount <= 0 {
		http.Error(w, "Missing student_id or invalid amount", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateDue(r.Context(), d)
	if err != nil {
		log.Printf("CreateDue error: %v", err)
		http.Error(w, "Failed to create due", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *DueHandler) GetDue(w http.ResponseWriter, r *http.Request) {
	d, err := h.Service.GetDueByID(r.Context(), getParam(r, "id"))
	if err != nil {
		if errors.Is(err, models.ErrDueNotFound) {
			http.Error(w, "Due not found", http.StatusNotFound)
			return
		}
		log.Printf("GetDue error: %v", err)
		http.Error(w, "Failed to get due", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

// GetMyDues lists the authenticated student's dues, optionally filtered
// by ?paid=true|false.
func (h *DueHandler) GetMyDues(w http.ResponseWriter, r *http.Request) {
	var paid *bool
	switch r.URL.Query().Get("paid") {
	case "true":
		v := true
		paid = &v
	case "false":
		v := false
		paid = &v
	}

	dues, err := h.Service.GetDuesByStudent(r.Context(), contextUserID(r), paid)
	if err != nil {
		log.Printf("GetMyDues error: %v", err)
		http.Error(w, "Failed to get dues", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dues)
}

func (h *DueHandler) GetDuesByStudent(w http.ResponseWriter, r *http.Request) {
	dues, err := h.Service.GetDuesByStudent(r.Context(), getParam(r, "id"), nil)
	if err != nil {
		log.Printf("GetDuesByStudent error: %v", err)
		http.Error(w, "Failed to get dues", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dues)
}

func (h *DueHandler) GetDuesByEvent(w http.ResponseWriter, r *http.Request) {
	dues, err := h.Service.GetDuesByEvent(r.Context(), getParam(r, "id"))
	if err != nil {
		log.Printf("GetDuesByEvent error: %v", err)
		http.Error(w, "Failed to get dues", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dues)
}
