package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/services"
)

type ComplaintHandler struct {
	Service *services.ComplaintService
}

func (h *ComplaintHandler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	var c models.Complaint
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if c.Subject == "" || c.Message == "" {
		http.Error(w, "Missing subject or message", http.StatusBadRequest)
		return
	}
	c.StudentID = contextUserID(r)

	created, err := h.Service.CreateComplaint(r.Context(), c)
	if err != nil {
		log.Printf("CreateComplaint error: %v", err)
		http.Error(w, "Failed to create complaint", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ComplaintHandler) GetMyComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.Service.GetComplaintsByStudent(r.Context(), contextUserID(r))
	if err != nil {
		log.Printf("GetMyComplaints error: %v", err)
		http.Error(w, "Failed to get complaints", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(complaints)
}

func (h *ComplaintHandler) GetAllComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.Service.GetAllComplaints(r.Context())
	if err != nil {
		log.Printf("GetAllComplaints error: %v", err)
		http.Error(w, "Failed to get complaints", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(complaints)
}

// Resolve closes a complaint. A positive fine creates a due against the
// student, for example when the complaint turns out to be damage liability.
func (h *ComplaintHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID   string  `json:"student_id"`
		Description string  `json:"description"`
		Fine        float64 `json:"fine"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	err := h.Service.Resolve(r.Context(), getParam(r, "id"), req.StudentID, req.Description, req.Fine)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			http.Error(w, "Complaint not found", http.StatusNotFound)
			return
		}
		log.Printf("Resolve error: %v", err)
		http.Error(w, "Failed to resolve complaint", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ComplaintHandler) DeleteComplaint(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteComplaintByID(r.Context(), getParam(r, "id")); err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			http.Error(w, "Complaint not found", http.StatusNotFound)
			return
		}
		log.Printf("DeleteComplaint error: %v", err)
		http.Error(w, "Failed to delete complaint", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
