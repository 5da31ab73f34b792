package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/services"
)

type EventHandler struct {
	Service *services.EventService
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var e models.Event
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if e.Title == "" || e.Amount <= 0 {
		http.Error(w, "Missing title or invalid amount", http.StatusBadRequest)
		return
	}
	e.CreatedBy = contextUserID(r)

	created, err := h.Service.CreateEvent(r.Context(), e)
	if err != nil {
		log.Printf("CreateEvent error: %v", err)
		http.Error(w, "Failed to create event", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	e, err := h.Service.GetEventByID(r.Context(), getParam(r, "id"))
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		log.Printf("GetEvent error: %v", err)
		http.Error(w, "Failed to get event", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Service.GetEvents(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		log.Printf("GetEvents error: %v", err)
		http.Error(w, "Failed to get events", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var e models.Event
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	e.ID = getParam(r, "id")
	if e.ID == "" {
		http.Error(w, "Invalid event id", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateEvent(r.Context(), e); err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		log.Printf("UpdateEvent error: %v", err)
		http.Error(w, "Failed to update event", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteEvent(r.Context(), getParam(r, "id")); err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		log.Printf("DeleteEvent error: %v", err)
		http.Error(w, "Failed to delete event", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignToRollSeries fans an event out as dues to every student whose roll
// number starts with the given series. Students already holding a due for
// the event are skipped.
func (h *EventHandler) AssignToRollSeries(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RollSeries string `json:"roll_series"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RollSeries == "" {
		http.Error(w, "Missing roll_series", http.StatusBadRequest)
		return
	}

	assigned, err := h.Service.AssignToRollSeries(r.Context(), getParam(r, "id"), req.RollSeries)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		log.Printf("AssignToRollSeries error: %v", err)
		http.Error(w, "Failed to assign event", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"assigned": assigned})
}
