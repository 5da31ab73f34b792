package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/services"
)

type StudentHandler struct {
	Service *services.StudentService
	Dues    *services.DueService
}

func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var st models.Student
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if st.Name == "" || st.RollNo == "" || st.Password == "" {
		http.Error(w, "Missing name, roll_no or password", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateStudent(r.Context(), st)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateRollNo) || errors.Is(err, models.ErrDuplicateEmail) {
			http.Error(w, "Student already exists", http.StatusConflict)
			return
		}
		log.Printf("CreateStudent error: %v", err)
		http.Error(w, "Failed to create student", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	st, err := h.Service.GetStudentByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrStudentNotFound) {
			http.Error(w, "Student not found", http.StatusNotFound)
			return
		}
		log.Printf("GetStudent error: %v", err)
		http.Error(w, "Failed to get student", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(st)
}

// GetProfile returns the authenticated student's own record.
func (h *StudentHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	st, err := h.Service.GetStudentByID(r.Context(), contextUserID(r))
	if err != nil {
		if errors.Is(err, models.ErrStudentNotFound) {
			http.Error(w, "Student not found", http.StatusNotFound)
			return
		}
		log.Printf("GetProfile error: %v", err)
		http.Error(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(st)
}

func (h *StudentHandler) GetStudentByRollNo(w http.ResponseWriter, r *http.Request) {
	st, err := h.Service.GetStudentByRollNo(r.Context(), getParam(r, "roll_no"))
	if err != nil {
		if errors.Is(err, models.ErrStudentNotFound) {
			http.Error(w, "Student not found", http.StatusNotFound)
			return
		}
		log.Printf("GetStudentByRollNo error: %v", err)
		http.Error(w, "Failed to get student", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(st)
}

func (h *StudentHandler) GetStudents(w http.ResponseWriter, r *http.Request) {
	rollSeries := r.URL.Query().Get("roll_series")
	students, err := h.Service.GetStudents(r.Context(), rollSeries)
	if err != nil {
		log.Printf("GetStudents error: %v", err)
		http.Error(w, "Failed to get students", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(students)
}

func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	var st models.Student
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	st.ID = getParam(r, "id")
	if st.ID == "" {
		http.Error(w, "Invalid student id", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateStudent(r.Context(), st); err != nil {
		if errors.Is(err, models.ErrStudentNotFound) {
			http.Error(w, "Student not found", http.StatusNotFound)
			return
		}
		log.Printf("UpdateStudent error: %v", err)
		http.Error(w, "Failed to update student", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if err := h.Service.DeleteStudent(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrStudentNotFound) {
			http.Error(w, "Student not found", http.StatusNotFound)
			return
		}
		log.Printf("DeleteStudent error: %v", err)
		http.Error(w, "Failed to delete student", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetDueSummary returns pending/paid counts and totals for the
// authenticated student's dashboard.
func (h *StudentHandler) GetDueSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Dues.GetSummaryByStudent(r.Context(), contextUserID(r))
	if err != nil {
		log.Printf("GetDueSummary error: %v", err)
		http.Error(w, "Failed to get summary", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
