package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/repositories"
)

type AdminHandler struct {
	AdminRepo *repositories.AdminRepository
}

func (h *AdminHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var a models.Admin
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if a.FullName == "" || a.Email == "" || a.Password == "" {
		http.Error(w, "Missing full_name, email or password", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("CreateAdmin error: %v", err)
		http.Error(w, "Failed to create admin", http.StatusInternalServerError)
		return
	}
	a.ID = uuid.NewString()
	a.Password = ""
	if a.Role == "" {
		a.Role = models.UserTypeAdmin
	}

	if err := h.AdminRepo.CreateAdmin(r.Context(), a, string(hash)); err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			http.Error(w, "Admin already exists", http.StatusConflict)
			return
		}
		log.Printf("CreateAdmin error: %v", err)
		http.Error(w, "Failed to create admin", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

func (h *AdminHandler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.AdminRepo.GetAdmins(r.Context())
	if err != nil {
		log.Printf("GetAdmins error: %v", err)
		http.Error(w, "Failed to get admins", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(admins)
}

func (h *AdminHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	a, err := h.AdminRepo.GetAdminByID(r.Context(), getParam(r, "id"))
	if err != nil {
		if errors.Is(err, models.ErrAdminNotFound) {
			http.Error(w, "Admin not found", http.StatusNotFound)
			return
		}
		log.Printf("GetAdmin error: %v", err)
		http.Error(w, "Failed to get admin", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}
