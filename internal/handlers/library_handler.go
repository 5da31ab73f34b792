package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/services"
)

type LibraryHandler struct {
	Service *services.LibraryService
}

func (h *LibraryHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var b models.LibraryBook
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if b.Title == "" {
		http.Error(w, "Missing title", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateBook(r.Context(), b)
	if err != nil {
		log.Printf("CreateBook error: %v", err)
		http.Error(w, "Failed to create book", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *LibraryHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.Service.GetBooks(r.Context(), r.URL.Query().Get("student_id"))
	if err != nil {
		log.Printf("GetBooks error: %v", err)
		http.Error(w, "Failed to get books", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(books)
}

// GetMyBooks lists the books currently assigned to the authenticated student.
func (h *LibraryHandler) GetMyBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.Service.GetBooks(r.Context(), contextUserID(r))
	if err != nil {
		log.Printf("GetMyBooks error: %v", err)
		http.Error(w, "Failed to get books", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(books)
}

func (h *LibraryHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	var b models.LibraryBook
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	b.ID = getParam(r, "id")
	if b.ID == "" {
		http.Error(w, "Invalid book id", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateBook(r.Context(), b); err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			http.Error(w, "Book not found", http.StatusNotFound)
			return
		}
		log.Printf("UpdateBook error: %v", err)
		http.Error(w, "Failed to update book", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LibraryHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteBook(r.Context(), getParam(r, "id")); err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			http.Error(w, "Book not found", http.StatusNotFound)
			return
		}
		log.Printf("DeleteBook error: %v", err)
		http.Error(w, "Failed to delete book", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ChargeOverdueFine creates a due for the book's fine against the student
// it is assigned to.
func (h *LibraryHandler) ChargeOverdueFine(w http.ResponseWriter, r *http.Request) {
	due, err := h.Service.ChargeOverdueFine(r.Context(), getParam(r, "id"))
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			http.Error(w, "Book not found", http.StatusNotFound)
			return
		}
		log.Printf("ChargeOverdueFine error: %v", err)
		http.Error(w, "Failed to charge fine", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(due)
}
