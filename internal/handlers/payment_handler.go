package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/razorpay"
	"github.com/dinakar-24/sse-pay/internal/repositories"
	"github.com/dinakar-24/sse-pay/internal/services"
)

type PaymentHandler struct {
	Service     *services.PaymentService
	PaymentRepo *repositories.PaymentRepository
}

func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AssignmentID string `json:"assignment_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if req.AssignmentID == "" {
		http.Error(w, "assignment_id is required", http.StatusBadRequest)
		return
	}

	studentID := contextUserID(r)
	checkout, err := h.Service.InitiateOrder(r.Context(), req.AssignmentID, studentID)
	if err != nil {
		log.Printf("CreateOrder error: %v", err)
		http.Error(w, orderErrorMessage(err), orderErrorStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(checkout)
}

func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req services.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" ||
		req.PaymentID == "" || req.AssignmentID == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	if err := h.Service.VerifyPayment(r.Context(), req); err != nil {
		log.Printf("VerifyPayment error: %v", err)
		switch {
		case errors.Is(err, models.ErrInvalidSignature):
			// Deliberately generic; detail would help forgers.
			http.Error(w, "Payment could not be verified", http.StatusBadRequest)
		case errors.Is(err, models.ErrPaymentNotFound), errors.Is(err, models.ErrDueNotFound):
			http.Error(w, "Payment record not found", http.StatusNotFound)
		default:
			http.Error(w, "Failed to verify payment", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"message": "Payment verified successfully",
	})
}

// GetHistory lists the authenticated student's payment attempts.
func (h *PaymentHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	payments, err := h.PaymentRepo.GetPaymentsByStudent(r.Context(), contextUserID(r))
	if err != nil {
		log.Printf("GetHistory error: %v", err)
		http.Error(w, "Failed to get payment history", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payments)
}

// GetEventReport lists payments collected against one charge event.
func (h *PaymentHandler) GetEventReport(w http.ResponseWriter, r *http.Request) {
	eventID := getParam(r, "event_id")
	if eventID == "" {
		http.Error(w, "Invalid event_id", http.StatusBadRequest)
		return
	}
	payments, err := h.PaymentRepo.GetPaymentsByEvent(r.Context(), eventID)
	if err != nil {
		log.Printf("GetEventReport error: %v", err)
		http.Error(w, "Failed to get payments", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payments)
}

func orderErrorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrDueNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDueAlreadyPaid), errors.Is(err, models.ErrDueLocked):
		return http.StatusConflict
	case errors.Is(err, models.ErrPersistenceInconsistency):
		return http.StatusInternalServerError
	}
	var apiErr *razorpay.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	}
	return http.StatusBadGateway
}

func orderErrorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrDueNotFound):
		return "Due not found"
	case errors.Is(err, models.ErrDueAlreadyPaid):
		return "Due already paid"
	case errors.Is(err, models.ErrDueLocked):
		return "A payment for this due is already in progress"
	case errors.Is(err, models.ErrPersistenceInconsistency):
		return "Failed to record payment"
	}
	return "Failed to create payment order"
}
