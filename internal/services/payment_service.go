package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/razorpay"
)

// DueStore is the slice of DueRepository the payment flow reads.
type DueStore interface {
	GetDueByID(ctx context.Context, id string) (models.Due, error)
}

// PaymentStore is the slice of PaymentRepository the payment flow needs.
type PaymentStore interface {
	CreatePayment(ctx context.Context, p models.Payment) error
	GetPaymentByID(ctx context.Context, id string) (models.Payment, error)
	MarkSettled(ctx context.Context, paymentID, razorpayPaymentID, dueID string) error
}

// OrderGateway is implemented by *razorpay.Client.
type OrderGateway interface {
	CreateOrder(ctx context.Context, req razorpay.CreateOrderRequest) (razorpay.Order, error)
	KeyID() string
	Secret() string
}

// DueLocker serializes order initiation per due so a double-click cannot
// open two gateway orders for the same due.
type DueLocker interface {
	Acquire(ctx context.Context, dueID string) (bool, error)
	Release(ctx context.Context, dueID string)
}

// PaymentNotifier receives a best-effort signal after a verified settlement.
type PaymentNotifier interface {
	PaymentVerified(ctx context.Context, studentID, dueTitle string, amount float64)
}

type PaymentService struct {
	Dues     DueStore
	Payments PaymentStore
	Gateway  OrderGateway
	Locker   DueLocker
	Notifier PaymentNotifier
	Currency string
	ErrorLog *log.Logger
}

// VerifyPaymentRequest is the checkout callback payload plus the internal
// record identifiers. Fields mirror what the Razorpay widget hands back.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	PaymentID         string `json:"payment_id"`
	AssignmentID      string `json:"assignment_id"`
}

// InitiateOrder opens a gateway order for an unpaid due and records a
// pending payment. The gateway is called before anything is persisted, so a
// gateway failure leaves no local state and the call is safe to retry.
func (s *PaymentService) InitiateOrder(ctx context.Context, dueID, studentID string) (models.CheckoutDetails, error) {
	if s.Locker != nil {
		ok, err := s.Locker.Acquire(ctx, dueID)
		if err != nil {
			return models.CheckoutDetails{}, fmt.Errorf("acquire due lock: %w", err)
		}
		if !ok {
			return models.CheckoutDetails{}, models.ErrDueLocked
		}
		defer s.Locker.Release(ctx, dueID)
	}

	due, err := s.Dues.GetDueByID(ctx, dueID)
	if err != nil {
		return models.CheckoutDetails{}, err
	}
	// A due can only be paid by its owner; foreign ids look like not-found.
	if due.StudentID != studentID {
		return models.CheckoutDetails{}, models.ErrDueNotFound
	}
	if due.Paid {
		return models.CheckoutDetails{}, models.ErrDueAlreadyPaid
	}

	eventType := due.EventType
	if eventType == "" {
		eventType = "general"
	}
	eventTitle := due.EventTitle
	if eventTitle == "" {
		eventTitle = "Payment"
	}

	order, err := s.Gateway.CreateOrder(ctx, razorpay.CreateOrderRequest{
		Amount:   razorpay.ToPaise(due.Amount),
		Currency: s.Currency,
		Receipt:  razorpay.Receipt(due.ID, time.Now()),
		Notes: map[string]string{
			"assignment_id": due.ID,
			"student_id":    studentID,
			"event_type":    eventType,
			"event_title":   eventTitle,
		},
	})
	if err != nil {
		return models.CheckoutDetails{}, err
	}

	payment := models.Payment{
		ID:              uuid.NewString(),
		StudentID:       studentID,
		AssignmentID:    due.ID,
		EventID:         due.EventID,
		Amount:          due.Amount,
		Currency:        s.Currency,
		RazorpayOrderID: order.ID,
		Status:          models.PaymentStatusPending,
	}
	if err := s.Payments.CreatePayment(ctx, payment); err != nil {
		// The gateway order exists with no local record. It cannot settle
		// anything without passing verification, but it needs reconciling.
		if s.ErrorLog != nil {
			s.ErrorLog.Printf("orphaned gateway order %s for due %s: %v", order.ID, due.ID, err)
		}
		return models.CheckoutDetails{}, fmt.Errorf("%w: payment insert after order %s: %v",
			models.ErrPersistenceInconsistency, order.ID, err)
	}

	return models.CheckoutDetails{
		OrderID:   order.ID,
		Amount:    due.Amount,
		Currency:  s.Currency,
		KeyID:     s.Gateway.KeyID(),
		PaymentID: payment.ID,
	}, nil
}

// VerifyPayment authenticates a checkout callback and, only on a verified
// signature, settles the payment and its due in one transaction. Replaying
// a valid callback for an already-settled payment is a no-op that still
// acknowledges success.
func (s *PaymentService) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) error {
	if !razorpay.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, s.Gateway.Secret()) {
		if s.ErrorLog != nil {
			s.ErrorLog.Printf("payment signature rejected for order %s, payment record %s", req.RazorpayOrderID, req.PaymentID)
		}
		return models.ErrInvalidSignature
	}

	payment, err := s.Payments.GetPaymentByID(ctx, req.PaymentID)
	if err != nil {
		return err
	}
	// The callback must reference the order and due this record was opened
	// for; anything else is treated as a failed verification.
	if payment.RazorpayOrderID != req.RazorpayOrderID || payment.AssignmentID != req.AssignmentID {
		if s.ErrorLog != nil {
			s.ErrorLog.Printf("payment record %s does not match callback order %s / due %s",
				payment.ID, req.RazorpayOrderID, req.AssignmentID)
		}
		return models.ErrInvalidSignature
	}

	if payment.Status == models.PaymentStatusCompleted {
		return nil
	}

	if err := s.Payments.MarkSettled(ctx, payment.ID, req.RazorpayPaymentID, payment.AssignmentID); err != nil {
		if s.ErrorLog != nil {
			s.ErrorLog.Printf("settlement failed for payment %s, due %s: %v", payment.ID, payment.AssignmentID, err)
		}
		return err
	}

	if s.Notifier != nil {
		s.Notifier.PaymentVerified(ctx, payment.StudentID, req.AssignmentID, payment.Amount)
	}
	return nil
}
