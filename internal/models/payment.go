package models

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment is one attempt to settle a Due through Razorpay. Status moves
// pending->completed on verification or pending->failed via the sweeper;
// completed never transitions again.
type Payment struct {
	ID                string    `json:"id"`
	StudentID         string    `json:"student_id"`
	AssignmentID      string    `json:"assignment_id"`
	EventID           string    `json:"event_id,omitempty"`
	Amount            float64   `json:"amount"`
	Currency          string    `json:"currency"`
	RazorpayOrderID   string    `json:"razorpay_order_id"`
	RazorpayPaymentID string    `json:"razorpay_payment_id,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// CheckoutDetails is what the client-side checkout widget needs to open the
// gateway UI for an initiated order.
type CheckoutDetails struct {
	OrderID   string  `json:"order_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	KeyID     string  `json:"key_id"`
	PaymentID string  `json:"payment_id"`
}
