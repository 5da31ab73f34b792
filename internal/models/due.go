package models

import "time"

// Due is one student's obligation to pay a fixed amount for a charge event.
// The amount is fixed at creation; Paid flips false->true exactly once, only
// through payment verification, and is never reversed.
type Due struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	EventID     string    `json:"event_id,omitempty"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	Paid        bool      `json:"paid"`
	AssignedAt  time.Time `json:"assigned_at"`

	EventTitle string `json:"event_title,omitempty"`
	EventType  string `json:"event_type,omitempty"`
}

type DueSummary struct {
	StudentID   string  `json:"student_id"`
	PendingDues int     `json:"pending_dues"`
	PaidDues    int     `json:"paid_dues"`
	TotalOwed   float64 `json:"total_owed"`
	TotalPaid   float64 `json:"total_paid"`
}
