package models

import "time"

// Event is a charge event: cultural fest, industrial visit, library fine
// campaign and so on. Dues are assigned to students against an event.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
