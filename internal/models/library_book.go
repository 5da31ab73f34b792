package models

import "time"

type LibraryBook struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	ISBN       string    `json:"isbn,omitempty"`
	AssignedTo string    `json:"assigned_to,omitempty"`
	DueDate    string    `json:"due_date,omitempty"`
	FineAmount float64   `json:"fine_amount"`
	CreatedAt  time.Time `json:"created_at"`
}
