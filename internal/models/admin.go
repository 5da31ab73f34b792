package models

import "time"

type Admin struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role"`
	DOB       string    `json:"dob,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
