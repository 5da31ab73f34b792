package models

import "time"

type Student struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RollNo       string    `json:"roll_no"`
	RollSeries   string    `json:"roll_series,omitempty"`
	Department   string    `json:"department,omitempty"`
	Section      string    `json:"section,omitempty"`
	DOB          string    `json:"dob,omitempty"`
	StudentPhone string    `json:"student_phone,omitempty"`
	ParentPhone  string    `json:"parent_phone,omitempty"`
	Password     string    `json:"password,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
