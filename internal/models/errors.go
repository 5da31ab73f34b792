package models

import (
	"errors"
)

var (
	ErrNoRecord        = errors.New("models: no matching record found")
	ErrStudentNotFound = errors.New("models: student not found")
	ErrAdminNotFound   = errors.New("models: admin not found")
	ErrEventNotFound   = errors.New("models: event not found")
	ErrDueNotFound     = errors.New("models: due not found")
	ErrPaymentNotFound = errors.New("models: payment not found")

	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrDuplicateRollNo    = errors.New("models: duplicate roll number")

	ErrDueAlreadyPaid   = errors.New("models: due already paid")
	ErrDueLocked        = errors.New("models: payment for due already in progress")
	ErrInvalidSignature = errors.New("models: invalid payment signature")

	// ErrPersistenceInconsistency marks a partial write in the settlement
	// sequence. A gateway order or completed payment exists without the
	// matching local state, so the records need manual reconciliation.
	ErrPersistenceInconsistency = errors.New("models: persistence inconsistency, reconciliation required")
)
