package repository

import "errors"

// Common repository errors
var (
	// ErrDashboardNotFound is returned when a dashboard is not found
	ErrDashboardNotFound = errors.New("dashboard not found")

	// ErrColumnNotFound is returned when a column is not found
	ErrColumnNotFound = errors.New("column not found")

	// ErrCardNotFound is returned when a card is not found
	ErrCardNotFound = errors.New("card not found")
)
