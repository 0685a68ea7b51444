package model

import (
	"time"

	"github.com/google/uuid"
)

type Card struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string    `gorm:"not null"`
	Description string
	Priority    string     `gorm:"not null;default:'none';check:priority IN ('none', 'low', 'medium', 'high')"`
	Deadline    *time.Time
	// ColumnID is a back-reference only: containment in Column.Cards drives
	// cascades, never this field.
	ColumnID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// Допустимые приоритеты карточки
const (
	PriorityNone   = "none"
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)
