package model

import (
	"github.com/google/uuid"
)

const DefaultColumnName = "To Do"

type Column struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name string    `gorm:"not null;default:'To Do'"`
	// Cards is the display order of the column's cards. Paired with
	// Card.ColumnID: a card id is listed here iff the card's back-reference
	// points at this column.
	Cards IDList `gorm:"type:jsonb;serializer:json;not null"`
}
