package model

import (
	"time"

	"github.com/google/uuid"
)

type Dashboard struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_dashboards_owner_slug"`
	Name            string    `gorm:"not null"`
	Slug            string    `gorm:"not null;uniqueIndex:idx_dashboards_owner_slug"`
	Icon            string
	BackgroundImage string
	// Columns is the display order of the dashboard's columns. Every entry
	// must reference an existing column, and a column id appears in at most
	// one dashboard's list.
	Columns   IDList `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Owner User `gorm:"foreignKey:OwnerID"`
}
