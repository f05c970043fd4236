package entities

import (
	"github.com/google/uuid"
)

// ShelfLifeReference is a global, read-only lookup row describing how long an
// ingredient typically keeps and where it is usually stored. Seeded at
// migration time, shared across all users.
type ShelfLifeReference struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `gorm:"uniqueIndex" json:"name"`
	ShelfLifeDays   int       `json:"shelf_life_days"`
	StorageLocation string    `json:"storage_location"`
	Category        string    `json:"category"`
	Note            string    `gorm:"type:text" json:"note,omitempty"`

	Timestamp
}
