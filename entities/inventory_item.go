package entities

import (
	"time"

	"github.com/google/uuid"
)

// Storage locations an item can live in. An empty string means unset.
const (
	LocationFridge   = "fridge"
	LocationFreezer  = "freezer"
	LocationCupboard = "cupboard"
	LocationPantry   = "pantry"
)

type InventoryItem struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID  `gorm:"index" json:"user_id"`
	Name            string     `json:"name"`
	Quantity        float64    `json:"quantity"` // never negative
	Unit            string     `json:"unit"`     // normalized on write
	Category        string     `json:"category"`
	StorageLocation string     `json:"storage_location,omitempty"`
	PurchaseDate    time.Time  `gorm:"type:date" json:"purchase_date"`
	ExpiryDate      *time.Time `gorm:"type:date" json:"expiry_date,omitempty"`
	ExpiryEstimated bool       `json:"expiry_estimated"`
	IsActive        bool       `gorm:"default:true" json:"is_active"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`

	Timestamp
}
