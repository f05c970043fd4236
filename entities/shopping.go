package entities

import (
	"time"

	"github.com/google/uuid"
)

// ExcludedShoppingItem records that a shopping-list line was withheld (or
// reduced) because existing stock covered it. Rows are never deleted; an
// "add back" only sets AddedBackAt so the history stays intact.
type ExcludedShoppingItem struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID             uuid.UUID  `gorm:"index" json:"user_id"`
	ItemName           string     `json:"item_name"`
	Quantity           float64    `json:"quantity"`
	Unit               string     `json:"unit"`
	Reason             string     `json:"reason"` // "fully_covered", "partially_covered"
	ResidualQuantity   float64    `json:"residual_quantity"`
	MatchedInventoryID *uuid.UUID `gorm:"type:uuid" json:"matched_inventory_id,omitempty"`
	AddedBackAt        *time.Time `json:"added_back_at,omitempty"`

	MatchedInventory *InventoryItem `gorm:"foreignKey:MatchedInventoryID"`
	Timestamp
}

type ShoppingListItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	Name     string    `json:"name"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`
	Source   string    `json:"source"` // "manual", "reconciler", "add_back"
	Checked  bool      `json:"checked"`

	Timestamp
}
