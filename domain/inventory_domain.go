package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddItem         = "inventory item added successfully"
	MessageSuccessUpdateItem      = "inventory item updated successfully"
	MessageSuccessDeleteItem      = "inventory item deleted successfully"
	MessageSuccessGetItems        = "inventory items retrieved successfully"
	MessageSuccessCheckDuplicates = "duplicate check completed"
	MessageSuccessGetDashboard    = "dashboard statistics retrieved successfully"

	MessageFailedAddItem         = "failed to add inventory item"
	MessageFailedUpdateItem      = "failed to update inventory item"
	MessageFailedDeleteItem      = "failed to delete inventory item"
	MessageFailedGetItems        = "failed to retrieve inventory items"
	MessageFailedCheckDuplicates = "failed to check for duplicates"
	MessageFailedGetDashboard    = "failed to retrieve dashboard statistics"

	ErrItemNotFound           = errors.New("inventory item not found")
	ErrEmptyItemName          = errors.New("item name must not be empty")
	ErrStaleInventoryQuantity = errors.New("inventory quantity changed since it was read")
	ErrInvalidQuantity        = errors.New("quantity must not be negative")
	ErrInvalidPurchaseDate    = errors.New("invalid purchase date")
	ErrInvalidExpiryDate      = errors.New("invalid expiry date")
)

type (
	AddInventoryItemRequest struct {
		Name            string  `json:"name" validate:"required"`
		Quantity        float64 `json:"quantity" validate:"gte=0"`
		Unit            string  `json:"unit" validate:"required"`
		Category        string  `json:"category"`
		StorageLocation string  `json:"storage_location" validate:"omitempty,oneof=fridge freezer cupboard pantry"`
		PurchaseDate    string  `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
		ExpiryDate      string  `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
		Notes           string  `json:"notes"`
	}

	UpdateInventoryItemRequest struct {
		Name            string   `json:"name" validate:"omitempty"`
		Quantity        *float64 `json:"quantity" validate:"omitempty,gte=0"`
		Unit            string   `json:"unit"`
		Category        string   `json:"category"`
		StorageLocation string   `json:"storage_location" validate:"omitempty,oneof=fridge freezer cupboard pantry"`
		ExpiryDate      string   `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
		Notes           *string  `json:"notes"`
	}

	InventoryItemResponse struct {
		ID              string     `json:"id"`
		Name            string     `json:"name"`
		Quantity        float64    `json:"quantity"`
		DisplayQuantity float64    `json:"display_quantity"`
		Unit            string     `json:"unit"`
		Category        string     `json:"category"`
		StorageLocation string     `json:"storage_location,omitempty"`
		PurchaseDate    time.Time  `json:"purchase_date"`
		ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
		ExpiryEstimated bool       `json:"expiry_estimated"`
		IsActive        bool       `json:"is_active"`
		Notes           string     `json:"notes,omitempty"`
		DaysUntilExpiry *int       `json:"days_until_expiry"`
		ShelfLifeDays   *int       `json:"shelf_life_days"`
		Status          string     `json:"status"`
		CreatedAt       time.Time  `json:"created_at"`
	}

	CheckDuplicatesRequest struct {
		Name            string   `json:"name" validate:"required"`
		Category        string   `json:"category"`
		StorageLocation string   `json:"storage_location"`
		Threshold       *float64 `json:"threshold" validate:"omitempty,gt=0,lte=1"`
	}

	DuplicateMatch struct {
		ItemID          string  `json:"item_id"`
		Name            string  `json:"name"`
		Quantity        float64 `json:"quantity"`
		Unit            string  `json:"unit"`
		Category        string  `json:"category"`
		StorageLocation string  `json:"storage_location,omitempty"`
		Score           float64 `json:"score"`
	}

	CheckDuplicatesResponse struct {
		IsDuplicate bool             `json:"is_duplicate"`
		MatchType   string           `json:"match_type"` // "exact", "similar", "none"
		Confidence  string           `json:"confidence"` // "high", "medium"
		Matches     []DuplicateMatch `json:"matches"`
	}

	MergeSuggestion struct {
		CanMerge       bool            `json:"can_merge"`
		Target         *DuplicateMatch `json:"target,omitempty"`
		MergedQuantity float64         `json:"merged_quantity,omitempty"`
		Unit           string          `json:"unit,omitempty"`
	}

	ListInventoryOptions struct {
		Category string
		Location string
		Status   string
		Active   *bool
		Search   string
		SortBy   string
		Order    string
		Page     int
		Limit    int
	}

	DashboardStatsResponse struct {
		TotalItems        int `json:"total_items"`
		FreshItems        int `json:"fresh_items"`
		ExpiringSoonItems int `json:"expiring_soon_items"`
		ExpiredItems      int `json:"expired_items"`
		InactiveItems     int `json:"inactive_items"`
	}
)

const (
	MatchTypeExact   = "exact"
	MatchTypeSimilar = "similar"
	MatchTypeNone    = "none"

	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)
