package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessReconcile        = "shopping list reconciled against stock"
	MessageSuccessGetExclusions    = "exclusions retrieved successfully"
	MessageSuccessReverseExclusion = "excluded item added back to shopping list"

	MessageFailedReconcile        = "failed to reconcile shopping list"
	MessageFailedGetExclusions    = "failed to retrieve exclusions"
	MessageFailedReverseExclusion = "failed to add excluded item back"

	ErrExclusionNotFound        = errors.New("excluded shopping item not found")
	ErrExclusionAlreadyReversed = errors.New("excluded shopping item already added back")
)

// Actions the reconciler assigns to each requested line.
const (
	ReconcileActionExclude = "exclude" // fully covered by stock, drop from the list
	ReconcileActionReduce  = "reduce"  // partially covered, add only the residual
	ReconcileActionAdd     = "add"     // not covered, add the full amount
)

// Exclusion reasons persisted on ExcludedShoppingItem rows.
const (
	ExclusionReasonFullyCovered     = "fully_covered"
	ExclusionReasonPartiallyCovered = "partially_covered"
)

type (
	RequestedItem struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity" validate:"gt=0"`
		Unit     string  `json:"unit" validate:"required"`
	}

	ReconcileRequest struct {
		Items []RequestedItem `json:"items" validate:"required,min=1,dive"`
	}

	ReconcileLine struct {
		ItemName          string  `json:"item_name"`
		RequestedQuantity float64 `json:"requested_quantity"`
		Unit              string  `json:"unit"`
		Action            string  `json:"action"` // "exclude", "reduce", "add"
		ResidualQuantity  float64 `json:"residual_quantity"`
		IsAvailable       bool    `json:"is_available"`
		AvailableQuantity float64 `json:"available_quantity"`
		MatchedItemID     string  `json:"matched_item_id,omitempty"`
		MatchedItemName   string  `json:"matched_item_name,omitempty"`
		UnitMismatch      bool    `json:"unit_mismatch"`
		Explanation       string  `json:"explanation"`
	}

	ReconcileResponse struct {
		Lines    []ReconcileLine `json:"lines"`
		Excluded int             `json:"excluded"`
		Reduced  int             `json:"reduced"`
		Added    int             `json:"added"`
	}

	ExclusionResponse struct {
		ID                 string     `json:"id"`
		ItemName           string     `json:"item_name"`
		Quantity           float64    `json:"quantity"`
		Unit               string     `json:"unit"`
		Reason             string     `json:"reason"`
		ResidualQuantity   float64    `json:"residual_quantity"`
		MatchedInventoryID string     `json:"matched_inventory_id,omitempty"`
		AddedBackAt        *time.Time `json:"added_back_at,omitempty"`
		CreatedAt          time.Time  `json:"created_at"`
	}

	AddBackRequest struct {
		Quantity *float64 `json:"quantity" validate:"omitempty,gt=0"`
	}

	AddBackResponse struct {
		ShoppingListItemID string    `json:"shopping_list_item_id"`
		ItemName           string    `json:"item_name"`
		Quantity           float64   `json:"quantity"`
		Unit               string    `json:"unit"`
		AddedBackAt        time.Time `json:"added_back_at"`
	}
)
