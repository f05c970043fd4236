package domain

import (
	"errors"
)

var (
	MessageSuccessPreviewDeduction = "deduction preview computed"
	MessageSuccessPerformDeduction = "deduction applied to inventory"
	MessageSuccessCalculateCooking = "cooking deductions calculated"
	MessageSuccessApplyCooking     = "cooking deductions applied"

	MessageFailedPreviewDeduction = "failed to preview deduction"
	MessageFailedPerformDeduction = "failed to apply deduction"
	MessageFailedCalculateCooking = "failed to calculate cooking deductions"
	MessageFailedApplyCooking     = "failed to apply cooking deductions"

	ErrInvalidScale = errors.New("serving scale must be positive")
)

// Per-ingredient deduction outcomes.
const (
	DeductionFullyDeducted     = "fully_deducted"
	DeductionPartiallyDeducted = "partially_deducted"
	DeductionNotFound          = "not_found"
	DeductionUnitMismatch      = "unit_mismatch"
)

type (
	RecipeIngredient struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity" validate:"gt=0"`
		Unit     string  `json:"unit" validate:"required"`
	}

	PreviewDeductionRequest struct {
		Ingredients []RecipeIngredient `json:"ingredients" validate:"required,min=1,dive"`
		Scale       float64            `json:"scale" validate:"omitempty,gt=0"`
	}

	PerformDeductionRequest struct {
		Ingredients  []RecipeIngredient `json:"ingredients" validate:"required,min=1,dive"`
		Scale        float64            `json:"scale" validate:"omitempty,gt=0"`
		AllowPartial bool               `json:"allow_partial"`
	}

	// DeductionItem reports what happened (or would happen) to one
	// ingredient. Requested quantities and shortfalls are expressed in the
	// ingredient's original unit; available/deducted/new quantities in the
	// matched inventory row's unit.
	DeductionItem struct {
		IngredientName    string  `json:"ingredient_name"`
		RequestedQuantity float64 `json:"requested_quantity"`
		RequestedUnit     string  `json:"requested_unit"`
		MatchedItemID     string  `json:"matched_item_id,omitempty"`
		MatchedItemName   string  `json:"matched_item_name,omitempty"`
		InventoryUnit     string  `json:"inventory_unit,omitempty"`
		AvailableQuantity float64 `json:"available_quantity"`
		DeductedQuantity  float64 `json:"deducted_quantity"`
		NewQuantity       float64 `json:"new_quantity"`
		Shortfall         float64 `json:"shortfall"`
		Status            string  `json:"status"`
		Deactivated       bool    `json:"deactivated"`
		IsSmallQuantity   bool    `json:"is_small_quantity"`
		Selected          bool    `json:"selected"`
		Applied           bool    `json:"applied"`
		Explanation       string  `json:"explanation"`
		Error             string  `json:"error,omitempty"`
	}

	DeductionSummary struct {
		TotalIngredients  int `json:"total_ingredients"`
		FullyDeducted     int `json:"fully_deducted"`
		PartiallyDeducted int `json:"partially_deducted"`
		NotFound          int `json:"not_found"`
		UnitMismatch      int `json:"unit_mismatch"`
		Applied           int `json:"applied"`
	}

	DeductionResponse struct {
		Items   []DeductionItem  `json:"items"`
		Summary DeductionSummary `json:"summary"`
	}

	// CalculateCookingRequest carries an optional per-user cutoff for the
	// seasoning heuristic; amounts at or below it (in grams or millilitres)
	// start unselected. Defaults to 5.
	CalculateCookingRequest struct {
		Ingredients            []RecipeIngredient `json:"ingredients" validate:"required,min=1,dive"`
		Scale                  float64            `json:"scale" validate:"omitempty,gt=0"`
		SmallQuantityThreshold *float64           `json:"small_quantity_threshold" validate:"omitempty,gt=0"`
	}

	CookingSelection struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity" validate:"gt=0"`
		Unit     string  `json:"unit" validate:"required"`
		Selected bool    `json:"selected"`
	}

	ApplyCookingRequest struct {
		Selections []CookingSelection `json:"selections" validate:"required,min=1,dive"`
		Scale      float64            `json:"scale" validate:"omitempty,gt=0"`
	}
)
