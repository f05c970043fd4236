package domain

import (
	"time"
)

var (
	MessageSuccessResolveShelfLife = "shelf life resolved successfully"
	MessageSuccessEstimateExpiry   = "expiry date estimated successfully"

	MessageFailedResolveShelfLife = "failed to resolve shelf life"
	MessageFailedEstimateExpiry   = "failed to estimate expiry date"
)

const (
	ShelfLifeSourceDatabase = "database"
	ShelfLifeSourceDefault  = "default"
	ShelfLifeSourceFallback = "fallback"
)

type (
	ResolveShelfLifeRequest struct {
		Name     string `json:"name" validate:"required"`
		Category string `json:"category"`
	}

	ShelfLifeResolution struct {
		Days            int    `json:"days"`
		StorageLocation string `json:"storage_location"`
		Category        string `json:"category"`
		Source          string `json:"source"`     // "database", "default", "fallback"
		Confidence      string `json:"confidence"` // "high", "low"
		Strategy        string `json:"strategy,omitempty"`
		MatchedName     string `json:"matched_name,omitempty"`
	}

	EstimateExpiryRequest struct {
		Name         string `json:"name" validate:"required"`
		Category     string `json:"category"`
		PurchaseDate string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	}

	EstimateExpiryResponse struct {
		ExpiryDate time.Time           `json:"expiry_date"`
		Estimated  bool                `json:"estimated"`
		Resolution ShelfLifeResolution `json:"resolution"`
	}
)
