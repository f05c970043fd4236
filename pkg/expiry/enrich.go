package expiry

import (
	"sort"
	"strings"
	"time"

	"Pantry-Planner-Backend/entities"
	"Pantry-Planner-Backend/pkg/textmatch"
)

// EnrichedItem is an inventory row plus the derived freshness fields. The
// derived fields are a pure function of (purchase date, expiry date, now);
// nothing here is persisted.
type EnrichedItem struct {
	entities.InventoryItem
	DaysUntilExpiry *int   `json:"days_until_expiry"`
	ShelfLifeDays   *int   `json:"shelf_life_days"`
	Status          Status `json:"status"`
}

func Enrich(item entities.InventoryItem, now time.Time) EnrichedItem {
	days := DaysUntilExpiry(now, item.ExpiryDate)
	shelf := ShelfLifeDays(item.PurchaseDate, item.ExpiryDate)
	return EnrichedItem{
		InventoryItem:   item,
		DaysUntilExpiry: days,
		ShelfLifeDays:   shelf,
		Status:          Classify(days, shelf),
	}
}

func EnrichAll(items []entities.InventoryItem, now time.Time) []EnrichedItem {
	out := make([]EnrichedItem, 0, len(items))
	for _, item := range items {
		out = append(out, Enrich(item, now))
	}
	return out
}

// SortByExpiryPriority orders items most urgent first: expired, then
// expiring soon, then fresh; within a status by ascending days until expiry
// (no expiry date last); ties broken alphabetically by name.
func SortByExpiryPriority(items []EnrichedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := statusPriority(items[i].Status), statusPriority(items[j].Status)
		if pi != pj {
			return pi < pj
		}
		di, dj := items[i].DaysUntilExpiry, items[j].DaysUntilExpiry
		switch {
		case di == nil && dj == nil:
		case di == nil:
			return false
		case dj == nil:
			return true
		case *di != *dj:
			return *di < *dj
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}

// Sort orders items by a display field. Items without an expiry date sort
// last on date-derived fields regardless of direction.
func Sort(items []EnrichedItem, field, order string) {
	desc := strings.EqualFold(order, "desc")
	less := func(i, j int) bool {
		var cmp int
		switch field {
		case "quantity":
			cmp = compareFloat(items[i].Quantity, items[j].Quantity)
		case "category":
			cmp = strings.Compare(strings.ToLower(items[i].Category), strings.ToLower(items[j].Category))
		case "purchase_date":
			cmp = compareTime(items[i].PurchaseDate, items[j].PurchaseDate)
		case "expiry_date", "days_until_expiry":
			return lessByExpiry(items[i], items[j], desc)
		default: // name
			cmp = strings.Compare(strings.ToLower(items[i].Name), strings.ToLower(items[j].Name))
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	}
	sort.SliceStable(items, less)
}

func lessByExpiry(a, b EnrichedItem, desc bool) bool {
	da, db := a.DaysUntilExpiry, b.DaysUntilExpiry
	switch {
	case da == nil && db == nil:
		return false
	case da == nil:
		return false
	case db == nil:
		return true
	}
	if desc {
		return *da > *db
	}
	return *da < *db
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// FilterOptions narrows an enriched listing. Nil/empty fields are ignored.
type FilterOptions struct {
	Category string
	Location string
	Status   Status
	Active   *bool
	Search   string
}

// Filter returns the items matching every set option. Search matches on the
// normalized item name by containment.
func Filter(items []EnrichedItem, opts FilterOptions) []EnrichedItem {
	search := textmatch.NormalizeName(opts.Search)
	out := make([]EnrichedItem, 0, len(items))
	for _, item := range items {
		if opts.Category != "" && !strings.EqualFold(item.Category, opts.Category) {
			continue
		}
		if opts.Location != "" && !strings.EqualFold(item.StorageLocation, opts.Location) {
			continue
		}
		if opts.Status != "" && item.Status != opts.Status {
			continue
		}
		if opts.Active != nil && item.IsActive != *opts.Active {
			continue
		}
		if search != "" && !strings.Contains(textmatch.NormalizeName(item.Name), search) {
			continue
		}
		out = append(out, item)
	}
	return out
}
