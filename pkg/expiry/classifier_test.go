package expiry

import (
	"testing"
	"time"

	"Pantry-Planner-Backend/entities"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func intPtr(n int) *int { return &n }

func TestDaysUntilExpiry(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC) // mid-afternoon

	t.Run("nil expiry", func(t *testing.T) {
		if got := DaysUntilExpiry(now, nil); got != nil {
			t.Fatalf("expected nil, got %v", *got)
		}
	})

	tests := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"future", date(2025, time.March, 15), 5},
		{"same day", date(2025, time.March, 10), 0},
		{"tomorrow regardless of time of day", date(2025, time.March, 11), 1},
		{"past", date(2025, time.March, 7), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysUntilExpiry(now, &tt.expiry)
			if got == nil || *got != tt.want {
				t.Fatalf("DaysUntilExpiry = %v, want %d", got, tt.want)
			}
		})
	}
}

func TestShelfLifeDays(t *testing.T) {
	purchase := date(2025, time.March, 1)

	if got := ShelfLifeDays(purchase, nil); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}

	got := ShelfLifeDays(purchase, datePtr(2025, time.March, 6))
	if got == nil || *got != 5 {
		t.Fatalf("ShelfLifeDays = %v, want 5", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		daysUntil *int
		shelfLife *int
		want      Status
	}{
		{"no expiry date", nil, nil, StatusFresh},
		{"negative days", intPtr(-1), intPtr(10), StatusExpired},
		{"long past", intPtr(-30), nil, StatusExpired},
		// shelf life 5 -> threshold max(2, ceil(1)) = 2
		{"shelf 5, one day left", intPtr(1), intPtr(5), StatusExpiringSoon},
		{"shelf 5, three days left", intPtr(3), intPtr(5), StatusFresh},
		// shelf life 30 -> threshold max(2, 6) = 6
		{"shelf 30, six days left", intPtr(6), intPtr(30), StatusExpiringSoon},
		{"shelf 30, seven days left", intPtr(7), intPtr(30), StatusFresh},
		// nil shelf life -> threshold 2
		{"no shelf life, two days left", intPtr(2), nil, StatusExpiringSoon},
		{"no shelf life, three days left", intPtr(3), nil, StatusFresh},
		{"expires today", intPtr(0), intPtr(5), StatusExpiringSoon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.daysUntil, tt.shelfLife); got != tt.want {
				t.Fatalf("Classify = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("deterministic", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			if got := Classify(intPtr(6), intPtr(30)); got != StatusExpiringSoon {
				t.Fatalf("run %d: Classify = %q, want %q", i, got, StatusExpiringSoon)
			}
		}
	})
}

func TestEnrich(t *testing.T) {
	now := date(2025, time.March, 10)
	item := entities.InventoryItem{
		Name:         "Milk",
		PurchaseDate: date(2025, time.March, 5),
		ExpiryDate:   datePtr(2025, time.March, 12),
	}

	enriched := Enrich(item, now)
	if enriched.DaysUntilExpiry == nil || *enriched.DaysUntilExpiry != 2 {
		t.Fatalf("DaysUntilExpiry = %v, want 2", enriched.DaysUntilExpiry)
	}
	if enriched.ShelfLifeDays == nil || *enriched.ShelfLifeDays != 7 {
		t.Fatalf("ShelfLifeDays = %v, want 7", enriched.ShelfLifeDays)
	}
	if enriched.Status != StatusExpiringSoon {
		t.Fatalf("Status = %q, want %q", enriched.Status, StatusExpiringSoon)
	}

	t.Run("no expiry date stays fresh", func(t *testing.T) {
		e := Enrich(entities.InventoryItem{Name: "Salt", PurchaseDate: now}, now)
		if e.Status != StatusFresh || e.DaysUntilExpiry != nil || e.ShelfLifeDays != nil {
			t.Fatalf("unexpected enrichment: %+v", e)
		}
	})
}

func TestSortByExpiryPriority(t *testing.T) {
	now := date(2025, time.March, 10)
	items := EnrichAll([]entities.InventoryItem{
		{Name: "Salt", PurchaseDate: date(2025, time.January, 1)},                                                 // fresh, no expiry
		{Name: "Yoghurt", PurchaseDate: date(2025, time.March, 1), ExpiryDate: datePtr(2025, time.March, 8)},      // expired
		{Name: "Milk", PurchaseDate: date(2025, time.March, 8), ExpiryDate: datePtr(2025, time.March, 11)},       // expiring soon
		{Name: "Apples", PurchaseDate: date(2025, time.February, 20), ExpiryDate: datePtr(2025, time.March, 30)}, // fresh, dated
		{Name: "Bread", PurchaseDate: date(2025, time.March, 9), ExpiryDate: datePtr(2025, time.March, 11)},      // expiring soon, same day as Milk
	}, now)

	SortByExpiryPriority(items)

	want := []string{"Yoghurt", "Bread", "Milk", "Apples", "Salt"}
	for i, name := range want {
		if items[i].Name != name {
			t.Fatalf("position %d = %q, want %q (order: %v)", i, items[i].Name, name, names(items))
		}
	}
}

func names(items []EnrichedItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestSort(t *testing.T) {
	now := date(2025, time.March, 10)
	items := EnrichAll([]entities.InventoryItem{
		{Name: "banana", Quantity: 3, PurchaseDate: date(2025, time.March, 2), ExpiryDate: datePtr(2025, time.March, 20)},
		{Name: "Apple", Quantity: 5, PurchaseDate: date(2025, time.March, 1)},
		{Name: "cheese", Quantity: 1, PurchaseDate: date(2025, time.March, 3), ExpiryDate: datePtr(2025, time.March, 12)},
	}, now)

	t.Run("by name case-insensitive", func(t *testing.T) {
		Sort(items, "name", "asc")
		if items[0].Name != "Apple" || items[2].Name != "cheese" {
			t.Fatalf("unexpected order: %v", names(items))
		}
	})

	t.Run("by quantity desc", func(t *testing.T) {
		Sort(items, "quantity", "desc")
		if items[0].Quantity != 5 || items[2].Quantity != 1 {
			t.Fatalf("unexpected order: %v", names(items))
		}
	})

	t.Run("by expiry date keeps undated last", func(t *testing.T) {
		Sort(items, "expiry_date", "asc")
		if items[0].Name != "cheese" || items[2].Name != "Apple" {
			t.Fatalf("unexpected order: %v", names(items))
		}
		Sort(items, "expiry_date", "desc")
		if items[0].Name != "banana" || items[2].Name != "Apple" {
			t.Fatalf("unexpected desc order: %v", names(items))
		}
	})
}

func TestFilter(t *testing.T) {
	now := date(2025, time.March, 10)
	active, inactive := true, false
	items := EnrichAll([]entities.InventoryItem{
		{Name: "Cherry Tomatoes", Category: "Vegetables", StorageLocation: entities.LocationFridge, IsActive: true, PurchaseDate: now, ExpiryDate: datePtr(2025, time.March, 20)},
		{Name: "Plain Flour", Category: "Cupboard Staples", StorageLocation: entities.LocationCupboard, IsActive: true, PurchaseDate: now},
		{Name: "Old Yoghurt", Category: "Dairy", StorageLocation: entities.LocationFridge, IsActive: false, PurchaseDate: date(2025, time.February, 1), ExpiryDate: datePtr(2025, time.February, 20)},
	}, now)

	t.Run("by category", func(t *testing.T) {
		got := Filter(items, FilterOptions{Category: "dairy"})
		if len(got) != 1 || got[0].Name != "Old Yoghurt" {
			t.Fatalf("unexpected result: %v", names(got))
		}
	})

	t.Run("by location and active", func(t *testing.T) {
		got := Filter(items, FilterOptions{Location: "fridge", Active: &active})
		if len(got) != 1 || got[0].Name != "Cherry Tomatoes" {
			t.Fatalf("unexpected result: %v", names(got))
		}
	})

	t.Run("by status", func(t *testing.T) {
		got := Filter(items, FilterOptions{Status: StatusExpired, Active: &inactive})
		if len(got) != 1 || got[0].Name != "Old Yoghurt" {
			t.Fatalf("unexpected result: %v", names(got))
		}
	})

	t.Run("by normalized search", func(t *testing.T) {
		got := Filter(items, FilterOptions{Search: "tomato"})
		if len(got) != 1 || got[0].Name != "Cherry Tomatoes" {
			t.Fatalf("unexpected result: %v", names(got))
		}
	})

	t.Run("no options returns everything", func(t *testing.T) {
		if got := Filter(items, FilterOptions{}); len(got) != 3 {
			t.Fatalf("expected 3 items, got %d", len(got))
		}
	})
}
