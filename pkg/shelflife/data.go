package shelflife

import (
	"Pantry-Planner-Backend/entities"
)

// Category defaults used when no reference entry matches a name. One
// shelf-life/location pair per category; looked up case-insensitively.
type categoryDefault struct {
	Days     int
	Location string
}

var categoryDefaults = map[string]categoryDefault{
	"fruit & vegetables": {Days: 5, Location: entities.LocationFridge},
	"meat & fish":        {Days: 2, Location: entities.LocationFridge},
	"dairy & eggs":       {Days: 7, Location: entities.LocationFridge},
	"bakery":             {Days: 3, Location: entities.LocationCupboard},
	"cupboard staples":   {Days: 365, Location: entities.LocationCupboard},
	"frozen":             {Days: 90, Location: entities.LocationFreezer},
	"drinks":             {Days: 180, Location: entities.LocationCupboard},
	"condiments":         {Days: 180, Location: entities.LocationFridge},
}

// Ultimate fallback when neither the reference table nor the category
// defaults know the item.
const (
	fallbackDays     = 7
	fallbackLocation = entities.LocationFridge
)

// SeedReferences is the static shelf-life dataset, seeded into the
// shelf_life_references table at migration time. Names are singular; fuzzy
// matching takes care of plurals and phrasing.
func SeedReferences() []entities.ShelfLifeReference {
	refs := []entities.ShelfLifeReference{
		// Fruit & Vegetables
		{Name: "apple", ShelfLifeDays: 28, StorageLocation: entities.LocationFridge, Category: "Fruit & Vegetables"},
		{Name: "banana", ShelfLifeDays: 5, StorageLocation: entities.LocationCupboard, Category: "Fruit & Vegetables", Note: "ripens fast next to other fruit"},
		{Name: "orange", ShelfLifeDays: 14, StorageLocation: entities.LocationFridge, Category: "Fruit & Vegetables"},
		{Name: "lemon", ShelfLifeDays: 21, StorageLocation: entities.LocationFridge, Category: "Fruit & Vegetables"},
		{Name: "tomato", ShelfLifeDays: 7, StorageLocation: entities.LocationFridge, Category: "Fruit & Vegetables"},
		{Name: "potato", ShelfLifeDays: 30, StorageLocation: entities.LocationCupboard, Category: "Fruit & Vegetables", Note: "keep dark and dry"},
		{Name: "onion", ShelfLifeDays: 30, StorageLocation: entities.LocationCupboard, Category: "Fruit & Vegetables"},
		{Name: "garlic", ShelfLifeDays: 60, StorageLocation: entities.LocationCupboard, Category: "Fruit & Vegetables"},
		{Name: "carrot", ShelfLifeDays: 21, StorageLocation: entities.LocationFridge, Category: "Fruit & Vegetables"},
		{Name: "lettuce", ShelfLifeDays: 7, StorageLocation: entities.LocationFridge, Category: "Fruit & Vegetables"},
		{Name: "spinach", ShelfLifeDays: 5, StorageLocation: entities.LocationFridge, Category: "Fruit & Vegetables"},
		{Name: "broccoli", ShelfLifeDays: 7, StorageLocation: entities.LocationFridge, Category: "Fruit & Vegetables"},
		{Name: "cucumber", ShelfLifeDays: 7, StorageLocation: entities.LocationFridge, Category: "Fruit & Vegetables"},
		{Name: "bell pepper", ShelfLifeDays: 10, StorageLocation: entities.LocationFridge, Category: "Fruit & Vegetables"},
		{Name: "mushroom", ShelfLifeDays: 5, StorageLocation: entities.LocationFridge, Category: "Fruit & Vegetables"},
		{Name: "avocado", ShelfLifeDays: 4, StorageLocation: entities.LocationCupboard, Category: "Fruit & Vegetables"},
		{Name: "strawberry", ShelfLifeDays: 3, StorageLocation: entities.LocationFridge, Category: "Fruit & Vegetables"},
		{Name: "grape", ShelfLifeDays: 7, StorageLocation: entities.LocationFridge, Category: "Fruit & Vegetables"},
		{Name: "courgette", ShelfLifeDays: 7, StorageLocation: entities.LocationFridge, Category: "Fruit & Vegetables"},
		{Name: "ginger", ShelfLifeDays: 21, StorageLocation: entities.LocationFridge, Category: "Fruit & Vegetables"},

		// Meat & Fish
		{Name: "chicken breast", ShelfLifeDays: 2, StorageLocation: entities.LocationFridge, Category: "Meat & Fish"},
		{Name: "chicken thigh", ShelfLifeDays: 2, StorageLocation: entities.LocationFridge, Category: "Meat & Fish"},
		{Name: "beef mince", ShelfLifeDays: 2, StorageLocation: entities.LocationFridge, Category: "Meat & Fish"},
		{Name: "beef steak", ShelfLifeDays: 3, StorageLocation: entities.LocationFridge, Category: "Meat & Fish"},
		{Name: "pork chop", ShelfLifeDays: 3, StorageLocation: entities.LocationFridge, Category: "Meat & Fish"},
		{Name: "bacon", ShelfLifeDays: 7, StorageLocation: entities.LocationFridge, Category: "Meat & Fish"},
		{Name: "sausage", ShelfLifeDays: 3, StorageLocation: entities.LocationFridge, Category: "Meat & Fish"},
		{Name: "salmon", ShelfLifeDays: 2, StorageLocation: entities.LocationFridge, Category: "Meat & Fish"},
		{Name: "white fish", ShelfLifeDays: 2, StorageLocation: entities.LocationFridge, Category: "Meat & Fish"},
		{Name: "prawn", ShelfLifeDays: 1, StorageLocation: entities.LocationFridge, Category: "Meat & Fish"},

		// Dairy & Eggs
		{Name: "milk", ShelfLifeDays: 7, StorageLocation: entities.LocationFridge, Category: "Dairy & Eggs"},
		{Name: "butter", ShelfLifeDays: 60, StorageLocation: entities.LocationFridge, Category: "Dairy & Eggs"},
		{Name: "cheddar cheese", ShelfLifeDays: 28, StorageLocation: entities.LocationFridge, Category: "Dairy & Eggs"},
		{Name: "mozzarella", ShelfLifeDays: 7, StorageLocation: entities.LocationFridge, Category: "Dairy & Eggs"},
		{Name: "yoghurt", ShelfLifeDays: 10, StorageLocation: entities.LocationFridge, Category: "Dairy & Eggs"},
		{Name: "cream", ShelfLifeDays: 5, StorageLocation: entities.LocationFridge, Category: "Dairy & Eggs"},
		{Name: "egg", ShelfLifeDays: 28, StorageLocation: entities.LocationFridge, Category: "Dairy & Eggs"},

		// Bakery
		{Name: "bread", ShelfLifeDays: 4, StorageLocation: entities.LocationCupboard, Category: "Bakery"},
		{Name: "bagel", ShelfLifeDays: 4, StorageLocation: entities.LocationCupboard, Category: "Bakery"},
		{Name: "tortilla wrap", ShelfLifeDays: 7, StorageLocation: entities.LocationCupboard, Category: "Bakery"},
		{Name: "croissant", ShelfLifeDays: 2, StorageLocation: entities.LocationCupboard, Category: "Bakery"},

		// Cupboard Staples
		{Name: "plain flour", ShelfLifeDays: 365, StorageLocation: entities.LocationCupboard, Category: "Cupboard Staples"},
		{Name: "white rice", ShelfLifeDays: 730, StorageLocation: entities.LocationCupboard, Category: "Cupboard Staples"},
		{Name: "pasta", ShelfLifeDays: 730, StorageLocation: entities.LocationCupboard, Category: "Cupboard Staples"},
		{Name: "sugar", ShelfLifeDays: 730, StorageLocation: entities.LocationCupboard, Category: "Cupboard Staples"},
		{Name: "salt", ShelfLifeDays: 1825, StorageLocation: entities.LocationCupboard, Category: "Cupboard Staples"},
		{Name: "olive oil", ShelfLifeDays: 540, StorageLocation: entities.LocationCupboard, Category: "Cupboard Staples"},
		{Name: "chopped tomato", ShelfLifeDays: 540, StorageLocation: entities.LocationCupboard, Category: "Cupboard Staples", Note: "tinned"},
		{Name: "baked bean", ShelfLifeDays: 540, StorageLocation: entities.LocationCupboard, Category: "Cupboard Staples", Note: "tinned"},
		{Name: "oat", ShelfLifeDays: 365, StorageLocation: entities.LocationCupboard, Category: "Cupboard Staples"},
		{Name: "honey", ShelfLifeDays: 1095, StorageLocation: entities.LocationCupboard, Category: "Cupboard Staples"},
		{Name: "stock cube", ShelfLifeDays: 365, StorageLocation: entities.LocationCupboard, Category: "Cupboard Staples"},

		// Condiments
		{Name: "ketchup", ShelfLifeDays: 180, StorageLocation: entities.LocationFridge, Category: "Condiments"},
		{Name: "mayonnaise", ShelfLifeDays: 60, StorageLocation: entities.LocationFridge, Category: "Condiments"},
		{Name: "soy sauce", ShelfLifeDays: 365, StorageLocation: entities.LocationCupboard, Category: "Condiments"},
		{Name: "mustard", ShelfLifeDays: 365, StorageLocation: entities.LocationFridge, Category: "Condiments"},

		// Frozen
		{Name: "frozen pea", ShelfLifeDays: 240, StorageLocation: entities.LocationFreezer, Category: "Frozen"},
		{Name: "ice cream", ShelfLifeDays: 120, StorageLocation: entities.LocationFreezer, Category: "Frozen"},
	}
	return refs
}
