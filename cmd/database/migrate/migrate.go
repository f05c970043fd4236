package migration

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"Pantry-Planner-Backend/entities"
	"Pantry-Planner-Backend/pkg/shelflife"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.InventoryItem{}); err != nil {
		log.Fatalf("Error migrating inventory item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShelfLifeReference{}); err != nil {
		log.Fatalf("Error migrating shelf life reference database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ExcludedShoppingItem{}); err != nil {
		log.Fatalf("Error migrating excluded shopping item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingListItem{}); err != nil {
		log.Fatalf("Error migrating shopping list item database: %v", err)
		return err
	}

	// Seed runs on every start and only inserts names that are missing.
	shelfLifeRepository := shelflife.NewShelfLifeRepository(db)
	if err := shelfLifeRepository.Seed(context.Background(), shelflife.SeedReferences()); err != nil {
		log.Fatalf("Error seeding shelf life references: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
