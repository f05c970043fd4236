package routes

import (
	"github.com/gofiber/fiber/v2"

	"Pantry-Planner-Backend/internal/api/handlers"
	"Pantry-Planner-Backend/internal/middleware"
	"Pantry-Planner-Backend/pkg/jwt"
)

type Config struct {
	App              *fiber.App
	InventoryHandler handlers.InventoryHandler
	ShoppingHandler  handlers.ShoppingHandler
	CookingHandler   handlers.CookingHandler
	ShelfLifeHandler handlers.ShelfLifeHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Inventory()
	c.Shopping()
	c.Cooking()
	c.ShelfLife()
	c.GuestRoute()
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))
	inventory.Get("/dashboard", c.InventoryHandler.GetDashboardStats)

	// Basic CRUD operations
	inventory.Post("", c.InventoryHandler.AddItem)
	inventory.Get("", c.InventoryHandler.GetItems)
	inventory.Get("/merge-suggestion", c.InventoryHandler.SuggestMerge)
	inventory.Get("/:id", c.InventoryHandler.GetItemDetails)
	inventory.Put("/:id", c.InventoryHandler.UpdateItem)
	inventory.Delete("/:id", c.InventoryHandler.DeleteItem)

	// Duplicate detection
	inventory.Post("/check-duplicates", c.InventoryHandler.CheckDuplicates)
}

func (c *Config) Shopping() {
	shopping := c.App.Group("/api/v1/shopping", c.Middleware.AuthMiddleware(c.JWTService))
	shopping.Post("/reconcile", c.ShoppingHandler.Reconcile)
	shopping.Get("/exclusions", c.ShoppingHandler.GetExclusions)
	shopping.Post("/exclusions/:id/add-back", c.ShoppingHandler.AddBack)
}

func (c *Config) Cooking() {
	cooking := c.App.Group("/api/v1/cooking", c.Middleware.AuthMiddleware(c.JWTService))
	cooking.Post("/preview", c.CookingHandler.PreviewDeduction)
	cooking.Post("/commit", c.CookingHandler.PerformDeduction)
	cooking.Post("/calculate", c.CookingHandler.CalculateDeductions)
	cooking.Post("/apply", c.CookingHandler.ApplyDeductions)
}

func (c *Config) ShelfLife() {
	shelfLife := c.App.Group("/api/v1/shelf-life", c.Middleware.AuthMiddleware(c.JWTService))
	shelfLife.Post("/resolve", c.ShelfLifeHandler.Resolve)
	shelfLife.Post("/estimate", c.ShelfLifeHandler.EstimateExpiry)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
