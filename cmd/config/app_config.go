package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"Pantry-Planner-Backend/internal/api/handlers"
	"Pantry-Planner-Backend/internal/api/routes"
	"Pantry-Planner-Backend/internal/middleware"
	"Pantry-Planner-Backend/internal/utils"
	"Pantry-Planner-Backend/pkg/cooking"
	"Pantry-Planner-Backend/pkg/inventory"
	"Pantry-Planner-Backend/pkg/jwt"
	"Pantry-Planner-Backend/pkg/logger"
	"Pantry-Planner-Backend/pkg/shelflife"
	"Pantry-Planner-Backend/pkg/shopping"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(fiberlogger.New(fiberlogger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	zapLogger := logger.Must(utils.GetConfig("LOG_LEVEL"))

	// Repository
	inventoryRepository := inventory.NewInventoryRepository(db)
	shelfLifeRepository := shelflife.NewShelfLifeRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	shelfLifeService := shelflife.NewShelfLifeService(shelfLifeRepository, zapLogger.Named("shelflife"))
	inventoryService := inventory.NewInventoryService(inventoryRepository, shelfLifeService, zapLogger.Named("inventory"))
	shoppingService := shopping.NewShoppingService(shoppingRepository, inventoryRepository, zapLogger.Named("shopping"))
	cookingService := cooking.NewCookingService(inventoryRepository, zapLogger.Named("cooking"))

	// Handler
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	cookingHandler := handlers.NewCookingHandler(cookingService, validator)
	shelfLifeHandler := handlers.NewShelfLifeHandler(shelfLifeService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		InventoryHandler: inventoryHandler,
		ShoppingHandler:  shoppingHandler,
		CookingHandler:   cookingHandler,
		ShelfLifeHandler: shelfLifeHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
