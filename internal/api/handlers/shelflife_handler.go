package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Pantry-Planner-Backend/domain"
	"Pantry-Planner-Backend/internal/api/presenters"
	"Pantry-Planner-Backend/pkg/shelflife"
)

type (
	ShelfLifeHandler interface {
		Resolve(c *fiber.Ctx) error
		EstimateExpiry(c *fiber.Ctx) error
	}

	shelfLifeHandler struct {
		shelfLifeService shelflife.ShelfLifeService
		validator        *validator.Validate
	}
)

func NewShelfLifeHandler(shelfLifeService shelflife.ShelfLifeService, validator *validator.Validate) ShelfLifeHandler {
	return &shelfLifeHandler{
		shelfLifeService: shelfLifeService,
		validator:        validator,
	}
}

func (h *shelfLifeHandler) Resolve(c *fiber.Ctx) error {
	req := new(domain.ResolveShelfLifeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResolveShelfLife, err)
	}

	res, err := h.shelfLifeService.Resolve(c.Context(), req.Name, req.Category)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResolveShelfLife, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResolveShelfLife)
}

func (h *shelfLifeHandler) EstimateExpiry(c *fiber.Ctx) error {
	req := new(domain.EstimateExpiryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEstimateExpiry, err)
	}

	purchaseDate := time.Now()
	if req.PurchaseDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEstimateExpiry, domain.ErrInvalidPurchaseDate)
		}
		purchaseDate = parsed
	}

	expiryDate, resolution, err := h.shelfLifeService.EstimateExpiry(c.Context(), req.Name, req.Category, purchaseDate)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEstimateExpiry, err)
	}

	return presenters.SuccessResponse(c, domain.EstimateExpiryResponse{
		ExpiryDate: expiryDate,
		Estimated:  true,
		Resolution: resolution,
	}, fiber.StatusOK, domain.MessageSuccessEstimateExpiry)
}
