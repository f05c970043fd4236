package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Pantry-Planner-Backend/domain"
	"Pantry-Planner-Backend/internal/api/presenters"
	"Pantry-Planner-Backend/pkg/cooking"
)

type (
	CookingHandler interface {
		PreviewDeduction(c *fiber.Ctx) error
		PerformDeduction(c *fiber.Ctx) error
		CalculateDeductions(c *fiber.Ctx) error
		ApplyDeductions(c *fiber.Ctx) error
	}

	cookingHandler struct {
		cookingService cooking.CookingService
		validator      *validator.Validate
	}
)

func NewCookingHandler(cookingService cooking.CookingService, validator *validator.Validate) CookingHandler {
	return &cookingHandler{
		cookingService: cookingService,
		validator:      validator,
	}
}

func (h *cookingHandler) PreviewDeduction(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.PreviewDeductionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPreviewDeduction, err)
	}

	res, err := h.cookingService.PreviewDeduction(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPreviewDeduction, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPreviewDeduction)
}

func (h *cookingHandler) PerformDeduction(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.PerformDeductionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPerformDeduction, err)
	}

	res, err := h.cookingService.PerformDeduction(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPerformDeduction, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPerformDeduction)
}

func (h *cookingHandler) CalculateDeductions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CalculateCookingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCalculateCooking, err)
	}

	res, err := h.cookingService.CalculateCookingDeductions(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCalculateCooking, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCalculateCooking)
}

func (h *cookingHandler) ApplyDeductions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ApplyCookingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApplyCooking, err)
	}

	res, err := h.cookingService.ApplyCookingDeductions(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApplyCooking, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessApplyCooking)
}
