package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Pantry-Planner-Backend/domain"
	"Pantry-Planner-Backend/internal/api/presenters"
	"Pantry-Planner-Backend/pkg/shopping"
)

type (
	ShoppingHandler interface {
		Reconcile(c *fiber.Ctx) error
		GetExclusions(c *fiber.Ctx) error
		AddBack(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

// Reconcile computes which requested lines stock already covers and records
// the exclusions in one request, so the client gets the annotated list and
// the add-back history stays consistent.
func (h *shoppingHandler) Reconcile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ReconcileRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReconcile, err)
	}

	res, err := h.shoppingService.ReconcileAgainstStock(c.Context(), userID, req.Items)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReconcile, err)
	}

	if err := h.shoppingService.RecordExclusions(c.Context(), userID, res.Lines); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReconcile, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReconcile)
}

func (h *shoppingHandler) GetExclusions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	exclusions, err := h.shoppingService.ListExclusions(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetExclusions, err)
	}

	return presenters.SuccessResponse(c, exclusions, fiber.StatusOK, domain.MessageSuccessGetExclusions)
}

func (h *shoppingHandler) AddBack(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	exclusionID := c.Params("id")
	req := new(domain.AddBackRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReverseExclusion, err)
	}

	res, err := h.shoppingService.ReverseExclusion(c.Context(), userID, exclusionID, req.Quantity)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReverseExclusion, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReverseExclusion)
}
