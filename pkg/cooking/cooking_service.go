package cooking

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"Pantry-Planner-Backend/domain"
	"Pantry-Planner-Backend/entities"
	"Pantry-Planner-Backend/pkg/inventory"
	"Pantry-Planner-Backend/pkg/textmatch"
	"Pantry-Planner-Backend/pkg/units"
)

// Quantities at or below this many grams or millilitres are treated as
// seasoning-sized and left unselected by default. Requests can override the
// cutoff per user.
const defaultSmallQuantityBase = 5.0

type (
	// CookingService turns recipe ingredient lists into inventory deductions.
	// Preview and calculate are read-only; perform and apply mutate stock.
	CookingService interface {
		PreviewDeduction(ctx context.Context, userID string, req domain.PreviewDeductionRequest) (domain.DeductionResponse, error)
		PerformDeduction(ctx context.Context, userID string, req domain.PerformDeductionRequest) (domain.DeductionResponse, error)
		CalculateCookingDeductions(ctx context.Context, userID string, req domain.CalculateCookingRequest) (domain.DeductionResponse, error)
		ApplyCookingDeductions(ctx context.Context, userID string, req domain.ApplyCookingRequest) (domain.DeductionResponse, error)
	}

	cookingService struct {
		inventoryRepository inventory.InventoryRepository
		logger              *zap.Logger
	}
)

func NewCookingService(inventoryRepository inventory.InventoryRepository, logger *zap.Logger) CookingService {
	return &cookingService{
		inventoryRepository: inventoryRepository,
		logger:              logger,
	}
}

// PreviewDeduction computes what cooking would deduct without touching any
// rows. Calling it repeatedly always yields the same answer for the same
// stock.
func (s *cookingService) PreviewDeduction(ctx context.Context, userID string, req domain.PreviewDeductionRequest) (domain.DeductionResponse, error) {
	items, err := s.computeForUser(ctx, userID, req.Ingredients, req.Scale, 0)
	if err != nil {
		return domain.DeductionResponse{}, err
	}
	return domain.DeductionResponse{Items: items, Summary: summarize(items)}, nil
}

// PerformDeduction computes the deduction plan and then applies it row by
// row. Partially covered ingredients are only applied when AllowPartial is
// set; unmatched and unit-mismatched ingredients are never applied. A
// per-row storage failure is captured on that item instead of aborting the
// rest of the batch.
func (s *cookingService) PerformDeduction(ctx context.Context, userID string, req domain.PerformDeductionRequest) (domain.DeductionResponse, error) {
	items, err := s.computeForUser(ctx, userID, req.Ingredients, req.Scale, 0)
	if err != nil {
		return domain.DeductionResponse{}, err
	}

	for i := range items {
		item := &items[i]
		switch item.Status {
		case domain.DeductionFullyDeducted:
		case domain.DeductionPartiallyDeducted:
			if !req.AllowPartial {
				item.Explanation += "; skipped, partial deduction not allowed"
				continue
			}
		default:
			continue
		}
		s.applyItem(ctx, item)
	}

	summary := summarize(items)
	s.logger.Info("cooking deduction applied",
		zap.String("user_id", userID),
		zap.Int("ingredients", summary.TotalIngredients),
		zap.Int("applied", summary.Applied),
	)
	return domain.DeductionResponse{Items: items, Summary: summary}, nil
}

// CalculateCookingDeductions is the preview used by the cooking flow UI: the
// same plan as PreviewDeduction, with seasoning-sized amounts left
// unselected so a pinch of salt does not eat a whole jar.
func (s *cookingService) CalculateCookingDeductions(ctx context.Context, userID string, req domain.CalculateCookingRequest) (domain.DeductionResponse, error) {
	threshold := 0.0
	if req.SmallQuantityThreshold != nil {
		threshold = *req.SmallQuantityThreshold
	}
	items, err := s.computeForUser(ctx, userID, req.Ingredients, req.Scale, threshold)
	if err != nil {
		return domain.DeductionResponse{}, err
	}
	return domain.DeductionResponse{Items: items, Summary: summarize(items)}, nil
}

// ApplyCookingDeductions deducts only the selections the user confirmed.
// Partial coverage is accepted here; the user already saw the plan.
func (s *cookingService) ApplyCookingDeductions(ctx context.Context, userID string, req domain.ApplyCookingRequest) (domain.DeductionResponse, error) {
	ingredients := make([]domain.RecipeIngredient, 0, len(req.Selections))
	for _, sel := range req.Selections {
		if !sel.Selected {
			continue
		}
		ingredients = append(ingredients, domain.RecipeIngredient{
			Name:     sel.Name,
			Quantity: sel.Quantity,
			Unit:     sel.Unit,
		})
	}
	if len(ingredients) == 0 {
		return domain.DeductionResponse{Items: []domain.DeductionItem{}}, nil
	}
	return s.PerformDeduction(ctx, userID, domain.PerformDeductionRequest{
		Ingredients:  ingredients,
		Scale:        req.Scale,
		AllowPartial: true,
	})
}

func (s *cookingService) computeForUser(ctx context.Context, userID string, ingredients []domain.RecipeIngredient, scale, smallThreshold float64) ([]domain.DeductionItem, error) {
	if scale < 0 {
		return nil, domain.ErrInvalidScale
	}
	for _, ing := range ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return nil, domain.ErrEmptyItemName
		}
		if ing.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	stock, err := s.inventoryRepository.GetActiveItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return computeDeductions(ingredients, scale, smallThreshold, stock), nil
}

// computeDeductions builds the deduction plan against a stock snapshot. It
// never mutates stock; callers decide whether and which lines to apply.
// Quantities carry full precision through matching and conversion; Round2 is
// applied only to the reported fields.
func computeDeductions(ingredients []domain.RecipeIngredient, scale, smallThreshold float64, stock []entities.InventoryItem) []domain.DeductionItem {
	if scale == 0 {
		scale = 1
	}
	if smallThreshold <= 0 {
		smallThreshold = defaultSmallQuantityBase
	}

	names := make([]string, len(stock))
	for i, item := range stock {
		names[i] = item.Name
	}

	items := make([]domain.DeductionItem, 0, len(ingredients))
	for _, ing := range ingredients {
		scaled := ing.Quantity * scale
		item := domain.DeductionItem{
			IngredientName:    ing.Name,
			RequestedQuantity: units.Round2(scaled),
			RequestedUnit:     units.Normalize(ing.Unit),
		}
		item.IsSmallQuantity = isSmallQuantity(scaled, item.RequestedUnit, smallThreshold)
		item.Selected = !item.IsSmallQuantity

		idx := textmatch.BestNameMatch(ing.Name, names)
		if idx < 0 {
			item.Status = domain.DeductionNotFound
			item.Shortfall = units.Round2(scaled)
			item.Explanation = "no matching item in stock"
			items = append(items, item)
			continue
		}

		matched := stock[idx]
		item.MatchedItemID = matched.ID.String()
		item.MatchedItemName = matched.Name
		item.InventoryUnit = units.Normalize(matched.Unit)
		item.AvailableQuantity = matched.Quantity

		needed, err := units.Convert(scaled, item.RequestedUnit, item.InventoryUnit)
		if err != nil {
			item.Status = domain.DeductionUnitMismatch
			item.Shortfall = units.Round2(scaled)
			item.Explanation = fmt.Sprintf("cannot convert %s to %s, nothing deducted", item.RequestedUnit, item.InventoryUnit)
			items = append(items, item)
			continue
		}

		switch {
		case matched.Quantity >= needed:
			item.Status = domain.DeductionFullyDeducted
			item.DeductedQuantity = units.Round2(needed)
			item.NewQuantity = units.Round2(matched.Quantity - needed)
			item.Deactivated = item.NewQuantity == 0
			item.Explanation = fmt.Sprintf("deducting %.2f %s", item.DeductedQuantity, item.InventoryUnit)
		case matched.Quantity > 0:
			item.Status = domain.DeductionPartiallyDeducted
			item.DeductedQuantity = matched.Quantity
			item.NewQuantity = 0
			item.Deactivated = true
			item.Shortfall = shortfallInRequestedUnit(needed-matched.Quantity, item.InventoryUnit, item.RequestedUnit)
			item.Explanation = fmt.Sprintf("only %.2f %s in stock, short by %.2f %s", matched.Quantity, item.InventoryUnit, item.Shortfall, item.RequestedUnit)
		default:
			item.Status = domain.DeductionNotFound
			item.Shortfall = units.Round2(scaled)
			item.Explanation = "matched item is out of stock"
		}
		items = append(items, item)
	}
	return items
}

// shortfallInRequestedUnit reports a missing amount back in the unit the
// recipe asked for. The conversion cannot fail here because the forward
// conversion already succeeded.
func shortfallInRequestedUnit(missing float64, inventoryUnit, requestedUnit string) float64 {
	converted, err := units.Convert(missing, inventoryUnit, requestedUnit)
	if err != nil {
		return units.Round2(missing)
	}
	return units.Round2(converted)
}

// isSmallQuantity flags seasoning-sized amounts: spoon and pinch measures,
// or anything at or below the threshold in grams or millilitres once
// converted.
func isSmallQuantity(quantity float64, unit string, threshold float64) bool {
	switch units.UnitFamily(unit) {
	case units.FamilySpoon:
		return true
	case units.FamilyWeight:
		grams, err := units.Convert(quantity, unit, "g")
		return err == nil && grams <= threshold
	case units.FamilyVolume:
		ml, err := units.Convert(quantity, unit, "ml")
		return err == nil && ml <= threshold
	case units.FamilyCount:
		return units.Normalize(unit) == "pinch"
	default:
		return false
	}
}

// applyItem writes one planned deduction to storage. The quantity update is
// guarded on the value the plan was computed from, so a row another request
// changed in the meantime is left alone and the conflict lands on the item's
// Error field; Applied stays false so the caller can see exactly which rows
// changed.
func (s *cookingService) applyItem(ctx context.Context, item *domain.DeductionItem) {
	if err := s.inventoryRepository.UpdateQuantity(ctx, item.MatchedItemID, item.AvailableQuantity, item.NewQuantity); err != nil {
		item.Error = err.Error()
		return
	}
	if item.Deactivated {
		if err := s.inventoryRepository.Deactivate(ctx, item.MatchedItemID); err != nil {
			item.Error = err.Error()
			return
		}
	}
	item.Applied = true
}

func summarize(items []domain.DeductionItem) domain.DeductionSummary {
	summary := domain.DeductionSummary{TotalIngredients: len(items)}
	for _, item := range items {
		switch item.Status {
		case domain.DeductionFullyDeducted:
			summary.FullyDeducted++
		case domain.DeductionPartiallyDeducted:
			summary.PartiallyDeducted++
		case domain.DeductionNotFound:
			summary.NotFound++
		case domain.DeductionUnitMismatch:
			summary.UnitMismatch++
		}
		if item.Applied {
			summary.Applied++
		}
	}
	return summary
}
