package shopping

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"Pantry-Planner-Backend/domain"
	"Pantry-Planner-Backend/entities"
	"Pantry-Planner-Backend/pkg/inventory"
	"Pantry-Planner-Backend/pkg/textmatch"
	"Pantry-Planner-Backend/pkg/units"
)

type (
	// ShoppingService reconciles requested shopping-list lines against the
	// user's active stock and manages the exclusion records that reconcile
	// produces.
	ShoppingService interface {
		ReconcileAgainstStock(ctx context.Context, userID string, items []domain.RequestedItem) (domain.ReconcileResponse, error)
		RecordExclusions(ctx context.Context, userID string, lines []domain.ReconcileLine) error
		ListExclusions(ctx context.Context, userID string) ([]domain.ExclusionResponse, error)
		ReverseExclusion(ctx context.Context, userID string, exclusionID string, quantity *float64) (domain.AddBackResponse, error)
	}

	shoppingService struct {
		shoppingRepository  ShoppingRepository
		inventoryRepository inventory.InventoryRepository
		logger              *zap.Logger
		now                 func() time.Time
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, inventoryRepository inventory.InventoryRepository, logger *zap.Logger) ShoppingService {
	return &shoppingService{
		shoppingRepository:  shoppingRepository,
		inventoryRepository: inventoryRepository,
		logger:              logger,
		now:                 time.Now,
	}
}

func (s *shoppingService) ReconcileAgainstStock(ctx context.Context, userID string, items []domain.RequestedItem) (domain.ReconcileResponse, error) {
	stock, err := s.inventoryRepository.GetActiveItems(ctx, userID)
	if err != nil {
		return domain.ReconcileResponse{}, err
	}

	names := make([]string, len(stock))
	for i, item := range stock {
		names[i] = item.Name
	}

	response := domain.ReconcileResponse{Lines: make([]domain.ReconcileLine, 0, len(items))}
	for _, req := range items {
		if strings.TrimSpace(req.Name) == "" {
			return domain.ReconcileResponse{}, domain.ErrEmptyItemName
		}
		if req.Quantity <= 0 {
			return domain.ReconcileResponse{}, domain.ErrInvalidQuantity
		}

		line := reconcileLine(req, stock, names)
		switch line.Action {
		case domain.ReconcileActionExclude:
			response.Excluded++
		case domain.ReconcileActionReduce:
			response.Reduced++
		default:
			response.Added++
		}
		response.Lines = append(response.Lines, line)
	}

	s.logger.Info("shopping list reconciled",
		zap.String("user_id", userID),
		zap.Int("excluded", response.Excluded),
		zap.Int("reduced", response.Reduced),
		zap.Int("added", response.Added),
	)
	return response, nil
}

// reconcileLine classifies one requested line against the stock snapshot.
// Coverage is only trusted when the units are literally equal after
// normalization; a matched row in a different unit is conservatively treated
// as not covering the request at all.
func reconcileLine(req domain.RequestedItem, stock []entities.InventoryItem, names []string) domain.ReconcileLine {
	line := domain.ReconcileLine{
		ItemName:          req.Name,
		RequestedQuantity: req.Quantity,
		Unit:              units.Normalize(req.Unit),
	}

	idx := textmatch.BestNameMatch(req.Name, names)
	if idx < 0 {
		line.Action = domain.ReconcileActionAdd
		line.ResidualQuantity = req.Quantity
		line.Explanation = "no matching item in stock"
		return line
	}

	matched := stock[idx]
	line.MatchedItemID = matched.ID.String()
	line.MatchedItemName = matched.Name
	line.AvailableQuantity = matched.Quantity

	if units.Normalize(matched.Unit) != line.Unit {
		line.UnitMismatch = true
		line.Action = domain.ReconcileActionAdd
		line.ResidualQuantity = req.Quantity
		line.Explanation = fmt.Sprintf("stocked as %q, requested as %q: sufficiency unknown, keeping full amount", matched.Unit, req.Unit)
		return line
	}

	switch {
	case matched.Quantity >= req.Quantity:
		line.Action = domain.ReconcileActionExclude
		line.IsAvailable = true
		line.Explanation = fmt.Sprintf("fully covered by %.2f %s in stock", matched.Quantity, matched.Unit)
	case matched.Quantity > 0:
		line.Action = domain.ReconcileActionReduce
		line.IsAvailable = true
		line.ResidualQuantity = units.Round2(req.Quantity - matched.Quantity)
		line.Explanation = fmt.Sprintf("partially covered, %.2f %s still needed", line.ResidualQuantity, matched.Unit)
	default:
		line.Action = domain.ReconcileActionAdd
		line.ResidualQuantity = req.Quantity
		line.Explanation = "matched item is out of stock"
	}
	return line
}

// RecordExclusions persists the excluded and reduced lines of a
// reconciliation so the user can add them back later. Rows are append-only.
func (s *shoppingService) RecordExclusions(ctx context.Context, userID string, lines []domain.ReconcileLine) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	for _, line := range lines {
		if line.Action == domain.ReconcileActionAdd {
			continue
		}
		reason := domain.ExclusionReasonFullyCovered
		if line.Action == domain.ReconcileActionReduce {
			reason = domain.ExclusionReasonPartiallyCovered
		}
		exclusion := &entities.ExcludedShoppingItem{
			ID:               uuid.New(),
			UserID:           userUUID,
			ItemName:         line.ItemName,
			Quantity:         line.RequestedQuantity,
			Unit:             line.Unit,
			Reason:           reason,
			ResidualQuantity: line.ResidualQuantity,
		}
		if line.MatchedItemID != "" {
			matchedID, err := uuid.Parse(line.MatchedItemID)
			if err == nil {
				exclusion.MatchedInventoryID = &matchedID
			}
		}
		if err := s.shoppingRepository.CreateExclusion(ctx, exclusion); err != nil {
			return err
		}
	}
	return nil
}

func (s *shoppingService) ListExclusions(ctx context.Context, userID string) ([]domain.ExclusionResponse, error) {
	exclusions, err := s.shoppingRepository.ListExclusions(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.ExclusionResponse, 0, len(exclusions))
	for _, e := range exclusions {
		responses = append(responses, toExclusionResponse(e))
	}
	return responses, nil
}

// ReverseExclusion is the "add back" action: it inserts a shopping-list line
// for the withheld amount and timestamps the exclusion as reversed. The
// exclusion row itself is never deleted.
func (s *shoppingService) ReverseExclusion(ctx context.Context, userID string, exclusionID string, quantity *float64) (domain.AddBackResponse, error) {
	exclusion, err := s.shoppingRepository.GetExclusionByID(ctx, exclusionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AddBackResponse{}, domain.ErrExclusionNotFound
		}
		return domain.AddBackResponse{}, err
	}
	if exclusion.UserID.String() != userID {
		return domain.AddBackResponse{}, domain.ErrUnauthorizedAccess
	}
	if exclusion.AddedBackAt != nil {
		return domain.AddBackResponse{}, domain.ErrExclusionAlreadyReversed
	}

	addBackQuantity := exclusion.Quantity
	if quantity != nil {
		if *quantity <= 0 {
			return domain.AddBackResponse{}, domain.ErrInvalidQuantity
		}
		addBackQuantity = *quantity
	}

	listItem := &entities.ShoppingListItem{
		ID:       uuid.New(),
		UserID:   exclusion.UserID,
		Name:     exclusion.ItemName,
		Quantity: addBackQuantity,
		Unit:     exclusion.Unit,
		Source:   "add_back",
	}
	if err := s.shoppingRepository.AddShoppingListItem(ctx, listItem); err != nil {
		return domain.AddBackResponse{}, err
	}

	reversedAt := s.now()
	exclusion.AddedBackAt = &reversedAt
	if err := s.shoppingRepository.UpdateExclusion(ctx, exclusion); err != nil {
		return domain.AddBackResponse{}, err
	}

	s.logger.Info("exclusion reversed",
		zap.String("user_id", userID),
		zap.String("exclusion_id", exclusionID),
		zap.Float64("quantity", addBackQuantity),
	)

	return domain.AddBackResponse{
		ShoppingListItemID: listItem.ID.String(),
		ItemName:           listItem.Name,
		Quantity:           listItem.Quantity,
		Unit:               listItem.Unit,
		AddedBackAt:        reversedAt,
	}, nil
}

func toExclusionResponse(e entities.ExcludedShoppingItem) domain.ExclusionResponse {
	response := domain.ExclusionResponse{
		ID:               e.ID.String(),
		ItemName:         e.ItemName,
		Quantity:         e.Quantity,
		Unit:             e.Unit,
		Reason:           e.Reason,
		ResidualQuantity: e.ResidualQuantity,
		AddedBackAt:      e.AddedBackAt,
		CreatedAt:        e.CreatedAt,
	}
	if e.MatchedInventoryID != nil {
		response.MatchedInventoryID = e.MatchedInventoryID.String()
	}
	return response
}
