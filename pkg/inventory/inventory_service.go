package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"Pantry-Planner-Backend/domain"
	"Pantry-Planner-Backend/entities"
	"Pantry-Planner-Backend/pkg/expiry"
	"Pantry-Planner-Backend/pkg/shelflife"
	"Pantry-Planner-Backend/pkg/units"
)

type (
	InventoryService interface {
		AddItem(ctx context.Context, req domain.AddInventoryItemRequest, userID string) (domain.InventoryItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest, userID string) error
		DeleteItem(ctx context.Context, id string, userID string) error
		GetItem(ctx context.Context, id string, userID string) (domain.InventoryItemResponse, error)
		GetItems(ctx context.Context, userID string, opts domain.ListInventoryOptions) ([]domain.InventoryItemResponse, int, error)
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
		CheckDuplicates(ctx context.Context, userID string, req domain.CheckDuplicatesRequest) (domain.CheckDuplicatesResponse, error)
		FindBestMatchForMerge(ctx context.Context, userID string, name string) (*domain.DuplicateMatch, error)
		SuggestMergedQuantity(ctx context.Context, userID string, name string, quantity float64, unit string) (domain.MergeSuggestion, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		shelfLifeService    shelflife.ShelfLifeService
		logger              *zap.Logger
		now                 func() time.Time
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, shelfLifeService shelflife.ShelfLifeService, logger *zap.Logger) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		shelfLifeService:    shelfLifeService,
		logger:              logger,
		now:                 time.Now,
	}
}

func (s *inventoryService) AddItem(ctx context.Context, req domain.AddInventoryItemRequest, userID string) (domain.InventoryItemResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.InventoryItemResponse{}, domain.ErrEmptyItemName
	}
	if req.Quantity < 0 {
		return domain.InventoryItemResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.InventoryItemResponse{}, domain.ErrParseUUID
	}

	purchaseDate := s.now()
	if req.PurchaseDate != "" {
		purchaseDate, err = time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return domain.InventoryItemResponse{}, domain.ErrInvalidPurchaseDate
		}
	}

	item := &entities.InventoryItem{
		ID:              uuid.New(),
		UserID:          userUUID,
		Name:            strings.TrimSpace(req.Name),
		Quantity:        req.Quantity,
		Unit:            units.Normalize(req.Unit),
		Category:        req.Category,
		StorageLocation: req.StorageLocation,
		PurchaseDate:    purchaseDate,
		IsActive:        true,
		Notes:           req.Notes,
	}

	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.InventoryItemResponse{}, domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = &expiryDate
	} else {
		// No user-entered expiry: estimate one from the reference dataset
		// and flag it so the UI can show it as a guess.
		estimated, resolution, err := s.shelfLifeService.EstimateExpiry(ctx, item.Name, item.Category, purchaseDate)
		if err != nil {
			return domain.InventoryItemResponse{}, err
		}
		item.ExpiryDate = &estimated
		item.ExpiryEstimated = true
		if item.StorageLocation == "" {
			item.StorageLocation = resolution.StorageLocation
		}
		if item.Category == "" {
			item.Category = resolution.Category
		}
	}

	if err := s.inventoryRepository.AddItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	s.logger.Info("inventory item added",
		zap.String("item_id", item.ID.String()),
		zap.String("user_id", userID),
		zap.Bool("expiry_estimated", item.ExpiryEstimated),
	)

	return s.toResponse(*item), nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest, userID string) error {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		item.Name = strings.TrimSpace(req.Name)
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.ErrInvalidQuantity
		}
		item.Quantity = *req.Quantity
	}
	if req.Unit != "" {
		item.Unit = units.Normalize(req.Unit)
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.StorageLocation != "" {
		item.StorageLocation = req.StorageLocation
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = &expiryDate
		item.ExpiryEstimated = false
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	return s.inventoryRepository.UpdateItem(ctx, item)
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedItem(ctx, id, userID); err != nil {
		return err
	}
	return s.inventoryRepository.DeleteItem(ctx, id)
}

func (s *inventoryService) GetItem(ctx context.Context, id string, userID string) (domain.InventoryItemResponse, error) {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}
	return s.toResponse(*item), nil
}

func (s *inventoryService) GetItems(ctx context.Context, userID string, opts domain.ListInventoryOptions) ([]domain.InventoryItemResponse, int, error) {
	items, err := s.inventoryRepository.GetItems(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	enriched := expiry.EnrichAll(items, s.now())
	enriched = expiry.Filter(enriched, expiry.FilterOptions{
		Category: opts.Category,
		Location: opts.Location,
		Status:   expiry.Status(opts.Status),
		Active:   opts.Active,
		Search:   opts.Search,
	})

	if opts.SortBy == "expiry_priority" {
		expiry.SortByExpiryPriority(enriched)
	} else {
		expiry.Sort(enriched, opts.SortBy, opts.Order)
	}

	total := len(enriched)
	enriched = paginate(enriched, opts.Page, opts.Limit)

	responses := make([]domain.InventoryItemResponse, 0, len(enriched))
	for _, e := range enriched {
		responses = append(responses, enrichedToResponse(e))
	}
	return responses, total, nil
}

func paginate(items []expiry.EnrichedItem, page, limit int) []expiry.EnrichedItem {
	if limit <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func (s *inventoryService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	items, err := s.inventoryRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	stats := domain.DashboardStatsResponse{TotalItems: len(items)}
	for _, e := range expiry.EnrichAll(items, s.now()) {
		if !e.IsActive {
			stats.InactiveItems++
			continue
		}
		switch e.Status {
		case expiry.StatusExpired:
			stats.ExpiredItems++
		case expiry.StatusExpiringSoon:
			stats.ExpiringSoonItems++
		default:
			stats.FreshItems++
		}
	}
	return stats, nil
}

func (s *inventoryService) getOwnedItem(ctx context.Context, id string, userID string) (*entities.InventoryItem, error) {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	if item.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return item, nil
}

func (s *inventoryService) toResponse(item entities.InventoryItem) domain.InventoryItemResponse {
	return enrichedToResponse(expiry.Enrich(item, s.now()))
}

func enrichedToResponse(e expiry.EnrichedItem) domain.InventoryItemResponse {
	return domain.InventoryItemResponse{
		ID:              e.ID.String(),
		Name:            e.Name,
		Quantity:        e.Quantity,
		DisplayQuantity: units.RoundForDisplay(e.Quantity, e.Unit),
		Unit:            e.Unit,
		Category:        e.Category,
		StorageLocation: e.StorageLocation,
		PurchaseDate:    e.PurchaseDate,
		ExpiryDate:      e.ExpiryDate,
		ExpiryEstimated: e.ExpiryEstimated,
		IsActive:        e.IsActive,
		Notes:           e.Notes,
		DaysUntilExpiry: e.DaysUntilExpiry,
		ShelfLifeDays:   e.ShelfLifeDays,
		Status:          string(e.Status),
		CreatedAt:       e.CreatedAt,
	}
}
