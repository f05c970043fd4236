package inventory

import (
	"context"

	"gorm.io/gorm"

	"Pantry-Planner-Backend/domain"
	"Pantry-Planner-Backend/entities"
)

type (
	// InventoryRepository is the abstract inventory store. Every query is
	// scoped to one owner; the engine never touches another user's rows.
	InventoryRepository interface {
		AddItem(ctx context.Context, item *entities.InventoryItem) error
		GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error)
		UpdateItem(ctx context.Context, item *entities.InventoryItem) error
		UpdateQuantity(ctx context.Context, id string, fromQuantity, toQuantity float64) error
		Deactivate(ctx context.Context, id string) error
		DeleteItem(ctx context.Context, id string) error
		GetActiveItems(ctx context.Context, userID string) ([]entities.InventoryItem, error)
		GetItems(ctx context.Context, userID string) ([]entities.InventoryItem, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) AddItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// UpdateQuantity sets a row's quantity only while it still holds the value
// the caller read. A row changed underneath returns
// ErrStaleInventoryQuantity with nothing written, so a concurrent deduction
// surfaces instead of being silently overwritten.
func (r *inventoryRepository) UpdateQuantity(ctx context.Context, id string, fromQuantity, toQuantity float64) error {
	res := r.db.WithContext(ctx).Model(&entities.InventoryItem{}).
		Where("id = ? AND quantity = ?", id, fromQuantity).
		Update("quantity", toQuantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleInventoryQuantity
	}
	return nil
}

func (r *inventoryRepository) Deactivate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.InventoryItem{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *inventoryRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.InventoryItem{}).Error
}

func (r *inventoryRepository) GetActiveItems(ctx context.Context, userID string) ([]entities.InventoryItem, error) {
	var items []entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) GetItems(ctx context.Context, userID string) ([]entities.InventoryItem, error) {
	var items []entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
