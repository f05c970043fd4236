package shopping

import (
	"context"

	"gorm.io/gorm"

	"Pantry-Planner-Backend/entities"
)

type (
	ShoppingRepository interface {
		CreateExclusion(ctx context.Context, exclusion *entities.ExcludedShoppingItem) error
		GetExclusionByID(ctx context.Context, id string) (*entities.ExcludedShoppingItem, error)
		ListExclusions(ctx context.Context, userID string) ([]entities.ExcludedShoppingItem, error)
		UpdateExclusion(ctx context.Context, exclusion *entities.ExcludedShoppingItem) error
		AddShoppingListItem(ctx context.Context, item *entities.ShoppingListItem) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) CreateExclusion(ctx context.Context, exclusion *entities.ExcludedShoppingItem) error {
	return r.db.WithContext(ctx).Create(exclusion).Error
}

func (r *shoppingRepository) GetExclusionByID(ctx context.Context, id string) (*entities.ExcludedShoppingItem, error) {
	var exclusion entities.ExcludedShoppingItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&exclusion).Error; err != nil {
		return nil, err
	}
	return &exclusion, nil
}

func (r *shoppingRepository) ListExclusions(ctx context.Context, userID string) ([]entities.ExcludedShoppingItem, error) {
	var exclusions []entities.ExcludedShoppingItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&exclusions).Error; err != nil {
		return nil, err
	}
	return exclusions, nil
}

func (r *shoppingRepository) UpdateExclusion(ctx context.Context, exclusion *entities.ExcludedShoppingItem) error {
	return r.db.WithContext(ctx).Save(exclusion).Error
}

func (r *shoppingRepository) AddShoppingListItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}
