package shelflife

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Pantry-Planner-Backend/entities"
)

type (
	ShelfLifeRepository interface {
		ListAll(ctx context.Context) ([]entities.ShelfLifeReference, error)
		Seed(ctx context.Context, refs []entities.ShelfLifeReference) error
	}

	shelfLifeRepository struct {
		db *gorm.DB
	}
)

func NewShelfLifeRepository(db *gorm.DB) ShelfLifeRepository {
	return &shelfLifeRepository{db: db}
}

func (r *shelfLifeRepository) ListAll(ctx context.Context) ([]entities.ShelfLifeReference, error) {
	var refs []entities.ShelfLifeReference
	if err := r.db.WithContext(ctx).Order("name asc").Find(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}

// Seed inserts reference rows that are not present yet, keyed by name.
// Safe to run on every startup.
func (r *shelfLifeRepository) Seed(ctx context.Context, refs []entities.ShelfLifeReference) error {
	for _, ref := range refs {
		var existing entities.ShelfLifeReference
		err := r.db.WithContext(ctx).Where("name = ?", ref.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := r.db.WithContext(ctx).Create(&ref).Error; err != nil {
			return err
		}
	}
	return nil
}
