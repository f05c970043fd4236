package shopping

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"Pantry-Planner-Backend/domain"
	"Pantry-Planner-Backend/entities"
)

type fakeStockRepository struct {
	items []entities.InventoryItem
}

func (f *fakeStockRepository) AddItem(_ context.Context, item *entities.InventoryItem) error {
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeStockRepository) GetItemByID(_ context.Context, id string) (*entities.InventoryItem, error) {
	for i := range f.items {
		if f.items[i].ID.String() == id {
			cp := f.items[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStockRepository) UpdateItem(_ context.Context, item *entities.InventoryItem) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStockRepository) UpdateQuantity(_ context.Context, id string, fromQuantity, toQuantity float64) error {
	for i := range f.items {
		if f.items[i].ID.String() == id {
			if f.items[i].Quantity != fromQuantity {
				return domain.ErrStaleInventoryQuantity
			}
			f.items[i].Quantity = toQuantity
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStockRepository) Deactivate(_ context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID.String() == id {
			f.items[i].IsActive = false
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStockRepository) DeleteItem(_ context.Context, _ string) error { return nil }

func (f *fakeStockRepository) GetActiveItems(_ context.Context, userID string) ([]entities.InventoryItem, error) {
	var out []entities.InventoryItem
	for _, item := range f.items {
		if item.UserID.String() == userID && item.IsActive {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeStockRepository) GetItems(_ context.Context, userID string) ([]entities.InventoryItem, error) {
	var out []entities.InventoryItem
	for _, item := range f.items {
		if item.UserID.String() == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeShoppingRepository struct {
	exclusions map[string]*entities.ExcludedShoppingItem
	listItems  []entities.ShoppingListItem
}

func newFakeShoppingRepository() *fakeShoppingRepository {
	return &fakeShoppingRepository{exclusions: map[string]*entities.ExcludedShoppingItem{}}
}

func (f *fakeShoppingRepository) CreateExclusion(_ context.Context, exclusion *entities.ExcludedShoppingItem) error {
	cp := *exclusion
	f.exclusions[exclusion.ID.String()] = &cp
	return nil
}

func (f *fakeShoppingRepository) GetExclusionByID(_ context.Context, id string) (*entities.ExcludedShoppingItem, error) {
	exclusion, ok := f.exclusions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *exclusion
	return &cp, nil
}

func (f *fakeShoppingRepository) ListExclusions(_ context.Context, userID string) ([]entities.ExcludedShoppingItem, error) {
	var out []entities.ExcludedShoppingItem
	for _, exclusion := range f.exclusions {
		if exclusion.UserID.String() == userID {
			out = append(out, *exclusion)
		}
	}
	return out, nil
}

func (f *fakeShoppingRepository) UpdateExclusion(_ context.Context, exclusion *entities.ExcludedShoppingItem) error {
	if _, ok := f.exclusions[exclusion.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *exclusion
	f.exclusions[exclusion.ID.String()] = &cp
	return nil
}

func (f *fakeShoppingRepository) AddShoppingListItem(_ context.Context, item *entities.ShoppingListItem) error {
	f.listItems = append(f.listItems, *item)
	return nil
}

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestShoppingService(shoppingRepo ShoppingRepository, stockRepo *fakeStockRepository) *shoppingService {
	svc := NewShoppingService(shoppingRepo, stockRepo, zap.NewNop()).(*shoppingService)
	svc.now = func() time.Time { return testNow }
	return svc
}

func stockItem(userID uuid.UUID, name string, quantity float64, unit string) entities.InventoryItem {
	return entities.InventoryItem{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
		IsActive: true,
	}
}

func TestReconcileAgainstStock(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	stock := &fakeStockRepository{items: []entities.InventoryItem{
		stockItem(userID, "Pasta", 500, "g"),
		stockItem(userID, "Cheddar", 200, "g"),
		stockItem(userID, "Butter", 1, "pack"),
		stockItem(userID, "Olive Oil", 0, "ml"),
	}}
	svc := newTestShoppingService(newFakeShoppingRepository(), stock)

	res, err := svc.ReconcileAgainstStock(ctx, userID.String(), []domain.RequestedItem{
		{Name: "pasta", Quantity: 500, Unit: "grams"},
		{Name: "cheddar", Quantity: 500, Unit: "g"},
		{Name: "butter", Quantity: 250, Unit: "g"},
		{Name: "olive oil", Quantity: 100, Unit: "ml"},
		{Name: "saffron", Quantity: 1, Unit: "pinch"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Excluded != 1 || res.Reduced != 1 || res.Added != 3 {
		t.Fatalf("counts = %d/%d/%d, want 1/1/3", res.Excluded, res.Reduced, res.Added)
	}

	byName := map[string]domain.ReconcileLine{}
	for _, line := range res.Lines {
		byName[line.ItemName] = line
	}

	t.Run("fully covered line is excluded", func(t *testing.T) {
		line := byName["pasta"]
		if line.Action != domain.ReconcileActionExclude {
			t.Fatalf("action = %q, want exclude", line.Action)
		}
		if line.ResidualQuantity != 0 || !line.IsAvailable {
			t.Fatalf("unexpected line: %+v", line)
		}
		if line.MatchedItemName != "Pasta" {
			t.Fatalf("matched = %q, want Pasta", line.MatchedItemName)
		}
	})

	t.Run("partial coverage reduces to the residual", func(t *testing.T) {
		line := byName["cheddar"]
		if line.Action != domain.ReconcileActionReduce {
			t.Fatalf("action = %q, want reduce", line.Action)
		}
		if line.ResidualQuantity != 300 {
			t.Fatalf("residual = %v, want 300", line.ResidualQuantity)
		}
	})

	t.Run("unit mismatch keeps the full amount", func(t *testing.T) {
		line := byName["butter"]
		if line.Action != domain.ReconcileActionAdd || !line.UnitMismatch {
			t.Fatalf("unexpected line: %+v", line)
		}
		if line.ResidualQuantity != 250 {
			t.Fatalf("residual = %v, want full 250", line.ResidualQuantity)
		}
		if line.MatchedItemName != "Butter" {
			t.Fatalf("mismatch lines still report the match, got %+v", line)
		}
	})

	t.Run("zero stock means add", func(t *testing.T) {
		line := byName["olive oil"]
		if line.Action != domain.ReconcileActionAdd || line.UnitMismatch {
			t.Fatalf("unexpected line: %+v", line)
		}
		if line.ResidualQuantity != 100 {
			t.Fatalf("residual = %v, want 100", line.ResidualQuantity)
		}
	})

	t.Run("unknown item means add", func(t *testing.T) {
		line := byName["saffron"]
		if line.Action != domain.ReconcileActionAdd || line.MatchedItemID != "" {
			t.Fatalf("unexpected line: %+v", line)
		}
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := svc.ReconcileAgainstStock(ctx, userID.String(), []domain.RequestedItem{
			{Name: "pasta", Quantity: 0, Unit: "g"},
		})
		if !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestReconcileIsReadOnly(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	stock := &fakeStockRepository{items: []entities.InventoryItem{
		stockItem(userID, "Pasta", 500, "g"),
	}}
	svc := newTestShoppingService(newFakeShoppingRepository(), stock)

	for i := 0; i < 2; i++ {
		res, err := svc.ReconcileAgainstStock(ctx, userID.String(), []domain.RequestedItem{
			{Name: "pasta", Quantity: 200, Unit: "g"},
		})
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
		if res.Lines[0].Action != domain.ReconcileActionExclude {
			t.Fatalf("run %d: action = %q", i, res.Lines[0].Action)
		}
	}
	if stock.items[0].Quantity != 500 {
		t.Fatalf("stock mutated to %v", stock.items[0].Quantity)
	}
}

func TestRecordAndListExclusions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeShoppingRepository()
	svc := newTestShoppingService(repo, &fakeStockRepository{})

	matchedID := uuid.New()
	lines := []domain.ReconcileLine{
		{ItemName: "pasta", RequestedQuantity: 500, Unit: "g", Action: domain.ReconcileActionExclude, MatchedItemID: matchedID.String()},
		{ItemName: "cheddar", RequestedQuantity: 500, Unit: "g", Action: domain.ReconcileActionReduce, ResidualQuantity: 300},
		{ItemName: "saffron", RequestedQuantity: 1, Unit: "pinch", Action: domain.ReconcileActionAdd},
	}
	if err := svc.RecordExclusions(ctx, userID.String(), lines); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.ListExclusions(ctx, userID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (add lines are not recorded)", len(got))
	}

	byName := map[string]domain.ExclusionResponse{}
	for _, e := range got {
		byName[e.ItemName] = e
	}
	if byName["pasta"].Reason != domain.ExclusionReasonFullyCovered {
		t.Fatalf("pasta reason = %q", byName["pasta"].Reason)
	}
	if byName["pasta"].MatchedInventoryID != matchedID.String() {
		t.Fatalf("matched id = %q, want %q", byName["pasta"].MatchedInventoryID, matchedID)
	}
	if byName["cheddar"].Reason != domain.ExclusionReasonPartiallyCovered || byName["cheddar"].ResidualQuantity != 300 {
		t.Fatalf("unexpected cheddar exclusion: %+v", byName["cheddar"])
	}
}

func TestReverseExclusion(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeShoppingRepository()
	svc := newTestShoppingService(repo, &fakeStockRepository{})

	exclusion := &entities.ExcludedShoppingItem{
		ID:       uuid.New(),
		UserID:   userID,
		ItemName: "Pasta",
		Quantity: 500,
		Unit:     "g",
		Reason:   domain.ExclusionReasonFullyCovered,
	}
	if err := repo.CreateExclusion(ctx, exclusion); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	t.Run("stranger cannot reverse", func(t *testing.T) {
		_, err := svc.ReverseExclusion(ctx, uuid.NewString(), exclusion.ID.String(), nil)
		if !errors.Is(err, domain.ErrUnauthorizedAccess) {
			t.Fatalf("expected ErrUnauthorizedAccess, got %v", err)
		}
	})

	t.Run("defaults to the original quantity", func(t *testing.T) {
		res, err := svc.ReverseExclusion(ctx, userID.String(), exclusion.ID.String(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quantity != 500 || res.Unit != "g" || res.ItemName != "Pasta" {
			t.Fatalf("unexpected response: %+v", res)
		}
		if !res.AddedBackAt.Equal(testNow) {
			t.Fatalf("AddedBackAt = %v, want %v", res.AddedBackAt, testNow)
		}
		if len(repo.listItems) != 1 || repo.listItems[0].Source != "add_back" {
			t.Fatalf("unexpected shopping list state: %+v", repo.listItems)
		}
	})

	t.Run("second reversal is rejected", func(t *testing.T) {
		_, err := svc.ReverseExclusion(ctx, userID.String(), exclusion.ID.String(), nil)
		if !errors.Is(err, domain.ErrExclusionAlreadyReversed) {
			t.Fatalf("expected ErrExclusionAlreadyReversed, got %v", err)
		}
	})

	t.Run("unknown exclusion", func(t *testing.T) {
		_, err := svc.ReverseExclusion(ctx, userID.String(), uuid.NewString(), nil)
		if !errors.Is(err, domain.ErrExclusionNotFound) {
			t.Fatalf("expected ErrExclusionNotFound, got %v", err)
		}
	})

	t.Run("caller can override the quantity", func(t *testing.T) {
		other := &entities.ExcludedShoppingItem{
			ID:       uuid.New(),
			UserID:   userID,
			ItemName: "Cheddar",
			Quantity: 500,
			Unit:     "g",
			Reason:   domain.ExclusionReasonPartiallyCovered,
		}
		if err := repo.CreateExclusion(ctx, other); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		qty := 300.0
		res, err := svc.ReverseExclusion(ctx, userID.String(), other.ID.String(), &qty)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quantity != 300 {
			t.Fatalf("quantity = %v, want 300", res.Quantity)
		}
	})
}
