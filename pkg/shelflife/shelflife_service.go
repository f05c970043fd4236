package shelflife

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"Pantry-Planner-Backend/domain"
	"Pantry-Planner-Backend/entities"
	"Pantry-Planner-Backend/pkg/textmatch"
)

type (
	// ShelfLifeService resolves free-text ingredient names to an expected
	// shelf life and default storage location, trying progressively looser
	// matching tiers and reporting which one fired.
	ShelfLifeService interface {
		Resolve(ctx context.Context, name, category string) (domain.ShelfLifeResolution, error)
		EstimateExpiry(ctx context.Context, name, category string, purchaseDate time.Time) (time.Time, domain.ShelfLifeResolution, error)
	}

	shelfLifeService struct {
		shelfLifeRepository ShelfLifeRepository
		logger              *zap.Logger
	}
)

func NewShelfLifeService(shelfLifeRepository ShelfLifeRepository, logger *zap.Logger) ShelfLifeService {
	return &shelfLifeService{
		shelfLifeRepository: shelfLifeRepository,
		logger:              logger,
	}
}

func (s *shelfLifeService) Resolve(ctx context.Context, name, category string) (domain.ShelfLifeResolution, error) {
	if strings.TrimSpace(name) == "" {
		return domain.ShelfLifeResolution{}, domain.ErrEmptyItemName
	}

	refs, err := s.shelfLifeRepository.ListAll(ctx)
	if err != nil {
		return domain.ShelfLifeResolution{}, err
	}

	if ref, strategy, ok := matchReference(name, refs); ok {
		return domain.ShelfLifeResolution{
			Days:            ref.ShelfLifeDays,
			StorageLocation: ref.StorageLocation,
			Category:        ref.Category,
			Source:          domain.ShelfLifeSourceDatabase,
			Confidence:      domain.ConfidenceHigh,
			Strategy:        strategy,
			MatchedName:     ref.Name,
		}, nil
	}

	if def, ok := categoryDefaults[strings.ToLower(strings.TrimSpace(category))]; ok {
		s.logger.Debug("shelf life resolved from category default",
			zap.String("name", name),
			zap.String("category", category),
		)
		return domain.ShelfLifeResolution{
			Days:            def.Days,
			StorageLocation: def.Location,
			Category:        category,
			Source:          domain.ShelfLifeSourceDefault,
			Confidence:      domain.ConfidenceLow,
		}, nil
	}

	s.logger.Debug("shelf life fell back to ultimate default", zap.String("name", name))
	return domain.ShelfLifeResolution{
		Days:            fallbackDays,
		StorageLocation: fallbackLocation,
		Category:        category,
		Source:          domain.ShelfLifeSourceFallback,
		Confidence:      domain.ConfidenceLow,
	}, nil
}

// matchReference walks the matching ladder tier by tier: a hit in a stricter
// tier always beats any hit in a looser one. Within a tier the best-scoring
// entry wins; ties go to the first entry in name order.
func matchReference(name string, refs []entities.ShelfLifeReference) (entities.ShelfLifeReference, string, bool) {
	for _, strategy := range textmatch.Strategies() {
		best := -1
		bestScore := 0.0
		for i, ref := range refs {
			m, ok := strategy.TryMatch(name, ref.Name)
			if !ok {
				continue
			}
			if m.Score > bestScore {
				best, bestScore = i, m.Score
			}
		}
		if best >= 0 {
			return refs[best], strategy.Name(), true
		}
	}
	return entities.ShelfLifeReference{}, "", false
}

func (s *shelfLifeService) EstimateExpiry(ctx context.Context, name, category string, purchaseDate time.Time) (time.Time, domain.ShelfLifeResolution, error) {
	resolution, err := s.Resolve(ctx, name, category)
	if err != nil {
		return time.Time{}, domain.ShelfLifeResolution{}, err
	}
	expiry := purchaseDate.AddDate(0, 0, resolution.Days)
	return expiry, resolution, nil
}
