package inventory

import (
	"context"
	"math"
	"sort"
	"strings"

	"Pantry-Planner-Backend/domain"
	"Pantry-Planner-Backend/entities"
	"Pantry-Planner-Backend/pkg/textmatch"
	"Pantry-Planner-Backend/pkg/units"
)

const (
	defaultDuplicateThreshold = 0.7
	mergeThreshold            = 0.8

	categoryBoost = 0.10
	locationBoost = 0.05
)

// CheckDuplicates flags whether a candidate name would duplicate an existing
// active row, so the UI can offer a merge instead of creating redundant
// stock entries.
func (s *inventoryService) CheckDuplicates(ctx context.Context, userID string, req domain.CheckDuplicatesRequest) (domain.CheckDuplicatesResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.CheckDuplicatesResponse{}, domain.ErrEmptyItemName
	}

	items, err := s.inventoryRepository.GetActiveItems(ctx, userID)
	if err != nil {
		return domain.CheckDuplicatesResponse{}, err
	}

	threshold := defaultDuplicateThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	return checkForDuplicates(req.Name, req.Category, req.StorageLocation, items, threshold), nil
}

func checkForDuplicates(name, category, location string, items []entities.InventoryItem, threshold float64) domain.CheckDuplicatesResponse {
	normalized := textmatch.NormalizeName(name)

	// An exact normalized match short-circuits scoring entirely.
	for _, item := range items {
		if !item.IsActive {
			continue
		}
		if textmatch.NormalizeName(item.Name) == normalized {
			return domain.CheckDuplicatesResponse{
				IsDuplicate: true,
				MatchType:   domain.MatchTypeExact,
				Confidence:  domain.ConfidenceHigh,
				Matches:     []domain.DuplicateMatch{toDuplicateMatch(item, 1)},
			}
		}
	}

	var matches []domain.DuplicateMatch
	for _, item := range items {
		if !item.IsActive {
			continue
		}
		score := textmatch.Similarity(name, item.Name)
		if score == 0 {
			continue
		}
		if category != "" && strings.EqualFold(category, item.Category) {
			score += categoryBoost
		}
		if location != "" && strings.EqualFold(location, item.StorageLocation) {
			score += locationBoost
		}
		score = math.Min(score, 1)
		if score >= threshold {
			matches = append(matches, toDuplicateMatch(item, score))
		}
	}

	if len(matches) == 0 {
		return domain.CheckDuplicatesResponse{
			MatchType: domain.MatchTypeNone,
			Matches:   []domain.DuplicateMatch{},
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return strings.ToLower(matches[i].Name) < strings.ToLower(matches[j].Name)
	})

	confidence := domain.ConfidenceMedium
	if matches[0].Score >= 0.9 {
		confidence = domain.ConfidenceHigh
	}

	return domain.CheckDuplicatesResponse{
		IsDuplicate: true,
		MatchType:   domain.MatchTypeSimilar,
		Confidence:  confidence,
		Matches:     matches,
	}
}

// FindBestMatchForMerge picks a single merge target using a stricter
// threshold than the duplicate warning.
func (s *inventoryService) FindBestMatchForMerge(ctx context.Context, userID string, name string) (*domain.DuplicateMatch, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyItemName
	}

	items, err := s.inventoryRepository.GetActiveItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := checkForDuplicates(name, "", "", items, mergeThreshold)
	if result.MatchType == domain.MatchTypeNone || len(result.Matches) == 0 {
		return nil, nil
	}
	return &result.Matches[0], nil
}

// SuggestMergedQuantity proposes the quantity a merge would produce. Merging
// only ever sums identical units; cross-unit merges are never attempted.
func (s *inventoryService) SuggestMergedQuantity(ctx context.Context, userID string, name string, quantity float64, unit string) (domain.MergeSuggestion, error) {
	if quantity < 0 {
		return domain.MergeSuggestion{}, domain.ErrInvalidQuantity
	}

	target, err := s.FindBestMatchForMerge(ctx, userID, name)
	if err != nil {
		return domain.MergeSuggestion{}, err
	}
	if target == nil {
		return domain.MergeSuggestion{CanMerge: false}, nil
	}

	if units.Normalize(unit) != units.Normalize(target.Unit) {
		return domain.MergeSuggestion{CanMerge: false, Target: target}, nil
	}

	return domain.MergeSuggestion{
		CanMerge:       true,
		Target:         target,
		MergedQuantity: units.Round2(target.Quantity + quantity),
		Unit:           units.Normalize(target.Unit),
	}, nil
}

func toDuplicateMatch(item entities.InventoryItem, score float64) domain.DuplicateMatch {
	return domain.DuplicateMatch{
		ItemID:          item.ID.String(),
		Name:            item.Name,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		Category:        item.Category,
		StorageLocation: item.StorageLocation,
		Score:           math.Round(score*100) / 100,
	}
}
