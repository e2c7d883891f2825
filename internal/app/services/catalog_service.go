package services

import (
	"context"
	"sort"
	"strings"

	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/pkg/apperrors"
)

// CatalogService manages the assigned standards and subjects catalogs
type CatalogService struct {
	catalogRepo *repositories.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo *repositories.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// numericPrefix returns the value of the leading digit run of s, or 0 when
// s does not start with a digit.
func numericPrefix(s string) int {
	n := 0
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == 0 {
		return 0
	}
	return n
}

// SortCatalogItems orders catalog names by their numeric prefix ascending,
// breaking ties lexicographically. Names without a numeric prefix sort as
// zero, so "KG" comes before "2" and "9A" before "10".
func SortCatalogItems(items []string) []string {
	sorted := make([]string, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		ni, nj := numericPrefix(sorted[i]), numericPrefix(sorted[j])
		if ni != nj {
			return ni < nj
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

func normalizeItems(items []string) ([]string, error) {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			return nil, apperrors.NewBadRequestError("catalog items must not be blank")
		}
		if seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
	}
	return out, nil
}

// List returns the sorted catalog
func (s *CatalogService) List(ctx context.Context, table string) ([]string, error) {
	items, err := s.catalogRepo.GetAll(ctx, table)
	if err != nil {
		return nil, err
	}
	return SortCatalogItems(items), nil
}

// Assign merges the given items into the catalog and returns the resulting
// sorted set. Items already present are kept once; the operation is
// idempotent.
func (s *CatalogService) Assign(ctx context.Context, table string, items []string) ([]string, error) {
	normalized, err := normalizeItems(items)
	if err != nil {
		return nil, err
	}

	if err := s.catalogRepo.Merge(ctx, table, normalized); err != nil {
		return nil, err
	}

	return s.List(ctx, table)
}

// Remove deletes the given items from the catalog and returns the resulting
// sorted set. If any item is not assigned, nothing is removed and the
// missing items are reported.
func (s *CatalogService) Remove(ctx context.Context, table string, items []string) ([]string, error) {
	normalized, err := normalizeItems(items)
	if err != nil {
		return nil, err
	}

	missing, err := s.catalogRepo.Remove(ctx, table, normalized)
	if err != nil {
		if len(missing) > 0 {
			return nil, apperrors.NewBadRequestError("not assigned: " + strings.Join(missing, ", "))
		}
		return nil, err
	}

	return s.List(ctx, table)
}
