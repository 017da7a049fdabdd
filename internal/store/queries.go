package store

import (
	"strings"

	"stockroom/internal/model"
)

// SearchProducts returns products whose name, SKU, category, or supplier
// contains term, case-insensitively. An empty term returns all products in
// their original order. Barcode lookups funnel through here as free text.
func (s *Store) SearchProducts(term string) []model.Product {
	if term == "" {
		return s.Products()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	lower := strings.ToLower(term)
	var matches []model.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), lower) ||
			strings.Contains(strings.ToLower(p.SKU), lower) ||
			strings.Contains(strings.ToLower(p.Category), lower) ||
			strings.Contains(strings.ToLower(p.Supplier), lower) {
			matches = append(matches, p)
		}
	}
	return matches
}

// FilterProducts returns products whose category matches exactly,
// case-insensitively. "all" or an empty category returns all products.
func (s *Store) FilterProducts(category string) []model.Product {
	if category == "" || strings.EqualFold(category, "all") {
		return s.Products()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []model.Product
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			matches = append(matches, p)
		}
	}
	return matches
}
