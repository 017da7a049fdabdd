package store

import (
	"testing"

	"stockroom/internal/model"
)

func seedQueryProducts(t *testing.T, s *Store) {
	t.Helper()
	inputs := []model.ProductInput{
		{Name: "Whole Milk", Category: "Dairy & Eggs", SKU: "DA0001", Supplier: "Dairy Express"},
		{Name: "Sourdough Bread", Category: "Bakery", SKU: "BA0002", Supplier: "Baker's Best"},
		{Name: "Cheddar Cheese", Category: "Dairy & Eggs", SKU: "DA0003", Supplier: "Dairy Express"},
		{Name: "Frozen Peas", Category: "Frozen Foods", SKU: "FR0004", Supplier: "Frozen Delights"},
	}
	for _, in := range inputs {
		if _, err := s.AddProduct(in); err != nil {
			t.Fatalf("AddProduct: %v", err)
		}
	}
}

func TestSearchEmptyTermReturnsAllInOrder(t *testing.T) {
	s := newTestStore()
	seedQueryProducts(t, s)

	results := s.SearchProducts("")
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if results[0].Name != "Whole Milk" || results[3].Name != "Frozen Peas" {
		t.Error("expected original insertion order")
	}
}

func TestSearchMatchesAllFields(t *testing.T) {
	s := newTestStore()
	seedQueryProducts(t, s)

	tests := []struct {
		term string
		want int
	}{
		{"milk", 1},       // name, case-insensitive
		{"da00", 2},       // sku substring
		{"dairy", 2},      // category; "Dairy Express" supplier rows overlap
		{"baker's", 1},    // supplier
		{"ZZZ", 0},        // no match
		{"FROZEN", 1},     // category and supplier match the same product once
	}

	for _, tt := range tests {
		got := s.SearchProducts(tt.term)
		if len(got) != tt.want {
			t.Errorf("SearchProducts(%q) returned %d results, want %d", tt.term, len(got), tt.want)
		}
	}
}

func TestFilterProducts(t *testing.T) {
	s := newTestStore()
	seedQueryProducts(t, s)

	if got := s.FilterProducts("dairy & eggs"); len(got) != 2 {
		t.Errorf("expected 2 dairy products, got %d", len(got))
	}
	if got := s.FilterProducts("Bakery"); len(got) != 1 {
		t.Errorf("expected 1 bakery product, got %d", len(got))
	}
	if got := s.FilterProducts("all"); len(got) != 4 {
		t.Errorf("expected all 4 products for \"all\", got %d", len(got))
	}
	if got := s.FilterProducts(""); len(got) != 4 {
		t.Errorf("expected all 4 products for empty category, got %d", len(got))
	}
	if got := s.FilterProducts("Dairy"); len(got) != 0 {
		t.Errorf("filter is exact-match, got %d results for partial name", len(got))
	}
}
