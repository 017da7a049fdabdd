package sample

import (
	"math/rand"
	"testing"

	"stockroom/internal/model"
)

func testSnapshot(t *testing.T) model.Snapshot {
	t.Helper()
	g := NewGenerator(rand.New(rand.NewSource(1)))
	return g.Snapshot(DefaultProducts, DefaultTransactions)
}

func TestSnapshotShape(t *testing.T) {
	snap := testSnapshot(t)

	if len(snap.Products) != DefaultProducts {
		t.Errorf("expected %d products, got %d", DefaultProducts, len(snap.Products))
	}
	if len(snap.Transactions) != DefaultTransactions {
		t.Errorf("expected %d transactions, got %d", DefaultTransactions, len(snap.Transactions))
	}
	if len(snap.Suppliers) != 5 {
		t.Errorf("expected 5 suppliers, got %d", len(snap.Suppliers))
	}
}

func TestCategoryCountsConsistent(t *testing.T) {
	snap := testSnapshot(t)

	sum := 0
	for _, c := range snap.Categories {
		sum += c.Count
	}
	if sum != len(snap.Products) {
		t.Errorf("category counts sum to %d, want %d", sum, len(snap.Products))
	}
}

func TestProductInvariants(t *testing.T) {
	snap := testSnapshot(t)

	for _, p := range snap.Products {
		if p.ID == "" || p.Name == "" || p.SKU == "" {
			t.Errorf("product missing identity fields: %+v", p)
		}
		if p.Quantity < 0 {
			t.Errorf("product %s has negative quantity", p.Name)
		}
		if p.Price < p.CostPrice {
			t.Errorf("product %s priced below cost: %v < %v", p.Name, p.Price, p.CostPrice)
		}
	}
}

func TestTransactionsSortedNewestFirst(t *testing.T) {
	snap := testSnapshot(t)

	for i := 1; i < len(snap.Transactions); i++ {
		if snap.Transactions[i].Date.After(snap.Transactions[i-1].Date) {
			t.Fatalf("transactions out of order at index %d", i)
		}
	}
}

func TestTransactionsReferenceProducts(t *testing.T) {
	snap := testSnapshot(t)

	ids := make(map[string]bool, len(snap.Products))
	for _, p := range snap.Products {
		ids[p.ID] = true
	}
	for _, tx := range snap.Transactions {
		if !ids[tx.ProductID] {
			t.Errorf("transaction %s references unknown product %s", tx.ID, tx.ProductID)
		}
		if tx.Type != model.TransactionIn && tx.Type != model.TransactionOut {
			t.Errorf("transaction %s has invalid type %q", tx.ID, tx.Type)
		}
	}
}

func TestSeededGeneratorDeterministicShape(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(42))).Snapshot(10, 20)
	b := NewGenerator(rand.New(rand.NewSource(42))).Snapshot(10, 20)

	// IDs differ (uuid), but the seeded value stream is identical.
	for i := range a.Products {
		if a.Products[i].Name != b.Products[i].Name ||
			a.Products[i].Quantity != b.Products[i].Quantity ||
			a.Products[i].Price != b.Products[i].Price {
			t.Fatalf("seeded runs diverged at product %d", i)
		}
	}
}
