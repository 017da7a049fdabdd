package db

import (
	"context"
	"reflect"
	"testing"
	"time"

	"stockroom/internal/model"
)

func testModelSnapshot() model.Snapshot {
	date := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return model.Snapshot{
		Products: []model.Product{
			{ID: "p1", Name: "Milk", Category: "Dairy & Eggs", SKU: "DA0001",
				Price: 2.5, CostPrice: 2, Quantity: 10, ReorderLevel: 5,
				Supplier: "Dairy Express", Location: "Cold Storage", LastUpdated: date},
		},
		Categories: []model.Category{{ID: "c1", Name: "Dairy & Eggs", Count: 1}},
		Suppliers:  []model.Supplier{{ID: "s1", Name: "Dairy Express", Contact: "Emily", Email: "e@d.com", Phone: "555"}},
		Transactions: []model.Transaction{
			{ID: "t1", Type: model.TransactionIn, ProductID: "p1", ProductName: "Milk",
				Quantity: 10, Date: date, User: "admin"},
		},
		Dashboard: model.Dashboard{
			TotalProducts: 1, TotalValue: 25,
			CategoryCounts:     []model.NameValue{{Name: "Dairy & Eggs", Value: 1}},
			StockDistribution:  []model.NameValue{{Name: "Dairy & Eggs", Value: 25}},
			RecentTransactions: []model.Transaction{{ID: "t1", Type: model.TransactionIn, ProductID: "p1", ProductName: "Milk", Quantity: 10, Date: date, User: "admin"}},
		},
	}
}

func TestSnapshotSaveLoadRoundTrip(t *testing.T) {
	database := NewTestDB(t)
	ctx := context.Background()

	want := testModelSnapshot()
	if err := SaveSnapshot(ctx, database, want); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, err := LoadSnapshot(ctx, database)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if got == nil {
		t.Fatal("expected snapshot, got nil")
	}
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", *got, want)
	}
}

func TestLoadSnapshotMissing(t *testing.T) {
	database := NewTestDB(t)

	got, err := LoadSnapshot(context.Background(), database)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing snapshot, got %+v", got)
	}
}

func TestSaveSnapshotReplacesBlob(t *testing.T) {
	database := NewTestDB(t)
	ctx := context.Background()

	first := testModelSnapshot()
	SaveSnapshot(ctx, database, first)

	second := first
	second.Dashboard.TotalProducts = 99
	if err := SaveSnapshot(ctx, database, second); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, _ := LoadSnapshot(ctx, database)
	if got.Dashboard.TotalProducts != 99 {
		t.Errorf("expected replaced snapshot, got totalProducts %d", got.Dashboard.TotalProducts)
	}

	var count int
	database.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&count)
	if count != 1 {
		t.Errorf("expected a single snapshot row, got %d", count)
	}
}

func TestSnapshotStoreImplementsSaver(t *testing.T) {
	database := NewTestDB(t)
	snap := &SnapshotStore{DB: database}

	if err := snap.Save(testModelSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadSnapshot(context.Background(), database)
	if err != nil || got == nil {
		t.Fatalf("LoadSnapshot after Save: %v, %v", got, err)
	}
}
