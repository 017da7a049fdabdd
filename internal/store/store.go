// Package store holds the authoritative inventory collections (products,
// categories, suppliers, transactions) and a derived dashboard summary that
// is kept consistent with them on every mutation. All mutation goes through
// the store; the full state is persisted as one snapshot after each change.
package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"stockroom/internal/model"
)

// ErrNotFound is returned when an operation references an unknown product id.
var ErrNotFound = errors.New("product not found")

// Snapshotter persists the full store state. Save replaces the whole
// snapshot atomically; a failed save leaves the previous snapshot intact.
type Snapshotter interface {
	Save(model.Snapshot) error
}

// Store is the in-memory inventory store. A single writer mutates it through
// the operation methods; readers always observe consistent copies.
type Store struct {
	mu sync.RWMutex

	products     []model.Product
	categories   []model.Category
	suppliers    []model.Supplier
	transactions []model.Transaction
	dashboard    model.Dashboard

	loading bool

	snap Snapshotter

	// Injectable for tests.
	now   func() time.Time
	newID func() string
}

// New creates an empty store that persists through snap.
// A nil snap disables persistence.
func New(snap Snapshotter) *Store {
	return &Store{
		snap:    snap,
		loading: true,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// FromSnapshot creates a store initialized from a previously persisted
// snapshot. The persisted dashboard is trusted as-is so that a save/load
// cycle reproduces identical state.
func FromSnapshot(snapshot model.Snapshot, snap Snapshotter) *Store {
	s := New(snap)
	s.products = slices.Clone(snapshot.Products)
	s.categories = slices.Clone(snapshot.Categories)
	s.suppliers = slices.Clone(snapshot.Suppliers)
	s.transactions = slices.Clone(snapshot.Transactions)
	s.dashboard = cloneDashboard(snapshot.Dashboard)
	return s
}

// FinishLoading marks initialization as complete.
func (s *Store) FinishLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
}

// Loading reports whether the store is still initializing.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Products returns a copy of all products in insertion order.
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

// Categories returns a copy of all categories, including zero-count ones.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

// Suppliers returns a copy of the supplier reference list.
func (s *Store) Suppliers() []model.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.suppliers)
}

// Transactions returns a copy of the transaction log, most recent first.
func (s *Store) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.transactions)
}

// Dashboard returns a copy of the derived summary.
func (s *Store) Dashboard() model.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDashboard(s.dashboard)
}

// GetProduct returns a product by id.
func (s *Store) GetProduct(id string) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.findProductLocked(id)
	if idx < 0 {
		return model.Product{}, ErrNotFound
	}
	return s.products[idx], nil
}

// Snapshot returns a deep copy of the full state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() model.Snapshot {
	return model.Snapshot{
		Products:     slices.Clone(s.products),
		Categories:   slices.Clone(s.categories),
		Suppliers:    slices.Clone(s.suppliers),
		Transactions: slices.Clone(s.transactions),
		Dashboard:    cloneDashboard(s.dashboard),
	}
}

// persistLocked serializes the full state to the snapshotter. Storage
// failures propagate to the caller of the mutating operation.
func (s *Store) persistLocked() error {
	if s.snap == nil {
		return nil
	}
	if err := s.snap.Save(s.snapshotLocked()); err != nil {
		return fmt.Errorf("persisting snapshot: %w", err)
	}
	return nil
}

func (s *Store) findProductLocked(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// bumpCategoryLocked adjusts a category's product count, flooring at zero.
// A new category is created on first use; zero-count categories are kept.
func (s *Store) bumpCategoryLocked(name string, delta int) {
	for i := range s.categories {
		if s.categories[i].Name == name {
			s.categories[i].Count += delta
			if s.categories[i].Count < 0 {
				s.categories[i].Count = 0
			}
			return
		}
	}
	if delta > 0 {
		s.categories = append(s.categories, model.Category{
			ID:    s.newID(),
			Name:  name,
			Count: delta,
		})
	}
}

func cloneDashboard(d model.Dashboard) model.Dashboard {
	d.CategoryCounts = slices.Clone(d.CategoryCounts)
	d.StockDistribution = slices.Clone(d.StockDistribution)
	d.RecentTransactions = slices.Clone(d.RecentTransactions)
	return d
}
