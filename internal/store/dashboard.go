package store

import (
	"math"
	"sort"

	"stockroom/internal/model"
)

// rebuildDerivedLocked refreshes the dashboard views that are derived wholly
// from the authoritative collections: the two distributions and the recent
// transaction feed. Scalar aggregates are maintained incrementally by the
// mutation operations instead.
func (s *Store) rebuildDerivedLocked() {
	s.dashboard.CategoryCounts = s.categoryCountsLocked()
	s.dashboard.StockDistribution = s.stockDistributionLocked()
	s.dashboard.RecentTransactions = s.recentTransactionsLocked()
}

// Recompute derives the whole dashboard from scratch and persists the
// result. Used after synthesizing sample data, and as the oracle the
// incremental updates must agree with.
func (s *Store) Recompute() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboard = s.computeDashboardLocked()
	return s.persistLocked()
}

// ComputeDashboard returns a full from-scratch derivation of the summary
// without mutating the store.
func (s *Store) ComputeDashboard() model.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.computeDashboardLocked()
}

func (s *Store) computeDashboardLocked() model.Dashboard {
	d := model.Dashboard{}
	d.TotalProducts = len(s.products)
	for _, p := range s.products {
		if p.LowStock() {
			d.LowStockCount++
		}
		d.TotalValue += p.StockValue()
	}
	d.CategoryCounts = s.categoryCountsLocked()
	d.StockDistribution = s.stockDistributionLocked()
	d.RecentTransactions = s.recentTransactionsLocked()
	return d
}

func (s *Store) categoryCountsLocked() []model.NameValue {
	counts := make([]model.NameValue, 0, len(s.categories))
	for _, c := range s.categories {
		counts = append(counts, model.NameValue{Name: c.Name, Value: float64(c.Count)})
	}
	sortDistribution(counts)
	return counts
}

func (s *Store) stockDistributionLocked() []model.NameValue {
	totals := make(map[string]float64, len(s.categories))
	for _, p := range s.products {
		totals[p.Category] += p.StockValue()
	}

	dist := make([]model.NameValue, 0, len(s.categories))
	for _, c := range s.categories {
		dist = append(dist, model.NameValue{Name: c.Name, Value: round2(totals[c.Name])})
	}
	sortDistribution(dist)
	return dist
}

func (s *Store) recentTransactionsLocked() []model.Transaction {
	n := len(s.transactions)
	if n > model.RecentTransactionLimit {
		n = model.RecentTransactionLimit
	}
	recent := make([]model.Transaction, n)
	copy(recent, s.transactions[:n])
	return recent
}

// sortDistribution orders by descending value, with name as a deterministic
// tie-breaker.
func sortDistribution(nv []model.NameValue) {
	sort.Slice(nv, func(i, j int) bool {
		if nv[i].Value != nv[j].Value {
			return nv[i].Value > nv[j].Value
		}
		return nv[i].Name < nv[j].Name
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
