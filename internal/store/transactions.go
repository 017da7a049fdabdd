package store

import (
	"fmt"

	"stockroom/internal/model"
)

// AddTransaction records a stock movement. The transaction is always
// prepended to the log, even when its product id matches nothing; only the
// product-side effects are skipped in that case.
//
// Stock is clamped at zero: an "out" transaction can never drive quantity
// negative. The total-value aggregate follows the requested (unclamped)
// delta, tracking the value movement the transaction asked for.
func (s *Store) AddTransaction(input model.TransactionInput) (model.Transaction, error) {
	if input.Type != model.TransactionIn && input.Type != model.TransactionOut {
		return model.Transaction{}, fmt.Errorf("invalid transaction type %q", input.Type)
	}
	if input.Quantity <= 0 {
		return model.Transaction{}, fmt.Errorf("quantity must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProductLocked(input.ProductID)

	name := input.ProductName
	if name == "" && idx >= 0 {
		name = s.products[idx].Name
	}

	tx := model.Transaction{
		ID:          s.newID(),
		Type:        input.Type,
		ProductID:   input.ProductID,
		ProductName: name,
		Quantity:    input.Quantity,
		Date:        s.now(),
		User:        input.User,
		Notes:       input.Notes,
	}
	s.transactions = append([]model.Transaction{tx}, s.transactions...)

	if idx >= 0 {
		p := &s.products[idx]
		delta := tx.Delta()

		newQuantity := p.Quantity + delta
		if newQuantity < 0 {
			newQuantity = 0
		}

		wasLow := p.LowStock()
		s.dashboard.TotalValue += p.Price * float64(delta)

		p.Quantity = newQuantity
		p.LastUpdated = tx.Date

		if wasLow && !p.LowStock() {
			s.dashboard.LowStockCount--
		} else if !wasLow && p.LowStock() {
			s.dashboard.LowStockCount++
		}
	}

	s.rebuildDerivedLocked()

	if err := s.persistLocked(); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}
