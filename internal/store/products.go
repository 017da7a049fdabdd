package store

import (
	"stockroom/internal/model"
)

// AddProduct assigns a fresh id and timestamp, appends the product, bumps
// its category count, and updates the dashboard aggregates.
// Duplicate SKUs are permitted.
func (s *Store) AddProduct(input model.ProductInput) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Product{
		ID:           s.newID(),
		Name:         input.Name,
		Category:     input.Category,
		SKU:          input.SKU,
		Price:        input.Price,
		CostPrice:    input.CostPrice,
		Quantity:     input.Quantity,
		ReorderLevel: input.ReorderLevel,
		Supplier:     input.Supplier,
		Location:     input.Location,
		Image:        input.Image,
		Description:  input.Description,
		LastUpdated:  s.now(),
		ExpiryDate:   input.ExpiryDate,
	}
	if p.Quantity < 0 {
		p.Quantity = 0
	}
	if p.ReorderLevel < 0 {
		p.ReorderLevel = 0
	}

	s.products = append(s.products, p)
	s.bumpCategoryLocked(p.Category, 1)

	s.dashboard.TotalProducts++
	s.dashboard.TotalValue += p.StockValue()
	if p.LowStock() {
		s.dashboard.LowStockCount++
	}
	s.rebuildDerivedLocked()

	if err := s.persistLocked(); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// UpdateProduct merges the patch into an existing product and refreshes its
// timestamp. Returns ErrNotFound for an unknown id. Category counts, the
// low-stock count, and the total value are adjusted by the difference
// between the old and new product.
func (s *Store) UpdateProduct(id string, patch model.ProductPatch) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProductLocked(id)
	if idx < 0 {
		return model.Product{}, ErrNotFound
	}

	old := s.products[idx]
	p := old
	applyPatch(&p, patch)
	p.LastUpdated = s.now()
	if p.Quantity < 0 {
		p.Quantity = 0
	}
	if p.ReorderLevel < 0 {
		p.ReorderLevel = 0
	}

	if p.Category != old.Category {
		s.bumpCategoryLocked(old.Category, -1)
		s.bumpCategoryLocked(p.Category, 1)
	}

	if old.LowStock() && !p.LowStock() {
		s.dashboard.LowStockCount--
	} else if !old.LowStock() && p.LowStock() {
		s.dashboard.LowStockCount++
	}
	s.dashboard.TotalValue += p.StockValue() - old.StockValue()

	s.products[idx] = p
	s.rebuildDerivedLocked()

	if err := s.persistLocked(); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// DeleteProduct removes a product and reverses its contribution to the
// category count and dashboard aggregates. Returns ErrNotFound for an
// unknown id.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProductLocked(id)
	if idx < 0 {
		return ErrNotFound
	}

	p := s.products[idx]
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	s.bumpCategoryLocked(p.Category, -1)

	s.dashboard.TotalProducts--
	s.dashboard.TotalValue -= p.StockValue()
	if p.LowStock() {
		s.dashboard.LowStockCount--
	}
	s.rebuildDerivedLocked()

	return s.persistLocked()
}

func applyPatch(p *model.Product, patch model.ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.CostPrice != nil {
		p.CostPrice = *patch.CostPrice
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.ReorderLevel != nil {
		p.ReorderLevel = *patch.ReorderLevel
	}
	if patch.Supplier != nil {
		p.Supplier = *patch.Supplier
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ExpiryDate != nil {
		p.ExpiryDate = patch.ExpiryDate
	}
}
