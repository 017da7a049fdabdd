package model

import "time"

// Product is a stocked item. JSON tags follow the persisted snapshot layout.
type Product struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	SKU          string     `json:"sku"`
	Price        float64    `json:"price"`
	CostPrice    float64    `json:"costPrice"`
	Quantity     int        `json:"quantity"`
	ReorderLevel int        `json:"reorderLevel"`
	Supplier     string     `json:"supplier"`
	Location     string     `json:"location"`
	Image        string     `json:"image,omitempty"`
	Description  string     `json:"description,omitempty"`
	LastUpdated  time.Time  `json:"lastUpdated"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
}

// LowStock reports whether the product is at or below its reorder level.
func (p Product) LowStock() bool {
	return p.Quantity <= p.ReorderLevel
}

// StockValue is the retail value of the on-hand quantity.
func (p Product) StockValue() float64 {
	return p.Price * float64(p.Quantity)
}

// ProductInput holds the caller-supplied fields for a new product.
// ID and LastUpdated are assigned by the store.
type ProductInput struct {
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	SKU          string     `json:"sku"`
	Price        float64    `json:"price"`
	CostPrice    float64    `json:"costPrice"`
	Quantity     int        `json:"quantity"`
	ReorderLevel int        `json:"reorderLevel"`
	Supplier     string     `json:"supplier"`
	Location     string     `json:"location"`
	Image        string     `json:"image,omitempty"`
	Description  string     `json:"description,omitempty"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
}

// ProductPatch is a partial product update. Nil fields are left unchanged.
type ProductPatch struct {
	Name         *string    `json:"name,omitempty"`
	Category     *string    `json:"category,omitempty"`
	SKU          *string    `json:"sku,omitempty"`
	Price        *float64   `json:"price,omitempty"`
	CostPrice    *float64   `json:"costPrice,omitempty"`
	Quantity     *int       `json:"quantity,omitempty"`
	ReorderLevel *int       `json:"reorderLevel,omitempty"`
	Supplier     *string    `json:"supplier,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Image        *string    `json:"image,omitempty"`
	Description  *string    `json:"description,omitempty"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
}
