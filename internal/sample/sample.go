// Package sample synthesizes a starter dataset for first runs, when no
// persisted snapshot exists yet. The shape is fixed; values come from an
// injectable random source so tests can pin a seed.
package sample

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"stockroom/internal/model"
)

// Default dataset sizes.
const (
	DefaultProducts     = 50
	DefaultTransactions = 100
)

var categories = []string{
	"Fruits & Vegetables",
	"Dairy & Eggs",
	"Bakery",
	"Meat & Seafood",
	"Frozen Foods",
	"Beverages",
	"Snacks",
	"Canned Goods",
	"Household",
	"Personal Care",
}

var suppliers = []model.Supplier{
	{Name: "Fresh Farms Inc.", Contact: "John Smith", Email: "john@freshfarms.com", Phone: "555-1234"},
	{Name: "Dairy Express", Contact: "Emily Johnson", Email: "emily@dairyexpress.com", Phone: "555-2345"},
	{Name: "Baker's Best", Contact: "Michael Brown", Email: "michael@bakersbest.com", Phone: "555-3456"},
	{Name: "Sea Foods Co.", Contact: "Sarah Wilson", Email: "sarah@seafoods.com", Phone: "555-4567"},
	{Name: "Frozen Delights", Contact: "David Lee", Email: "david@frozendelights.com", Phone: "555-5678"},
}

var locations = []string{
	"Aisle 1", "Aisle 2", "Aisle 3", "Aisle 4", "Aisle 5",
	"Cold Storage", "Freezer", "Warehouse", "Display",
}

var users = []string{"Admin", "Store Manager", "Inventory Clerk", "Sales Associate"}

// Generator produces synthetic inventory data.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator backed by rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Snapshot synthesizes a full dataset. The dashboard is left zero; callers
// derive it with a full recompute.
func (g *Generator) Snapshot(productCount, transactionCount int) model.Snapshot {
	products := g.products(productCount)
	return model.Snapshot{
		Products:     products,
		Categories:   deriveCategories(products),
		Suppliers:    g.suppliers(),
		Transactions: g.transactions(products, transactionCount),
	}
}

func (g *Generator) products(count int) []model.Product {
	now := time.Now()
	yearAgo := now.AddDate(-1, 0, 0)

	products := make([]model.Product, 0, count)
	for i := 0; i < count; i++ {
		category := categories[g.rng.Intn(len(categories))]
		supplier := suppliers[g.rng.Intn(len(suppliers))]

		costPrice := float64(g.intBetween(1, 50))
		markup := 1 + float64(g.intBetween(10, 40))/100
		price := float64(int(costPrice*markup*100+0.5)) / 100

		p := model.Product{
			ID:           uuid.NewString(),
			Name:         fmt.Sprintf("Sample %s %d", category, i+1),
			Category:     category,
			SKU:          skuFor(category, i),
			Price:        price,
			CostPrice:    costPrice,
			Quantity:     g.intBetween(0, 100),
			ReorderLevel: g.intBetween(10, 20),
			Supplier:     supplier.Name,
			Location:     locations[g.rng.Intn(len(locations))],
			Description:  fmt.Sprintf("Description for Sample %s %d", category, i+1),
			LastUpdated:  g.dateBetween(yearAgo, now),
		}
		if g.rng.Float64() > 0.5 {
			expiry := g.dateBetween(now, now.AddDate(1, 0, 0))
			p.ExpiryDate = &expiry
		}
		products = append(products, p)
	}
	return products
}

func (g *Generator) suppliers() []model.Supplier {
	out := make([]model.Supplier, len(suppliers))
	for i, s := range suppliers {
		s.ID = uuid.NewString()
		out[i] = s
	}
	return out
}

func (g *Generator) transactions(products []model.Product, count int) []model.Transaction {
	now := time.Now()
	yearAgo := now.AddDate(-1, 0, 0)

	transactions := make([]model.Transaction, 0, count)
	for i := 0; i < count; i++ {
		product := products[g.rng.Intn(len(products))]

		direction := model.TransactionIn
		verb := "Restocked"
		if g.rng.Float64() > 0.5 {
			direction = model.TransactionOut
			verb = "Sold"
		}

		quantity := g.intBetween(1, 20)
		tx := model.Transaction{
			ID:          uuid.NewString(),
			Type:        direction,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    quantity,
			Date:        g.dateBetween(yearAgo, now),
			User:        users[g.rng.Intn(len(users))],
		}
		if g.rng.Float64() > 0.7 {
			tx.Notes = fmt.Sprintf("%s %d units", verb, quantity)
		}
		transactions = append(transactions, tx)
	}

	// Log is kept most-recent-first.
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	return transactions
}

func (g *Generator) intBetween(min, max int) int {
	return g.rng.Intn(max-min+1) + min
}

func (g *Generator) dateBetween(start, end time.Time) time.Time {
	span := end.Sub(start)
	return start.Add(time.Duration(g.rng.Int63n(int64(span))))
}

func deriveCategories(products []model.Product) []model.Category {
	counts := make(map[string]int)
	var order []string
	for _, p := range products {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	out := make([]model.Category, 0, len(order))
	for _, name := range order {
		out = append(out, model.Category{ID: uuid.NewString(), Name: name, Count: counts[name]})
	}
	return out
}

func skuFor(category string, n int) string {
	prefix := strings.ToUpper(category[:2])
	return fmt.Sprintf("%s%04d", prefix, n)
}
