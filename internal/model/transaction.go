package model

import "time"

// Transaction directions.
const (
	TransactionIn  = "in"
	TransactionOut = "out"
)

// Transaction is an immutable stock movement record. The log is append-only,
// kept most-recent-first.
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Date        time.Time `json:"date"`
	User        string    `json:"user"`
	Notes       string    `json:"notes,omitempty"`
}

// Delta is the signed stock change: positive for "in", negative for "out".
func (t Transaction) Delta() int {
	if t.Type == TransactionOut {
		return -t.Quantity
	}
	return t.Quantity
}

// TransactionInput holds the caller-supplied fields for a new transaction.
// ID and Date are assigned by the store.
type TransactionInput struct {
	Type        string `json:"type"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	User        string `json:"user"`
	Notes       string `json:"notes,omitempty"`
}
