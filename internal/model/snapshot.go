package model

// Snapshot is the full serialized store state, written as a single JSON blob
// under one key after every mutation.
type Snapshot struct {
	Products     []Product     `json:"products"`
	Categories   []Category    `json:"categories"`
	Suppliers    []Supplier    `json:"suppliers"`
	Transactions []Transaction `json:"transactions"`
	Dashboard    Dashboard     `json:"dashboard"`
}
