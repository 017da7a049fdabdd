package model

// Category is a derived entity: it exists as a materialized product count
// and is never pruned when the count reaches zero.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
