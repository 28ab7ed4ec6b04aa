package domain

import "time"

// Order is the immutable record of a completed checkout. Items are
// product snapshots taken at checkout time, so later catalog edits do
// not affect placed orders.
type Order struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Items      []Product `json:"items"`
	TotalCents int64     `json:"totalCents"`
	CreatedAt  time.Time `json:"createdAt"`
}
