package models

import "time"

// User carries the denormalized running total of all cost items
// recorded for the user. The total is maintained incrementally by
// the ledger update on every cost insertion and is never recomputed
// from the costs table on the read path.
type User struct {
	ID            int64      `json:"id" example:"64209"`          // Numeric user ID, unique
	FirstName     string     `json:"first_name" example:"Johnny"` // User first name
	LastName      string     `json:"last_name" example:"Bravo"`   // User last name
	Birthday      *time.Time `json:"birthday,omitempty"`
	MaritalStatus string     `json:"marital_status,omitempty"`
	Total         float64    `json:"total"` // Running sum of all cost items
}
