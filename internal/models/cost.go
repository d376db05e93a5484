package models

import "time"

// Cost categories form a closed set. Unknown categories are rejected
// at write time; rows that predate enum enforcement are skipped during
// report aggregation.
const (
	CategoryFood      = "food"
	CategoryHealth    = "health"
	CategoryHousing   = "housing"
	CategorySport     = "sport"
	CategoryEducation = "education"
)

// Categories lists the known cost categories in the canonical order
// used by report bodies.
var Categories = []string{
	CategoryFood,
	CategoryHealth,
	CategoryHousing,
	CategorySport,
	CategoryEducation,
}

// IsValidCategory reports whether category belongs to the closed set.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Cost is a single atomic expense record. Costs are immutable once
// created; they are only removed by the bulk-wipe utility.
type Cost struct {
	ID          int64     `json:"-" db:"id"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	UserID      int64     `json:"userid" db:"userid"`
	Sum         float64   `json:"sum" db:"sum"` // may be negative (refunds)
	Date        time.Time `json:"date" db:"date"`
}
