package models

import "time"

// ReportItem is a single cost as it appears inside a monthly report:
// the sum, its description and the day of month it landed on.
type ReportItem struct {
	Sum         float64 `json:"sum"`
	Description string  `json:"description"`
	Day         int     `json:"day"`
}

// CategoryGroup wraps one category's items. Report bodies are an
// ordered array of single-key groups, one per category in canonical
// order, so the wrapper is a one-entry map.
type CategoryGroup map[string][]ReportItem

// Report is a materialized monthly breakdown for one (user, year,
// month) bucket. It is a derived artifact: at read time its content
// must equal what aggregation over the costs table would produce.
// Staleness is resolved by deletion on the write path, never by
// patching in place.
type Report struct {
	UserID    int64           `json:"userid"`
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	Costs     []CategoryGroup `json:"costs"`
	CreatedAt time.Time       `json:"createdAt"`
}
