package models

import "time"

// FootprintRecordDB represents one carbon footprint snapshot in the database.
// Records are immutable once written: total is the value computed at creation
// time and is never recalculated.
type FootprintRecordDB struct {
	ID             int64     `json:"id" db:"id"`                         // Primary key
	UserID         int64     `json:"user_id" db:"user_id"`               // Owning user
	Transportation float64   `json:"transportation" db:"transportation"` // km per day
	Energy         float64   `json:"energy" db:"energy"`                 // kWh per month
	Waste          float64   `json:"waste" db:"waste"`                   // kg per week
	Total          float64   `json:"total" db:"total"`                   // Derived score, snapshot at creation
	Description    *string   `json:"description" db:"description"`       // Optional free text
	Date           time.Time `json:"date" db:"date"`                     // Calendar date of the entry
	CreatedAt      time.Time `json:"created_at" db:"created_at"`         // Insertion timestamp
}

// FootprintSummary holds aggregate statistics over a user's footprint records.
// All averages and extrema are nil when TotalEntries is zero; callers must
// check the count before reading them.
type FootprintSummary struct {
	TotalEntries      int64    `json:"total_entries" db:"total_entries"`
	AvgTransportation *float64 `json:"avg_transportation" db:"avg_transportation"`
	AvgEnergy         *float64 `json:"avg_energy" db:"avg_energy"`
	AvgWaste          *float64 `json:"avg_waste" db:"avg_waste"`
	AvgTotal          *float64 `json:"avg_total" db:"avg_total"`
	MinTotal          *float64 `json:"min_total" db:"min_total"`
	MaxTotal          *float64 `json:"max_total" db:"max_total"`
}

// MonthlyTrend is one calendar-month bucket of a user's footprint history.
type MonthlyTrend struct {
	Month   string  `json:"month" db:"month"` // YYYY-MM
	Average float64 `json:"average" db:"average"`
	Total   float64 `json:"total" db:"total"`
}
