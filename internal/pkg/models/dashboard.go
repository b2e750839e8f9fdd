package models

import "time"

// FleetSummary holds aggregate counts for drivers or vehicles. Regular counts
// entities owned by the scoped company, Subcon entities owned elsewhere. In
// admin view there is no ownership split, so Regular carries the full count
// and Subcon is zero.
type FleetSummary struct {
	Total    int `json:"total" db:"total"`
	Active   int `json:"active" db:"active"`
	Pending  int `json:"pending" db:"pending"`
	Inactive int `json:"inactive" db:"inactive"`
	Regular  int `json:"regular" db:"regular"`
	Subcon   int `json:"subcon" db:"subcon"`
}

// BookingSummary holds aggregate booking counts and revenue sums
type BookingSummary struct {
	Total          int     `json:"total" db:"total"`
	Completed      int     `json:"completed" db:"completed"`
	Pending        int     `json:"pending" db:"pending"`
	Cancelled      int     `json:"cancelled" db:"cancelled"`
	Active         int     `json:"active" db:"active"`
	PaidRevenue    float64 `json:"paid_revenue" db:"paid_revenue"`
	PendingRevenue float64 `json:"pending_revenue" db:"pending_revenue"`
}

// DashboardSummary combines the per-resource summaries for the summary cards
type DashboardSummary struct {
	Drivers  FleetSummary   `json:"drivers"`
	Vehicles FleetSummary   `json:"vehicles"`
	Bookings BookingSummary `json:"bookings"`
}

// ActivityEntry is one row of the merged activity feed. Type tags the source
// entity, IDName is the composed human-facing identity (for example
// "DL-1234 - Juan Cruz") and Status is mapped onto the active/pending/inactive
// vocabulary shared by all entity types.
type ActivityEntry struct {
	Type      string    `json:"type" db:"type"`
	IDName    string    `json:"id_name" db:"id_name"`
	Status    string    `json:"status" db:"status"`
	CompanyID int64     `json:"company_id" db:"company_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
