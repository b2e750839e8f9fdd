package querybuilder

import "fmt"

// SummarySet holds the aggregate queries feeding the dashboard summary
// cards, one per resource family.
type SummarySet struct {
	Drivers  Aggregate
	Vehicles Aggregate
	Bookings Aggregate
}

// BuildSummaryQueries returns total/active/pending/inactive aggregates for
// drivers and vehicles and lifecycle/revenue aggregates for bookings. Status
// and search filters do not apply to aggregates; the company scope and date
// window do.
//
// The regular/subcon split is computed from the ownership columns in a
// company-scoped view. In admin view there is no cross-company ownership
// split, so everything counts as the primary category and subcon is zero.
func BuildSummaryQueries(f Filter) SummarySet {
	return SummarySet{
		Drivers:  buildFleetSummary(f, "drivers", "type", "regular"),
		Vehicles: buildFleetSummary(f, "vehicles", "ownership", "company"),
		Bookings: buildBookingSummary(f),
	}
}

func buildFleetSummary(f Filter, table, splitColumn, primaryValue string) Aggregate {
	split := "COUNT(*) AS regular, 0 AS subcon"
	if !f.AdminView() {
		split = fmt.Sprintf(
			"COUNT(*) FILTER (WHERE %[1]s = '%[2]s') AS regular, COUNT(*) FILTER (WHERE %[1]s <> '%[2]s') AS subcon",
			splitColumn, primaryValue)
	}

	p := summaryPredicates(f)
	query := fmt.Sprintf(`SELECT COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'active') AS active,
		COUNT(*) FILTER (WHERE status = 'pending') AS pending,
		COUNT(*) FILTER (WHERE status = 'inactive') AS inactive,
		%s
	FROM %s%s`, split, table, p.where())

	return Aggregate{Query: query, Params: p.params}
}

func buildBookingSummary(f Filter) Aggregate {
	p := summaryPredicates(f)
	// Each filter lists the legacy spellings alongside the canonical ones so
	// rows written by the old UI land in the right bucket.
	query := fmt.Sprintf(`SELECT COUNT(*) AS total,
		COUNT(*) FILTER (WHERE booking_status IN ('done_service', 'completed')) AS completed,
		COUNT(*) FILTER (WHERE booking_status IN ('request', 'confirmed', 'pending')) AS pending,
		COUNT(*) FILTER (WHERE booking_status = 'cancelled') AS cancelled,
		COUNT(*) FILTER (WHERE booking_status IN ('request', 'confirmed', 'on_going', 'in_progress', 'ongoing', 'pending')) AS active,
		COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'paid'), 0) AS paid_revenue,
		COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'pending'), 0) AS pending_revenue
	FROM bookings%s`, p.where())

	return Aggregate{Query: query, Params: p.params}
}

// summaryPredicates binds the scope and date window only.
func summaryPredicates(f Filter) *predicateSet {
	p := &predicateSet{}
	if !f.AdminView() {
		p.add("company_id = ?", f.CompanyID())
	}
	if f.DateFrom != nil {
		p.add("created_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		p.add("created_at <= ?", *f.DateTo)
	}
	return p
}
