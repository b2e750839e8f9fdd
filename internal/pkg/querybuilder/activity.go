package querybuilder

import "fmt"

// BuildActivityQuery returns the merged activity feed: driver registrations,
// vehicle registrations and booking creations unioned into one stream sorted
// most-recent-first. Every branch shares the same bound scope and date-window
// parameters. Booking lifecycle states are mapped onto the active/pending/
// inactive vocabulary used by drivers and vehicles so the feed renders status
// with one convention.
func BuildActivityQuery(f Filter, limit int) Aggregate {
	if limit < 1 {
		limit = 50
	}

	p := summaryPredicates(f)
	where := p.where()

	query := fmt.Sprintf(`SELECT type, id_name, status, company_id, created_at FROM (
		SELECT 'driver' AS type,
			license_number || ' - ' || first_name || ' ' || last_name AS id_name,
			status::text AS status, company_id, created_at
		FROM drivers%[1]s
		UNION ALL
		SELECT 'vehicle' AS type,
			plate_number || ' - ' || make || ' ' || model AS id_name,
			status::text AS status, company_id, created_at
		FROM vehicles%[1]s
		UNION ALL
		SELECT 'booking' AS type,
			voucher || ' - ' || passenger_name AS id_name,
			CASE
				WHEN booking_status IN ('done_service', 'completed', 'cancelled') THEN 'inactive'
				WHEN booking_status IN ('confirmed', 'on_going', 'in_progress', 'ongoing') THEN 'active'
				ELSE 'pending'
			END AS status, company_id, created_at
		FROM bookings%[1]s
	) activity ORDER BY created_at DESC LIMIT $%[2]d`, where, len(p.params)+1)

	params := append(append([]interface{}{}, p.params...), limit)
	return Aggregate{Query: query, Params: params}
}
