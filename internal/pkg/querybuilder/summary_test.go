package querybuilder

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummaryQueriesScoped(t *testing.T) {
	f, err := NewCompanyFilter(11)
	require.NoError(t, err)

	set := BuildSummaryQueries(f)

	assert.Contains(t, set.Drivers.Query, "FROM drivers WHERE company_id = $1")
	assert.Contains(t, set.Vehicles.Query, "FROM vehicles WHERE company_id = $1")
	assert.Contains(t, set.Bookings.Query, "FROM bookings WHERE company_id = $1")

	// scoped view splits headcount on the ownership columns
	assert.Contains(t, set.Drivers.Query, "type = 'regular'")
	assert.Contains(t, set.Vehicles.Query, "ownership = 'company'")

	for _, agg := range []Aggregate{set.Drivers, set.Vehicles, set.Bookings} {
		assert.Equal(t, []interface{}{int64(11)}, agg.Params)
	}
}

func TestBuildSummaryQueriesAdmin(t *testing.T) {
	set := BuildSummaryQueries(NewAdminFilter())

	// no company predicate and no ownership split in admin view
	assert.NotContains(t, set.Drivers.Query, "company_id")
	assert.Contains(t, set.Drivers.Query, "COUNT(*) AS regular, 0 AS subcon")
	assert.Contains(t, set.Vehicles.Query, "COUNT(*) AS regular, 0 AS subcon")
	assert.Empty(t, set.Drivers.Params)
	assert.Empty(t, set.Bookings.Params)
}

func TestBuildSummaryQueriesDateWindow(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	f, err := NewCompanyFilter(4)
	require.NoError(t, err)
	f.DateFrom = &from
	f.Status = "active" // status never applies to aggregates
	f.Search = "Juan"   // search never applies to aggregates

	set := BuildSummaryQueries(f)

	assert.Contains(t, set.Bookings.Query, "created_at >= $2")
	assert.Equal(t, []interface{}{int64(4), from}, set.Bookings.Params)
	assert.NotContains(t, set.Bookings.Query, "ILIKE")
}

func TestBookingSummaryBuckets(t *testing.T) {
	set := BuildSummaryQueries(NewAdminFilter())

	q := set.Bookings.Query
	assert.Contains(t, q, "booking_status IN ('done_service', 'completed')) AS completed")
	assert.Contains(t, q, "booking_status IN ('request', 'confirmed', 'pending')) AS pending")
	assert.Contains(t, q, "booking_status = 'cancelled') AS cancelled")
	assert.Contains(t, q, "booking_status IN ('request', 'confirmed', 'on_going', 'in_progress', 'ongoing', 'pending')) AS active")
	assert.Contains(t, q, "payment_status = 'paid'), 0) AS paid_revenue")
	assert.Contains(t, q, "payment_status = 'pending'), 0) AS pending_revenue")
}

func TestBuildActivityQuery(t *testing.T) {
	t.Run("scoped feed reuses the company parameter in every branch", func(t *testing.T) {
		f, err := NewCompanyFilter(8)
		require.NoError(t, err)

		agg := BuildActivityQuery(f, 30)

		assert.Equal(t, 3, strings.Count(agg.Query, "company_id = $1"))
		assert.Contains(t, agg.Query, "LIMIT $2")
		assert.Equal(t, []interface{}{int64(8), 30}, agg.Params)
	})

	t.Run("all three entity types are merged", func(t *testing.T) {
		agg := BuildActivityQuery(NewAdminFilter(), 10)

		assert.Contains(t, agg.Query, "'driver' AS type")
		assert.Contains(t, agg.Query, "'vehicle' AS type")
		assert.Contains(t, agg.Query, "'booking' AS type")
		assert.Contains(t, agg.Query, "ORDER BY created_at DESC")
	})

	t.Run("booking statuses map onto the shared vocabulary", func(t *testing.T) {
		agg := BuildActivityQuery(NewAdminFilter(), 10)

		assert.Contains(t, agg.Query, "WHEN booking_status IN ('done_service', 'completed', 'cancelled') THEN 'inactive'")
		assert.Contains(t, agg.Query, "WHEN booking_status IN ('confirmed', 'on_going', 'in_progress', 'ongoing') THEN 'active'")
		assert.Contains(t, agg.Query, "ELSE 'pending'")
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		agg := BuildActivityQuery(NewAdminFilter(), 0)
		assert.Equal(t, []interface{}{50}, agg.Params)
	})
}
