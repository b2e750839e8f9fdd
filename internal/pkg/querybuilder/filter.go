// Package querybuilder produces parameterized query descriptors for the
// booking, driver and vehicle resource families. It performs no I/O: callers
// execute the descriptors through the database layer. All values are bound
// positionally, never interpolated into query text.
package querybuilder

import (
	"errors"
	"time"
)

// ErrMissingCompanyScope is returned when a company-scoped filter is
// constructed without a company id.
var ErrMissingCompanyScope = errors.New("company_id is required unless admin view is set")

// Filter describes row visibility and the optional predicates for a query.
// The scope pair (company id, admin view) is only settable through the
// constructors so a scopeless company query cannot be represented.
type Filter struct {
	companyID int64
	adminView bool

	Status   string
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time
}

// NewCompanyFilter creates a filter restricted to a single company.
func NewCompanyFilter(companyID int64) (Filter, error) {
	if companyID <= 0 {
		return Filter{}, ErrMissingCompanyScope
	}
	return Filter{companyID: companyID}, nil
}

// NewAdminFilter creates a filter spanning all companies. Callers must have
// verified the requester's role before building one.
func NewAdminFilter() Filter {
	return Filter{adminView: true}
}

// CompanyID returns the scoped company id. Zero in admin view.
func (f Filter) CompanyID() int64 {
	return f.companyID
}

// AdminView reports whether the filter spans all companies.
func (f Filter) AdminView() bool {
	return f.adminView
}
