package querybuilder

import (
	"fmt"
	"strings"
)

// Descriptor is the executable output of the query builder: a row query, the
// matching count query for pagination, and their ordered parameter lists. The
// count predicate is always assembled from the same clauses as the row
// predicate.
type Descriptor struct {
	Query       string
	CountQuery  string
	Params      []interface{}
	CountParams []interface{}
}

// Aggregate is a single-row query with its ordered parameters, used for
// summary and activity feed queries that have no count counterpart.
type Aggregate struct {
	Query  string
	Params []interface{}
}

// Paginate appends LIMIT/OFFSET to the row query using the next available
// parameter positions. The count query is left untouched. Page numbers start
// at 1; non-positive inputs fall back to the first page and a default size.
func Paginate(d Descriptor, page, perPage int) Descriptor {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	next := len(d.Params) + 1
	paged := d
	paged.Query = fmt.Sprintf("%s LIMIT $%d OFFSET $%d", d.Query, next, next+1)
	paged.Params = append(append([]interface{}{}, d.Params...), perPage, (page-1)*perPage)
	return paged
}

// predicateSet accumulates independent WHERE clauses and their bound values.
// Each optional filter contributes one clause ANDed with the rest; absent
// filters contribute nothing.
type predicateSet struct {
	clauses []string
	params  []interface{}
}

// add appends a clause, replacing every '?' with the next parameter position
// and binding one value. A clause may reference its value more than once.
func (p *predicateSet) add(clause string, value interface{}) {
	pos := len(p.params) + 1
	p.clauses = append(p.clauses, strings.ReplaceAll(clause, "?", fmt.Sprintf("$%d", pos)))
	p.params = append(p.params, value)
}

// where renders the accumulated clauses, or an empty string when none exist.
func (p *predicateSet) where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.clauses, " AND ")
}

// buildPredicates assembles the shared predicate set for a filter. The
// company scope, when present, is always the first bound parameter.
// searchClause must reference its single bound value with '?' placeholders;
// the same position is reused for every searched column.
func buildPredicates(f Filter, statusColumn, searchClause string) *predicateSet {
	p := &predicateSet{}

	if !f.AdminView() {
		p.add("company_id = ?", f.CompanyID())
	}
	if f.Status != "" {
		p.add(statusColumn+" = ?", f.Status)
	}
	if f.Search != "" {
		p.add(searchClause, "%"+f.Search+"%")
	}
	if f.DateFrom != nil {
		p.add("created_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		p.add("created_at <= ?", *f.DateTo)
	}
	return p
}

// descriptorFor renders the row query and count query from one predicate set
// so that the two predicates cannot drift.
func descriptorFor(projection, table, orderBy string, p *predicateSet) Descriptor {
	where := p.where()
	params := append([]interface{}{}, p.params...)
	countParams := append([]interface{}{}, p.params...)

	return Descriptor{
		Query:       fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s", projection, table, where, orderBy),
		CountQuery:  fmt.Sprintf("SELECT COUNT(*) FROM %s%s", table, where),
		Params:      params,
		CountParams: countParams,
	}
}
