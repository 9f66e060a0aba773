package intake

import "github.com/JustJay7/bpso-complaint-intake/internal/config"

// Router maps a department affiliation to its destination tables
type Router struct {
	tables config.Tables
}

// NewRouter creates a router over the configured table names
func NewRouter(tables config.Tables) *Router {
	return &Router{tables: tables}
}

// Tables returns the destination tables for affiliation: the BPSO table
// first, then BCPC, BADAC and VAWC as selected. Matching is exact and each
// table appears once.
func (r *Router) Tables(affiliation string) []string {
	tables := []string{r.tables.BPSO}

	switch affiliation {
	case AffiliationBCPC:
		tables = append(tables, r.tables.BCPC)
	case AffiliationBADAC:
		tables = append(tables, r.tables.BADAC)
	case AffiliationBADACBCPC:
		tables = append(tables, r.tables.BCPC, r.tables.BADAC)
	case AffiliationVAWC:
		tables = append(tables, r.tables.VAWC)
	}

	return dedupe(tables)
}

func dedupe(tables []string) []string {
	seen := make(map[string]struct{}, len(tables))
	out := tables[:0]
	for _, t := range tables {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
