package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

// MatchKey canonicalizes a string for set-overlap comparison: trimmed and
// case-folded. Overlap matching is exact on these keys, not substring; only
// the keyword-search predicate matches substrings.
func MatchKey(s string) string {
	return foldCaser.String(strings.TrimSpace(s))
}

// ResidualPredicate is a filter condition the store cannot evaluate natively,
// applied in-process to normalized records.
type ResidualPredicate interface {
	Name() string
	Matches(rec PropertyRecord) bool
}

// ApplyResidualPredicates keeps the records passing every predicate.
// A record passes a set-overlap predicate when the intersection of the
// selected values and the record's own values is non-empty (OR across the
// selection, not subset).
func ApplyResidualPredicates(records []PropertyRecord, preds []ResidualPredicate) []PropertyRecord {
	if len(preds) == 0 {
		return records
	}

	out := make([]PropertyRecord, 0, len(records))
	for _, rec := range records {
		passes := true
		for _, p := range preds {
			if !p.Matches(rec) {
				passes = false
				break
			}
		}
		if passes {
			out = append(out, rec)
		}
	}
	return out
}

type bedroomsOverlapPredicate struct {
	selected map[float64]struct{}
}

func newBedroomsOverlapPredicate(values []float64) ResidualPredicate {
	selected := make(map[float64]struct{}, len(values))
	for _, v := range values {
		selected[v] = struct{}{}
	}
	return &bedroomsOverlapPredicate{selected: selected}
}

func (p *bedroomsOverlapPredicate) Name() string { return FieldBedrooms }

func (p *bedroomsOverlapPredicate) Matches(rec PropertyRecord) bool {
	for _, v := range rec.Bedrooms {
		if _, ok := p.selected[v]; ok {
			return true
		}
	}
	return false
}

type stringSetOverlapPredicate struct {
	name     string
	selected map[string]struct{}
	field    func(PropertyRecord) []string
}

func newStringSetOverlapPredicate(name string, values []string, field func(PropertyRecord) []string) ResidualPredicate {
	selected := make(map[string]struct{}, len(values))
	for _, v := range values {
		if key := MatchKey(v); key != "" {
			selected[key] = struct{}{}
		}
	}
	return &stringSetOverlapPredicate{name: name, selected: selected, field: field}
}

func (p *stringSetOverlapPredicate) Name() string { return p.name }

func (p *stringSetOverlapPredicate) Matches(rec PropertyRecord) bool {
	for _, v := range p.field(rec) {
		if _, ok := p.selected[MatchKey(v)]; ok {
			return true
		}
	}
	return false
}

// priceWindowPredicate handles price filters when the criteria fix no record
// kind: the price field to test depends on each record's own kind.
type priceWindowPredicate struct {
	budgetMin *float64
	budgetMax *float64
	priceAed  *float64
}

func newPriceWindowPredicate(budgetMin, budgetMax, priceAed *float64) ResidualPredicate {
	return &priceWindowPredicate{budgetMin: budgetMin, budgetMax: budgetMax, priceAed: priceAed}
}

func (p *priceWindowPredicate) Name() string { return "price" }

func (p *priceWindowPredicate) Matches(rec PropertyRecord) bool {
	switch rec.Kind {
	case KindListing:
		if rec.PriceAed == nil {
			return false
		}
		if p.priceAed != nil && *rec.PriceAed != *p.priceAed {
			return false
		}
		if p.budgetMin != nil && *rec.PriceAed < *p.budgetMin {
			return false
		}
		if p.budgetMax != nil && *rec.PriceAed > *p.budgetMax {
			return false
		}
		return true
	case KindClientRequest:
		if p.priceAed != nil {
			if rec.BudgetMinAed == nil || rec.BudgetMaxAed == nil {
				return false
			}
			if *p.priceAed < *rec.BudgetMinAed || *p.priceAed > *rec.BudgetMaxAed {
				return false
			}
		}
		if p.budgetMin != nil && (rec.BudgetMaxAed == nil || *rec.BudgetMaxAed < *p.budgetMin) {
			return false
		}
		if p.budgetMax != nil && (rec.BudgetMinAed == nil || *rec.BudgetMinAed > *p.budgetMax) {
			return false
		}
		return true
	default:
		return false
	}
}
