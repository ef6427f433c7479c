package domain

import "strings"

// PredicateOp is an operation the store's query API can evaluate natively.
// The set is small: key-path equality, numeric range, substring and
// containment of a single literal. Anything richer (OR-of-array-overlap in
// particular) has to be evaluated residually in-process.
type PredicateOp string

const (
	OpEq        PredicateOp = "eq"
	OpGte       PredicateOp = "gte"
	OpLte       PredicateOp = "lte"
	OpContains  PredicateOp = "contains"
	OpSubstring PredicateOp = "substring"
)

// NativePredicate is one pushdown condition against a document key path.
type NativePredicate struct {
	Field string
	Op    PredicateOp
	Value interface{}
}

// Document key paths known to the store adapter.
const (
	FieldKind             = "kind"
	FieldTransactionType  = "transaction_type"
	FieldBedrooms         = "bedrooms"
	FieldCommunities      = "communities"
	FieldPropertyTypes    = "property_types"
	FieldPriceAed         = "price_aed"
	FieldBudgetMinAed     = "budget_min_aed"
	FieldBudgetMaxAed     = "budget_max_aed"
	FieldAreaSqft         = "area_sqft"
	FieldIsOffPlan        = "is_off_plan"
	FieldIsDistressedDeal = "is_distressed_deal"
	FieldDescription      = "description_raw"
)

// ClassifiedFilters is the result of splitting a criteria object into the
// part the store evaluates and the part this process evaluates.
type ClassifiedFilters struct {
	Pushdown []NativePredicate
	Residual []ResidualPredicate
}

// HasResidual reports whether any predicate needs in-process evaluation.
func (c ClassifiedFilters) HasResidual() bool {
	return len(c.Residual) > 0
}

// Classify splits the criteria into pushdown and residual predicates.
//
// Pushdown: kind, transaction type, numeric ranges, boolean flags and the
// keyword substring. A single-value bedrooms selection is also pushed down as
// a containment check, since numeric equality is exact under both scalar and
// array document shapes.
//
// Residual: multi-value bedrooms, plus communities and property types even
// for a single value. Set-overlap matching for the string fields is
// case-insensitive on trimmed values, which the store's containment operator
// cannot express. Price filters with no kind constraint are residual too,
// because the target price field depends on each record's kind.
func Classify(c FilterCriteria) ClassifiedFilters {
	var out ClassifiedFilters

	push := func(field string, op PredicateOp, value interface{}) {
		out.Pushdown = append(out.Pushdown, NativePredicate{Field: field, Op: op, Value: value})
	}

	kind := strings.ToLower(strings.TrimSpace(c.UnitKind))
	if kind != "" {
		push(FieldKind, OpEq, kind)
	}
	if tt := strings.ToLower(strings.TrimSpace(c.TransactionType)); tt != "" {
		push(FieldTransactionType, OpEq, tt)
	}

	switch RecordKind(kind) {
	case KindListing:
		if c.BudgetMin != nil {
			push(FieldPriceAed, OpGte, *c.BudgetMin)
		}
		if c.BudgetMax != nil {
			push(FieldPriceAed, OpLte, *c.BudgetMax)
		}
		if c.PriceAed != nil {
			push(FieldPriceAed, OpEq, *c.PriceAed)
		}
	case KindClientRequest:
		// A concrete price matches a request when it falls inside the
		// record's budget window; a filter budget range matches when the
		// windows overlap.
		if c.PriceAed != nil {
			push(FieldBudgetMinAed, OpLte, *c.PriceAed)
			push(FieldBudgetMaxAed, OpGte, *c.PriceAed)
		}
		if c.BudgetMin != nil {
			push(FieldBudgetMaxAed, OpGte, *c.BudgetMin)
		}
		if c.BudgetMax != nil {
			push(FieldBudgetMinAed, OpLte, *c.BudgetMax)
		}
	default:
		if c.BudgetMin != nil || c.BudgetMax != nil || c.PriceAed != nil {
			out.Residual = append(out.Residual, newPriceWindowPredicate(c.BudgetMin, c.BudgetMax, c.PriceAed))
		}
	}

	if c.AreaSqftMin != nil {
		push(FieldAreaSqft, OpGte, *c.AreaSqftMin)
	}
	if c.AreaSqftMax != nil {
		push(FieldAreaSqft, OpLte, *c.AreaSqftMax)
	}

	if c.IsOffPlan != nil {
		push(FieldIsOffPlan, OpEq, *c.IsOffPlan)
	}
	if c.IsDistressedDeal != nil {
		push(FieldIsDistressedDeal, OpEq, *c.IsDistressedDeal)
	}

	if kw := strings.TrimSpace(c.KeywordSearch); kw != "" {
		push(FieldDescription, OpSubstring, kw)
	}

	switch {
	case len(c.Bedrooms) == 1:
		push(FieldBedrooms, OpContains, c.Bedrooms[0])
	case len(c.Bedrooms) > 1:
		out.Residual = append(out.Residual, newBedroomsOverlapPredicate(c.Bedrooms))
	}

	if len(c.Communities) > 0 {
		out.Residual = append(out.Residual, newStringSetOverlapPredicate(FieldCommunities, c.Communities,
			func(r PropertyRecord) []string { return r.Communities }))
	}
	if len(c.PropertyTypes) > 0 {
		out.Residual = append(out.Residual, newStringSetOverlapPredicate(FieldPropertyTypes, c.PropertyTypes,
			func(r PropertyRecord) []string { return r.PropertyTypes }))
	}

	return out
}

// RefinementResidual returns the predicates to apply when narrowing a cached
// baseline in memory. No store query runs on that path, so the single-value
// bedrooms selection, pushed down on a fresh fetch, must be evaluated here
// as well; every other pushdown predicate covers a basic field the
// refinement guard requires unchanged, already satisfied by the baseline.
func RefinementResidual(c FilterCriteria) []ResidualPredicate {
	preds := Classify(c).Residual
	if len(c.Bedrooms) == 1 {
		preds = append(preds, newBedroomsOverlapPredicate(c.Bedrooms))
	}
	return preds
}
