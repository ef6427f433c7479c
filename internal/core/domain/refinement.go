package domain

import "strings"

// IsRefinement reports whether newCriteria is a strict narrowing of
// prevCriteria relative to the previously fetched full result set. The guard
// is exact: any relaxation risks serving a stale, wrong set.
//
// All of the following must hold:
//   - a previous result set exists;
//   - none of the basic scalar/range/boolean/keyword fields changed (those
//     can alter matched-set membership in ways not reducible to further
//     filtering of the old set);
//   - every previously selected value in each of bedrooms, communities and
//     property types is still selected;
//   - at least one of those three selections strictly grew.
func IsRefinement(newCriteria, prevCriteria FilterCriteria, previous []PropertyRecord) bool {
	if len(previous) == 0 {
		return false
	}

	if !basicFieldsEqual(newCriteria, prevCriteria) {
		return false
	}

	bedroomsKept, bedroomsGrew := floatSelectionKept(prevCriteria.Bedrooms, newCriteria.Bedrooms)
	communitiesKept, communitiesGrew := stringSelectionKept(prevCriteria.Communities, newCriteria.Communities)
	typesKept, typesGrew := stringSelectionKept(prevCriteria.PropertyTypes, newCriteria.PropertyTypes)

	if !bedroomsKept || !communitiesKept || !typesKept {
		return false
	}
	return bedroomsGrew || communitiesGrew || typesGrew
}

// Refine applies the refinement predicates of newCriteria to the previous
// full result set and recomputes pagination over the narrowed set. The store
// is never touched.
func Refine(newCriteria FilterCriteria, previous []PropertyRecord) SearchResultPage {
	narrowed := ApplyResidualPredicates(previous, RefinementResidual(newCriteria))
	return PaginateRecords(narrowed, newCriteria.Page, newCriteria.EffectivePageSize())
}

func basicFieldsEqual(a, b FilterCriteria) bool {
	return strings.EqualFold(strings.TrimSpace(a.UnitKind), strings.TrimSpace(b.UnitKind)) &&
		strings.EqualFold(strings.TrimSpace(a.TransactionType), strings.TrimSpace(b.TransactionType)) &&
		floatPtrEqual(a.BudgetMin, b.BudgetMin) &&
		floatPtrEqual(a.BudgetMax, b.BudgetMax) &&
		floatPtrEqual(a.PriceAed, b.PriceAed) &&
		floatPtrEqual(a.AreaSqftMin, b.AreaSqftMin) &&
		floatPtrEqual(a.AreaSqftMax, b.AreaSqftMax) &&
		boolPtrEqual(a.IsOffPlan, b.IsOffPlan) &&
		boolPtrEqual(a.IsDistressedDeal, b.IsDistressedDeal) &&
		strings.TrimSpace(a.KeywordSearch) == strings.TrimSpace(b.KeywordSearch)
}

// floatSelectionKept reports whether every old value is still selected, and
// whether the selection strictly grew.
func floatSelectionKept(old, new []float64) (kept bool, grew bool) {
	newSet := make(map[float64]struct{}, len(new))
	for _, v := range new {
		newSet[v] = struct{}{}
	}
	oldSet := make(map[float64]struct{}, len(old))
	for _, v := range old {
		oldSet[v] = struct{}{}
		if _, ok := newSet[v]; !ok {
			return false, false
		}
	}
	return true, len(newSet) > len(oldSet)
}

func stringSelectionKept(old, new []string) (kept bool, grew bool) {
	newSet := make(map[string]struct{}, len(new))
	for _, v := range new {
		newSet[MatchKey(v)] = struct{}{}
	}
	oldSet := make(map[string]struct{}, len(old))
	for _, v := range old {
		key := MatchKey(v)
		oldSet[key] = struct{}{}
		if _, ok := newSet[key]; !ok {
			return false, false
		}
	}
	return true, len(newSet) > len(oldSet)
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func boolPtrEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
