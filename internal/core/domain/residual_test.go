package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKey(t *testing.T) {
	assert.Equal(t, MatchKey("Downtown Dubai"), MatchKey("  downtown dubai "))
	assert.NotEqual(t, MatchKey("Downtown"), MatchKey("Downtown Dubai"))
}

func TestStringSetOverlapIsExactNotSubstring(t *testing.T) {
	pred := newStringSetOverlapPredicate(FieldCommunities, []string{" downtown dubai "},
		func(r PropertyRecord) []string { return r.Communities })

	assert.True(t, pred.Matches(PropertyRecord{Communities: []string{"Downtown Dubai", "Dubai Marina"}}))
	assert.False(t, pred.Matches(PropertyRecord{Communities: []string{"Downtown"}}))
	assert.False(t, pred.Matches(PropertyRecord{Communities: nil}))
}

func TestStringSetOverlapIsOrAcrossSelection(t *testing.T) {
	pred := newStringSetOverlapPredicate(FieldCommunities, []string{"JVC", "Business Bay"},
		func(r PropertyRecord) []string { return r.Communities })

	// One shared value is enough; the record need not carry the full selection.
	assert.True(t, pred.Matches(PropertyRecord{Communities: []string{"Business Bay"}}))
	assert.False(t, pred.Matches(PropertyRecord{Communities: []string{"Palm Jumeirah"}}))
}

func TestBedroomsOverlap(t *testing.T) {
	pred := newBedroomsOverlapPredicate([]float64{1, 2})

	assert.True(t, pred.Matches(PropertyRecord{Bedrooms: []float64{2, 3}}))
	assert.False(t, pred.Matches(PropertyRecord{Bedrooms: []float64{3}}))
	assert.False(t, pred.Matches(PropertyRecord{}))
}

func TestPriceWindowPredicateListing(t *testing.T) {
	pred := newPriceWindowPredicate(floatPtr(1000000), floatPtr(2000000), nil)

	assert.True(t, pred.Matches(PropertyRecord{Kind: KindListing, PriceAed: floatPtr(1500000)}))
	assert.False(t, pred.Matches(PropertyRecord{Kind: KindListing, PriceAed: floatPtr(2500000)}))
	assert.False(t, pred.Matches(PropertyRecord{Kind: KindListing}))
}

func TestPriceWindowPredicateClientRequest(t *testing.T) {
	pred := newPriceWindowPredicate(floatPtr(1000000), floatPtr(2000000), nil)

	// Window overlap, not containment.
	assert.True(t, pred.Matches(PropertyRecord{
		Kind:         KindClientRequest,
		BudgetMinAed: floatPtr(1800000),
		BudgetMaxAed: floatPtr(3000000),
	}))
	assert.False(t, pred.Matches(PropertyRecord{
		Kind:         KindClientRequest,
		BudgetMinAed: floatPtr(2500000),
		BudgetMaxAed: floatPtr(3000000),
	}))

	exact := newPriceWindowPredicate(nil, nil, floatPtr(1500000))
	assert.True(t, exact.Matches(PropertyRecord{
		Kind:         KindClientRequest,
		BudgetMinAed: floatPtr(1000000),
		BudgetMaxAed: floatPtr(2000000),
	}))
	assert.False(t, exact.Matches(PropertyRecord{Kind: KindClientRequest}))
}

func TestApplyResidualPredicatesAndSemantics(t *testing.T) {
	records := []PropertyRecord{
		{RecordID: "a", Bedrooms: []float64{1}, Communities: []string{"Downtown Dubai"}},
		{RecordID: "b", Bedrooms: []float64{1}, Communities: []string{"JVC"}},
		{RecordID: "c", Bedrooms: []float64{3}, Communities: []string{"Downtown Dubai"}},
	}

	preds := []ResidualPredicate{
		newBedroomsOverlapPredicate([]float64{1, 2}),
		newStringSetOverlapPredicate(FieldCommunities, []string{"downtown dubai"},
			func(r PropertyRecord) []string { return r.Communities }),
	}

	// Predicates AND together across fields.
	out := ApplyResidualPredicates(records, preds)
	assert.Len(t, out, 1)
	assert.Equal(t, "a", out[0].RecordID)

	// No predicates means pass-through.
	assert.Equal(t, records, ApplyResidualPredicates(records, nil))
}
