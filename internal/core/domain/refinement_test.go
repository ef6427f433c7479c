package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refinementFixture() (FilterCriteria, []PropertyRecord) {
	prev := FilterCriteria{
		UnitKind:    "listing",
		Bedrooms:    []float64{1},
		Communities: []string{"Downtown Dubai"},
		BudgetMax:   floatPtr(2000000),
	}
	records := []PropertyRecord{
		{RecordID: "a", Bedrooms: []float64{1}, Communities: []string{"Downtown Dubai"}},
		{RecordID: "b", Bedrooms: []float64{1}, Communities: []string{"Downtown Dubai"}},
	}
	return prev, records
}

func TestIsRefinementGrownSelection(t *testing.T) {
	prev, records := refinementFixture()

	next := prev
	next.Communities = []string{"Downtown Dubai", "Business Bay"}
	assert.True(t, IsRefinement(next, prev, records))

	next = prev
	next.Bedrooms = []float64{1, 2}
	assert.True(t, IsRefinement(next, prev, records))
}

func TestIsRefinementRejectsRemovedValue(t *testing.T) {
	prev, records := refinementFixture()

	next := prev
	next.Communities = []string{"Business Bay"}
	assert.False(t, IsRefinement(next, prev, records))
}

func TestIsRefinementRejectsChangedBasics(t *testing.T) {
	prev, records := refinementFixture()

	next := prev
	next.Communities = []string{"Downtown Dubai", "Business Bay"}
	next.BudgetMax = floatPtr(1500000)
	assert.False(t, IsRefinement(next, prev, records))

	next = prev
	next.Communities = []string{"Downtown Dubai", "Business Bay"}
	next.KeywordSearch = "sea view"
	assert.False(t, IsRefinement(next, prev, records))
}

func TestIsRefinementRequiresGrowth(t *testing.T) {
	prev, records := refinementFixture()

	// Identical criteria are a repeat, not a refinement.
	assert.False(t, IsRefinement(prev, prev, records))

	// Case and whitespace variants of the same selection are no growth.
	next := prev
	next.Communities = []string{" DOWNTOWN DUBAI "}
	assert.False(t, IsRefinement(next, prev, records))
}

func TestIsRefinementRequiresPreviousResults(t *testing.T) {
	prev, _ := refinementFixture()

	next := prev
	next.Communities = []string{"Downtown Dubai", "Business Bay"}
	assert.False(t, IsRefinement(next, prev, nil))
}

// Adding a single bedroom value to a baseline that had none must narrow the
// set, even though a fresh fetch would evaluate that selection store-side.
func TestRefineAppliesSingleBedroomSelection(t *testing.T) {
	records := []PropertyRecord{
		{RecordID: "a", Bedrooms: []float64{1}, Communities: []string{"Downtown Dubai"}},
		{RecordID: "b", Bedrooms: []float64{2}, Communities: []string{"Downtown Dubai"}},
		{RecordID: "c", Bedrooms: []float64{3}, Communities: []string{"Downtown Dubai"}},
	}

	prev := FilterCriteria{UnitKind: "listing", Communities: []string{"Downtown Dubai"}}
	next := prev
	next.Bedrooms = []float64{2}
	require.True(t, IsRefinement(next, prev, records))

	page := Refine(next, records)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "b", page.Records[0].RecordID)
	assert.Equal(t, 1, page.Pagination.TotalResults)
}

// Refining a baseline yields exactly what filtering the baseline with the
// new criteria's residual predicates yields; the refinement cache is a pure
// latency optimization, never a semantics change.
func TestRefineMatchesDirectFiltering(t *testing.T) {
	records := []PropertyRecord{
		{RecordID: "a", Bedrooms: []float64{1}, Communities: []string{"Downtown Dubai"}},
		{RecordID: "b", Bedrooms: []float64{2}, Communities: []string{"JVC"}},
		{RecordID: "c", Bedrooms: []float64{1}, Communities: []string{"Business Bay"}},
	}

	criteria := FilterCriteria{
		UnitKind:    "listing",
		Bedrooms:    []float64{1, 2},
		Communities: []string{"Downtown Dubai", "Business Bay"},
	}

	page := Refine(criteria, records)

	direct := ApplyResidualPredicates(records, Classify(criteria).Residual)
	require.Len(t, direct, 2)
	assert.Equal(t, direct, page.Records)
	assert.Equal(t, 2, page.Pagination.TotalResults)
	assert.Equal(t, 1, page.Pagination.TotalPages)
	assert.False(t, page.Pagination.HasMore)
}
