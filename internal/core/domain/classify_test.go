package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func pushdownFields(c ClassifiedFilters) map[string][]PredicateOp {
	out := make(map[string][]PredicateOp)
	for _, p := range c.Pushdown {
		out[p.Field] = append(out[p.Field], p.Op)
	}
	return out
}

func TestClassifyListingPriceRange(t *testing.T) {
	c := Classify(FilterCriteria{
		UnitKind:  "listing",
		BudgetMin: floatPtr(1000000),
		BudgetMax: floatPtr(2000000),
	})

	fields := pushdownFields(c)
	assert.Equal(t, []PredicateOp{OpEq}, fields[FieldKind])
	assert.ElementsMatch(t, []PredicateOp{OpGte, OpLte}, fields[FieldPriceAed])
	assert.False(t, c.HasResidual())
}

func TestClassifyClientRequestBudgetWindow(t *testing.T) {
	c := Classify(FilterCriteria{
		UnitKind: "client_request",
		PriceAed: floatPtr(1500000),
	})

	fields := pushdownFields(c)
	assert.Equal(t, []PredicateOp{OpLte}, fields[FieldBudgetMinAed])
	assert.Equal(t, []PredicateOp{OpGte}, fields[FieldBudgetMaxAed])
	assert.NotContains(t, fields, FieldPriceAed)
	assert.False(t, c.HasResidual())
}

func TestClassifyClientRequestRangeOverlap(t *testing.T) {
	c := Classify(FilterCriteria{
		UnitKind:  "client_request",
		BudgetMin: floatPtr(1000000),
		BudgetMax: floatPtr(2000000),
	})

	fields := pushdownFields(c)
	assert.Equal(t, []PredicateOp{OpGte}, fields[FieldBudgetMaxAed])
	assert.Equal(t, []PredicateOp{OpLte}, fields[FieldBudgetMinAed])
}

func TestClassifyKindlessPriceGoesResidual(t *testing.T) {
	c := Classify(FilterCriteria{
		BudgetMin: floatPtr(1000000),
	})

	assert.NotContains(t, pushdownFields(c), FieldPriceAed)
	require.Len(t, c.Residual, 1)
	assert.Equal(t, "price", c.Residual[0].Name())
}

func TestClassifyBedrooms(t *testing.T) {
	single := Classify(FilterCriteria{Bedrooms: []float64{2}})
	fields := pushdownFields(single)
	assert.Equal(t, []PredicateOp{OpContains}, fields[FieldBedrooms])
	assert.False(t, single.HasResidual())

	multi := Classify(FilterCriteria{Bedrooms: []float64{1, 2}})
	assert.NotContains(t, pushdownFields(multi), FieldBedrooms)
	require.Len(t, multi.Residual, 1)
	assert.Equal(t, FieldBedrooms, multi.Residual[0].Name())
}

func TestClassifyStringSetsAlwaysResidual(t *testing.T) {
	c := Classify(FilterCriteria{
		Communities:   []string{"Downtown Dubai"},
		PropertyTypes: []string{"Apartment", "Villa"},
	})

	assert.Empty(t, c.Pushdown)
	require.Len(t, c.Residual, 2)
	names := []string{c.Residual[0].Name(), c.Residual[1].Name()}
	assert.ElementsMatch(t, []string{FieldCommunities, FieldPropertyTypes}, names)
}

func TestClassifyFlagsAndKeyword(t *testing.T) {
	c := Classify(FilterCriteria{
		IsOffPlan:        boolPtr(true),
		IsDistressedDeal: boolPtr(false),
		KeywordSearch:    "  sea view  ",
		AreaSqftMin:      floatPtr(800),
	})

	fields := pushdownFields(c)
	assert.Equal(t, []PredicateOp{OpEq}, fields[FieldIsOffPlan])
	assert.Equal(t, []PredicateOp{OpEq}, fields[FieldIsDistressedDeal])
	assert.Equal(t, []PredicateOp{OpGte}, fields[FieldAreaSqft])
	assert.Equal(t, []PredicateOp{OpSubstring}, fields[FieldDescription])

	for _, p := range c.Pushdown {
		if p.Field == FieldDescription {
			assert.Equal(t, "sea view", p.Value)
		}
	}
}

func TestClassifyEmptyCriteria(t *testing.T) {
	c := Classify(FilterCriteria{})
	assert.Empty(t, c.Pushdown)
	assert.Empty(t, c.Residual)
}
