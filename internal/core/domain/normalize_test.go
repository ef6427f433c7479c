package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeScalarAndArrayShapes(t *testing.T) {
	scalar := Normalize(RawPropertyDocument{
		"record_id": "rec-1",
		"kind":      "listing",
		"bedrooms":  float64(2),
	})
	array := Normalize(RawPropertyDocument{
		"record_id": "rec-1",
		"kind":      "listing",
		"bedrooms":  []interface{}{float64(2)},
	})

	assert.Equal(t, []float64{2}, scalar.Bedrooms)
	assert.Equal(t, scalar.Bedrooms, array.Bedrooms)
}

func TestNormalizeAlternateKeyNames(t *testing.T) {
	rec := Normalize(RawPropertyDocument{
		"id":            "rec-9",
		"unit_kind":     "Client_Request",
		"bedroom":       "3",
		"property_type": "Apartment",
		"description":   "spacious unit",
		"location":      "JVC",
	})

	assert.Equal(t, "rec-9", rec.RecordID)
	assert.Equal(t, KindClientRequest, rec.Kind)
	assert.Equal(t, []float64{3}, rec.Bedrooms)
	assert.Equal(t, []string{"Apartment"}, rec.PropertyTypes)
	assert.Equal(t, "spacious unit", rec.DescriptionRaw)
	assert.Equal(t, "JVC", rec.LocationRaw)
}

func TestNormalizeBedroomValidation(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want []float64
	}{
		{"studio zero", float64(0), []float64{0}},
		{"half increment", 2.5, []float64{2.5}},
		{"upper bound", float64(15), []float64{15}},
		{"above upper bound", 15.5, nil},
		{"off increment", 2.3, nil},
		{"negative", float64(-1), nil},
		{"numeric string", "4", []float64{4}},
		{"unparseable string", "four", nil},
		{"mixed array keeps valid only", []interface{}{float64(1), 2.3, "2", float64(99)}, []float64{1, 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := Normalize(RawPropertyDocument{"bedrooms": tc.in})
			assert.Equal(t, tc.want, rec.Bedrooms)
		})
	}
}

func TestNormalizeStringSetDedupe(t *testing.T) {
	rec := Normalize(RawPropertyDocument{
		"property_types": []interface{}{"Apartment", "apartment ", "Villa", ""},
	})

	// Case-insensitive dedupe keeps the first-seen spelling, output sorted.
	assert.Equal(t, []string{"Apartment", "Villa"}, rec.PropertyTypes)
}

func TestNormalizeCommunitiesPrefersArrayKey(t *testing.T) {
	both := Normalize(RawPropertyDocument{
		"communities": []interface{}{"Downtown Dubai"},
		"community":   "Dubai Marina",
	})
	assert.Equal(t, []string{"Downtown Dubai"}, both.Communities)

	fallback := Normalize(RawPropertyDocument{
		"community": "Dubai Marina",
	})
	assert.Equal(t, []string{"Dubai Marina"}, fallback.Communities)
}

func TestNormalizeOptionalFields(t *testing.T) {
	rec := Normalize(RawPropertyDocument{
		"price_aed":   "1500000",
		"area_sqft":   float64(900),
		"is_off_plan": "true",
		"is_urgent":   "not-a-bool",
	})

	require.NotNil(t, rec.PriceAed)
	assert.Equal(t, 1500000.0, *rec.PriceAed)
	require.NotNil(t, rec.AreaSqft)
	assert.Equal(t, 900.0, *rec.AreaSqft)
	require.NotNil(t, rec.IsOffPlan)
	assert.True(t, *rec.IsOffPlan)
	assert.Nil(t, rec.IsUrgent)
	assert.Nil(t, rec.BudgetMinAed)
}

// A canonical record survives a serialize-then-normalize round trip intact,
// so already-normalized records shipped back by a client re-normalize to
// themselves.
func TestNormalizeIdempotent(t *testing.T) {
	price := 2500000.0
	offPlan := false
	rec := PropertyRecord{
		RecordID:        "rec-42",
		SequenceKey:     42,
		Kind:            KindListing,
		TransactionType: TransactionSale,
		Bedrooms:        []float64{1, 2},
		Communities:     []string{"Business Bay", "Downtown Dubai"},
		PropertyTypes:   []string{"Apartment"},
		PriceAed:        &price,
		DescriptionRaw:  "canal view",
		IsOffPlan:       &offPlan,
	}

	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	var doc RawPropertyDocument
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, rec, Normalize(doc))
}
