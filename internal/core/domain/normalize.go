package domain

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/constants"
)

// Normalize coerces a raw store document into the canonical PropertyRecord.
// This is the only place where the scalar-vs-array and alternate-key
// ambiguity of the source documents is resolved; everything downstream works
// on the canonical shape. Malformed fragments degrade to "absent", never to
// an error.
func Normalize(raw RawPropertyDocument) PropertyRecord {
	rec := PropertyRecord{
		RecordID:        stringField(raw, "record_id", "id"),
		SequenceKey:     intField(raw, "sequence_key"),
		Kind:            RecordKind(strings.ToLower(stringField(raw, "kind", "unit_kind"))),
		TransactionType: TransactionType(strings.ToLower(stringField(raw, "transaction_type"))),

		Bedrooms:      numberSetField(raw, validBedroom, "bedrooms", "bedroom"),
		PropertyTypes: stringSetField(raw, "property_types", "property_type"),
		Bathrooms:     numberSetField(raw, validBathroom, "bathrooms", "bathroom"),

		PriceAed:     floatField(raw, "price_aed"),
		BudgetMinAed: floatField(raw, "budget_min_aed"),
		BudgetMaxAed: floatField(raw, "budget_max_aed"),
		AreaSqft:     floatField(raw, "area_sqft"),

		DescriptionRaw: stringField(raw, "description_raw", "description"),
		OtherDetails:   stringField(raw, "other_details"),
		LocationRaw:    stringField(raw, "location_raw", "location"),

		IsOffPlan:        boolField(raw, "is_off_plan"),
		IsDistressedDeal: boolField(raw, "is_distressed_deal"),
		IsUrgent:         boolField(raw, "is_urgent"),

		UpdatedAt: timeField(raw, "updated_at"),
	}

	// Communities: prefer the array-named source field, fall back to the
	// scalar-named one. The two are never merged, even when both exist.
	if _, ok := raw["communities"]; ok {
		rec.Communities = stringSetField(raw, "communities")
	} else {
		rec.Communities = stringSetField(raw, "community")
	}

	return rec
}

// validBedroom accepts values in [0,15] sitting on a clean half-increment.
// 0 means studio. Out-of-range codes used by upstream data entry (and values
// like 2.3) are rejected, treated as absent rather than clamped.
func validBedroom(v float64) bool {
	if v < constants.MinBedrooms || v > constants.MaxBedrooms {
		return false
	}
	return math.Abs(v*2-math.Round(v*2)) < 1e-9
}

func validBathroom(v float64) bool {
	return v >= 0 && math.Abs(v*2-math.Round(v*2)) < 1e-9
}

// asNumber extracts a float from the value shapes json decoding can produce.
func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// numberSetField reads the first present key among names and coerces it into
// a sorted, deduplicated slice of valid numbers. Absent, scalar and array
// source shapes are all accepted; unparseable entries are dropped.
func numberSetField(raw RawPropertyDocument, valid func(float64) bool, names ...string) []float64 {
	v, ok := firstPresent(raw, names...)
	if !ok {
		return nil
	}

	var out []float64
	seen := make(map[float64]struct{})
	add := func(item interface{}) {
		n, ok := asNumber(item)
		if !ok || !valid(n) {
			return
		}
		if _, dup := seen[n]; dup {
			return
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	switch items := v.(type) {
	case []interface{}:
		for _, item := range items {
			add(item)
		}
	default:
		add(v)
	}

	sort.Float64s(out)
	return out
}

// stringSetField reads the first present key among names and coerces it into
// a sorted, deduplicated slice of trimmed non-empty strings. Deduplication is
// case-insensitive; the first-seen spelling wins.
func stringSetField(raw RawPropertyDocument, names ...string) []string {
	v, ok := firstPresent(raw, names...)
	if !ok {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(item interface{}) {
		s, ok := item.(string)
		if !ok {
			return
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		key := MatchKey(s)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}

	switch items := v.(type) {
	case []interface{}:
		for _, item := range items {
			add(item)
		}
	default:
		add(v)
	}

	sort.Strings(out)
	return out
}

func firstPresent(raw RawPropertyDocument, names ...string) (interface{}, bool) {
	for _, name := range names {
		if v, ok := raw[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(raw RawPropertyDocument, names ...string) string {
	v, ok := firstPresent(raw, names...)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func floatField(raw RawPropertyDocument, names ...string) *float64 {
	v, ok := firstPresent(raw, names...)
	if !ok {
		return nil
	}
	if n, ok := asNumber(v); ok {
		return &n
	}
	return nil
}

func intField(raw RawPropertyDocument, names ...string) int64 {
	if f := floatField(raw, names...); f != nil {
		return int64(*f)
	}
	return 0
}

func boolField(raw RawPropertyDocument, names ...string) *bool {
	v, ok := firstPresent(raw, names...)
	if !ok {
		return nil
	}
	switch b := v.(type) {
	case bool:
		return &b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

func timeField(raw RawPropertyDocument, names ...string) time.Time {
	s := stringField(raw, names...)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
