package domain

import "time"

// RecordKind distinguishes the two kinds of documents living side by side in
// the store. The kind decides which price fields are semantically valid:
// a Listing carries price_aed, a ClientRequest carries a budget window.
type RecordKind string

const (
	KindListing       RecordKind = "listing"
	KindClientRequest RecordKind = "client_request"
)

// TransactionType is the deal type of a record.
type TransactionType string

const (
	TransactionSale TransactionType = "sale"
	TransactionRent TransactionType = "rent"
)

// RawPropertyDocument is a document exactly as the store returns it. Field
// shapes are not trustworthy: multi-value attributes may arrive absent, as a
// scalar or as an array, numbers may arrive as strings, and some fields go by
// more than one name. Nothing outside the normalizer reads these maps.
type RawPropertyDocument map[string]interface{}

// PropertyRecord is the canonical, post-normalization shape of a record.
// Multi-value fields are deduplicated and sorted; pointer fields distinguish
// "absent" from a zero value.
type PropertyRecord struct {
	RecordID    string `json:"record_id"`
	SequenceKey int64  `json:"sequence_key"`

	Kind            RecordKind      `json:"kind"`
	TransactionType TransactionType `json:"transaction_type"`

	Bedrooms      []float64 `json:"bedrooms,omitempty"`
	PropertyTypes []string  `json:"property_types,omitempty"`
	Communities   []string  `json:"communities,omitempty"`
	Bathrooms     []float64 `json:"bathrooms,omitempty"`

	PriceAed     *float64 `json:"price_aed,omitempty"`
	BudgetMinAed *float64 `json:"budget_min_aed,omitempty"`
	BudgetMaxAed *float64 `json:"budget_max_aed,omitempty"`
	AreaSqft     *float64 `json:"area_sqft,omitempty"`

	DescriptionRaw string `json:"description_raw,omitempty"`
	OtherDetails   string `json:"other_details,omitempty"`
	LocationRaw    string `json:"location_raw,omitempty"`

	IsOffPlan        *bool `json:"is_off_plan,omitempty"`
	IsDistressedDeal *bool `json:"is_distressed_deal,omitempty"`
	IsUrgent         *bool `json:"is_urgent,omitempty"`

	UpdatedAt time.Time `json:"updated_at,omitzero"`
}
