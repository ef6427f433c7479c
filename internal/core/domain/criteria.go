package domain

import (
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/constants"
)

// FilterCriteria is the declarative filter object one UI interaction
// produces. Every predicate is optional: zero values and nil pointers mean
// "no constraint". Multi-value fields carry OR (set-overlap) semantics.
type FilterCriteria struct {
	UnitKind        string `json:"unit_kind,omitempty"`
	TransactionType string `json:"transaction_type,omitempty"`

	Bedrooms      []float64 `json:"bedrooms,omitempty"`
	Communities   []string  `json:"communities,omitempty"`
	PropertyTypes []string  `json:"property_types,omitempty"`

	BudgetMin *float64 `json:"budget_min,omitempty"`
	BudgetMax *float64 `json:"budget_max,omitempty"`
	PriceAed  *float64 `json:"price_aed,omitempty"`

	AreaSqftMin *float64 `json:"area_sqft_min,omitempty"`
	AreaSqftMax *float64 `json:"area_sqft_max,omitempty"`

	IsOffPlan        *bool `json:"is_off_plan,omitempty"`
	IsDistressedDeal *bool `json:"is_distressed_deal,omitempty"`

	KeywordSearch string `json:"keyword_search,omitempty"`

	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// EffectivePageSize returns the requested page size, falling back to the
// default when the request carried none or a nonsensical value.
func (c FilterCriteria) EffectivePageSize() int {
	if c.PageSize <= 0 {
		return constants.DefaultPageSize
	}
	return c.PageSize
}

// Pagination describes the position of a page within the fully filtered set.
// TotalResults always reflects the count after all predicates, pushdown and
// residual combined.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	PageSize     int  `json:"pageSize"`
	TotalResults int  `json:"totalResults"`
	TotalPages   int  `json:"totalPages"`
	HasMore      bool `json:"hasMore"`
}

// SearchResultPage is a single page of the filtered result set.
type SearchResultPage struct {
	Records    []PropertyRecord `json:"records"`
	Pagination Pagination       `json:"pagination"`
}

// PaginateRecords slices the fully filtered set into the requested page.
// Pages are zero-based: page p covers [p*pageSize, (p+1)*pageSize).
func PaginateRecords(all []PropertyRecord, page, pageSize int) SearchResultPage {
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	if page < 0 {
		page = 0
	}

	total := len(all)
	totalPages := (total + pageSize - 1) / pageSize

	start := page * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	records := make([]PropertyRecord, end-start)
	copy(records, all[start:end])

	return SearchResultPage{
		Records: records,
		Pagination: Pagination{
			CurrentPage:  page,
			PageSize:     pageSize,
			TotalResults: total,
			TotalPages:   totalPages,
			HasMore:      end < total,
		},
	}
}
