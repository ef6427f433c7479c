package rest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/constants"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/domain"
)

// SearchResponse is the plain (non-streaming) search response body.
type SearchResponse struct {
	Properties []domain.PropertyRecord `json:"properties"`
	Pagination domain.Pagination       `json:"pagination"`
}

// Stream event DTOs, one JSON object per line on the event stream.

type progressEventDTO struct {
	Type    string `json:"type"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Phase   string `json:"phase"`
}

type batchEventDTO struct {
	Type       string                  `json:"type"`
	Properties []domain.PropertyRecord `json:"properties"`
}

type completeEventDTO struct {
	Type       string                  `json:"type"`
	Properties []domain.PropertyRecord `json:"properties"`
	Pagination domain.Pagination       `json:"pagination"`
	AllResults []domain.PropertyRecord `json:"all_results,omitempty"`
}

type errorEventDTO struct {
	Type    string `json:"type"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// searchRequestFromHTTP builds the search request from query parameters.
// Malformed numeric or boolean fragments degrade to "filter absent" rather
// than failing the whole request; only the session header and the refinement
// envelope live outside the criteria.
func searchRequestFromHTTP(r *http.Request) domain.SearchRequest {
	q := r.URL.Query()

	criteria := domain.FilterCriteria{
		UnitKind:        strings.TrimSpace(q.Get("unit_kind")),
		TransactionType: strings.TrimSpace(q.Get("transaction_type")),

		Bedrooms:      parseMultiFloat(q, "bedrooms"),
		Communities:   parseMultiString(q, "communities"),
		PropertyTypes: parseMultiString(q, "property_type"),

		BudgetMin: parseOptionalFloat(q, "budget_min"),
		BudgetMax: parseOptionalFloat(q, "budget_max"),
		PriceAed:  parseOptionalFloat(q, "price_aed"),

		AreaSqftMin: parseOptionalFloat(q, "area_sqft_min"),
		AreaSqftMax: parseOptionalFloat(q, "area_sqft_max"),

		IsOffPlan:        parseOptionalBool(q, "is_off_plan"),
		IsDistressedDeal: parseOptionalBool(q, "is_distressed_deal"),

		KeywordSearch: strings.TrimSpace(q.Get("keyword_search")),

		Page:     parseIntOrDefault(q, "page", 0),
		PageSize: parseIntOrDefault(q, "pageSize", constants.DefaultPageSize),
	}

	req := domain.SearchRequest{
		SessionID: strings.TrimSpace(r.Header.Get("X-Session-ID")),
		Criteria:  criteria,
	}

	if isRefinement, _ := strconv.ParseBool(q.Get("is_refinement")); isRefinement {
		if previous := parsePreviousResults(q.Get("previous_results")); len(previous) > 0 {
			req.IsRefinement = true
			req.PreviousResults = previous
		}
	}

	return req
}

// parseMultiString reads a repeatable, comma-separable multi-value parameter.
func parseMultiString(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// parseMultiFloat is parseMultiString for numeric values; unparseable
// fragments are dropped.
func parseMultiFloat(q url.Values, key string) []float64 {
	var out []float64
	for _, s := range parseMultiString(q, key) {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

func parseOptionalFloat(q url.Values, key string) *float64 {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseOptionalBool implements the tri-state boolean parameters: absent (or
// malformed) means "any", "true"/"false" constrain.
func parseOptionalBool(q url.Values, key string) *bool {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntOrDefault(q url.Values, key string, def int) int {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return def
	}
	return v
}

// parsePreviousResults decodes the client-held refinement baseline shipped
// as a URL-encoded JSON array. A malformed baseline is treated as no
// baseline at all, which just forces a fresh fetch.
func parsePreviousResults(raw string) []domain.PropertyRecord {
	if raw == "" {
		return nil
	}
	var records []domain.PropertyRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil
	}
	return records
}
