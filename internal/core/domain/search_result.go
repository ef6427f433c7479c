package domain

// SearchRequest bundles everything one search invocation needs. SessionID
// scopes the refinement baseline and supersede semantics; it is empty for
// anonymous stateless calls. IsRefinement plus PreviousResults carry the
// client-held baseline across a stateless transport, where the client has
// already applied the refinement guard itself.
type SearchRequest struct {
	SessionID       string
	Criteria        FilterCriteria
	IsRefinement    bool
	PreviousResults []PropertyRecord
}

// SearchResult is the outcome of a completed search: the requested page plus
// the full filtered set (unsliced by pagination), which becomes the next
// refinement baseline. FromCache marks results produced without touching the
// store.
type SearchResult struct {
	Page       SearchResultPage
	AllResults []PropertyRecord
	FromCache  bool
}

// FilterOptions lists the distinct known values per filterable field, for
// populating UI selectors. Produced by a normalize-then-deduplicate pass over
// the full record set.
type FilterOptions struct {
	Kinds            []string  `json:"kinds"`
	TransactionTypes []string  `json:"transactionTypes"`
	PropertyTypes    []string  `json:"propertyTypes"`
	Bedrooms         []float64 `json:"bedrooms"`
	Communities      []string  `json:"communities"`
}
