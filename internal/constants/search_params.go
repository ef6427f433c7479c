package constants

import "time"

// Pagination defaults. Pages are zero-based; a page request beyond the end of
// the filtered set returns an empty slice with correct totals.
const (
	DefaultPageSize = 20

	// FastPathMaxPageSize is the largest page the store is asked to serve
	// directly. Bigger pages go through the batch engine.
	FastPathMaxPageSize = 100
)

// Batch engine tuning.
const (
	// BatchSize is the number of documents fetched per store round-trip on
	// the batch path.
	BatchSize = 1000

	// MaxScannedRecords is the hard safety cap on documents pulled from the
	// store within a single search. The loop stops here even if the store
	// keeps returning full batches.
	MaxScannedRecords = 50000
)

// Bedroom validation bounds. Values outside [MinBedrooms, MaxBedrooms] are
// upstream data-entry sentinels and are dropped during normalization.
const (
	MinBedrooms = 0.0
	MaxBedrooms = 15.0
)

// FilterOptionsTTL bounds how long the distinct-values snapshot served by the
// filter-options endpoint may be reused before a full recompute.
const FilterOptionsTTL = 24 * time.Hour
