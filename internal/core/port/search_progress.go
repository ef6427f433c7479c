package port

import "github.com/gabo-rematch/RealEstateHub-sub000/internal/core/domain"

// SearchProgressPort receives incremental events while the batch engine is
// working, so the transport can stream them to the UI. Calls happen
// sequentially from a single goroutine, in order; implementations need no
// locking against the engine.
type SearchProgressPort interface {
	// Progress reports records fetched so far against an estimated total.
	// The estimate comes from the pushdown-only count and is an upper bound
	// on the final filtered count.
	Progress(current, total int, phase string)

	// Batch delivers an incremental slice of already-filtered records.
	Batch(records []domain.PropertyRecord)
}
