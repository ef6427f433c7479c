package port

import (
	"context"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/domain"
)

// DocumentStorePort is the seam to the external document store. Its query
// language is deliberately limited to what the store supports natively:
// key-path equality, numeric range, case-insensitive substring and
// single-literal containment
// (see domain.PredicateOp). Set-overlap across several literals cannot be
// expressed here; that is the whole reason the residual path exists.
type DocumentStorePort interface {
	// Query returns one page of raw documents matching the predicates,
	// ordered by the store-assigned monotonic sequence key.
	Query(ctx context.Context, preds []domain.NativePredicate, offset, limit int) ([]domain.RawPropertyDocument, error)

	// Count returns the exact number of documents matching the predicates.
	Count(ctx context.Context, preds []domain.NativePredicate) (int, error)

	// FetchBatch returns up to limit documents with sequence key strictly
	// greater than afterSeq, ordered by sequence key. A short batch signals
	// end of data.
	FetchBatch(ctx context.Context, preds []domain.NativePredicate, afterSeq int64, limit int) ([]domain.RawPropertyDocument, error)
}
