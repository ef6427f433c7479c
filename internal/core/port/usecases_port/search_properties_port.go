package usecases_port

import (
	"context"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/domain"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/port"
)

// SearchPropertiesUseCasePort runs one filtered search end to end: cache
// refinement, fast path or batch+residual path, baseline retention.
// progress may be nil for non-streaming callers.
type SearchPropertiesUseCasePort interface {
	Execute(ctx context.Context, req domain.SearchRequest, progress port.SearchProgressPort) (*domain.SearchResult, error)
}
