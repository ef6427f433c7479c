package usecases_port

import (
	"context"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/domain"
)

// GetFilterOptionsUseCasePort computes the distinct selector values per
// filterable field, behind a bounded-TTL cache.
type GetFilterOptionsUseCasePort interface {
	Execute(ctx context.Context) (*domain.FilterOptions, error)
}
