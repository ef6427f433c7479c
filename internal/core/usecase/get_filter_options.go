package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/constants"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/contextkeys"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/domain"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/port"
)

// GetFilterOptionsUseCase computes the distinct values per filterable field
// by a normalize-then-deduplicate pass over the full record set. The pass is
// expensive and the values change slowly, so the snapshot is cached with a
// bounded TTL.
type GetFilterOptionsUseCase struct {
	store port.DocumentStorePort
	ttl   time.Duration

	mu         sync.Mutex
	cached     *domain.FilterOptions
	computedAt time.Time
}

func NewGetFilterOptionsUseCase(store port.DocumentStorePort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{
		store: store,
		ttl:   constants.FilterOptionsTTL,
	}
}

func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetFilterOptions",
	})

	uc.mu.Lock()
	if uc.cached != nil && time.Since(uc.computedAt) < uc.ttl {
		cached := uc.cached
		uc.mu.Unlock()
		logger.Debug("Serving filter options from cache", port.Fields{
			"computed_at": uc.computedAt,
		})
		return cached, nil
	}
	uc.mu.Unlock()

	options, err := uc.compute(ctx)
	if err != nil {
		logger.Error("Failed to compute filter options", err, nil)
		return nil, err
	}

	uc.mu.Lock()
	uc.cached = options
	uc.computedAt = time.Now()
	uc.mu.Unlock()

	logger.Info("Filter options recomputed", port.Fields{
		"property_types": len(options.PropertyTypes),
		"communities":    len(options.Communities),
		"bedrooms":       len(options.Bedrooms),
	})
	return options, nil
}

func (uc *GetFilterOptionsUseCase) compute(ctx context.Context) (*domain.FilterOptions, error) {
	kinds := newStringCollector()
	transactionTypes := newStringCollector()
	propertyTypes := newStringCollector()
	communities := newStringCollector()
	bedrooms := make(map[float64]struct{})

	var afterSeq int64
	scanned := 0
	for {
		docs, err := uc.store.FetchBatch(ctx, nil, afterSeq, constants.BatchSize)
		if err != nil {
			return nil, &domain.StoreQueryError{Err: err}
		}

		prevSeq := afterSeq
		for _, doc := range docs {
			rec := domain.Normalize(doc)
			kinds.add(string(rec.Kind))
			transactionTypes.add(string(rec.TransactionType))
			for _, pt := range rec.PropertyTypes {
				propertyTypes.add(pt)
			}
			for _, c := range rec.Communities {
				communities.add(c)
			}
			for _, b := range rec.Bedrooms {
				bedrooms[b] = struct{}{}
			}
			if rec.SequenceKey > afterSeq {
				afterSeq = rec.SequenceKey
			}
		}
		scanned += len(docs)

		if len(docs) < constants.BatchSize {
			break
		}
		if scanned >= constants.MaxScannedRecords {
			break
		}
		if afterSeq <= prevSeq {
			// The store stopped advancing the sequence key; bail out rather
			// than loop forever.
			break
		}
	}

	bedroomValues := make([]float64, 0, len(bedrooms))
	for b := range bedrooms {
		bedroomValues = append(bedroomValues, b)
	}
	sort.Float64s(bedroomValues)

	return &domain.FilterOptions{
		Kinds:            kinds.sorted(),
		TransactionTypes: transactionTypes.sorted(),
		PropertyTypes:    propertyTypes.sorted(),
		Bedrooms:         bedroomValues,
		Communities:      communities.sorted(),
	}, nil
}

// stringCollector deduplicates case-insensitively, keeping the first-seen
// spelling.
type stringCollector struct {
	seen   map[string]struct{}
	values []string
}

func newStringCollector() *stringCollector {
	return &stringCollector{seen: make(map[string]struct{})}
}

func (c *stringCollector) add(v string) {
	key := domain.MatchKey(v)
	if key == "" {
		return
	}
	if _, dup := c.seen[key]; dup {
		return
	}
	c.seen[key] = struct{}{}
	c.values = append(c.values, v)
}

func (c *stringCollector) sorted() []string {
	sort.Strings(c.values)
	return c.values
}
