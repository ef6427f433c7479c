package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/constants"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/contextkeys"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/domain"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/port"
)

// sessionBaseline is the previous completed search of one session: the
// criteria that produced it and the full filtered set, unsliced by
// pagination. It is a latency optimization only; losing it just forces a
// fresh fetch.
type sessionBaseline struct {
	criteria domain.FilterCriteria
	records  []domain.PropertyRecord
}

type inflightSearch struct {
	cancel context.CancelFunc
}

// SearchPropertiesUseCase translates a filter object into store queries,
// compensates in-process for what the store cannot express, and keeps the
// per-session refinement baseline and supersede state.
type SearchPropertiesUseCase struct {
	store port.DocumentStorePort

	mu        sync.Mutex
	baselines map[string]sessionBaseline
	inflight  map[string]*inflightSearch
}

func NewSearchPropertiesUseCase(store port.DocumentStorePort) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{
		store:     store,
		baselines: make(map[string]sessionBaseline),
		inflight:  make(map[string]*inflightSearch),
	}
}

func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, req domain.SearchRequest, progress port.SearchProgressPort) (*domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "SearchProperties",
		"page":     req.Criteria.Page,
	})
	if progress == nil {
		progress = nopProgress{}
	}

	// A new search for the same session supersedes a still-running one; the
	// UI must never merge results from two overlapping searches.
	if req.SessionID != "" {
		var cancel context.CancelFunc
		ctx, cancel = uc.supersede(ctx, req.SessionID)
		defer cancel()
	}

	classified := domain.Classify(req.Criteria)
	pageSize := req.Criteria.EffectivePageSize()

	// Refinement short-circuit: re-filter the previous full set instead of
	// re-querying the store.
	if previous, ok := uc.refinementBaseline(req); ok {
		logger.Info("Refinement detected, reusing previous result set", port.Fields{
			"previous_count": len(previous),
		})
		narrowed := domain.ApplyResidualPredicates(previous, domain.RefinementResidual(req.Criteria))
		page := domain.PaginateRecords(narrowed, req.Criteria.Page, pageSize)
		uc.storeBaseline(ctx, req.SessionID, req.Criteria, narrowed)
		return &domain.SearchResult{Page: page, AllResults: narrowed, FromCache: true}, nil
	}

	if !classified.HasResidual() && pageSize <= constants.FastPathMaxPageSize {
		return uc.fastPath(ctx, logger, req, classified, pageSize)
	}
	return uc.batchPath(ctx, logger, req, classified, pageSize, progress)
}

// fastPath issues one native paginated query plus an exact count query using
// only pushdown predicates.
func (uc *SearchPropertiesUseCase) fastPath(ctx context.Context, logger port.LoggerPort, req domain.SearchRequest, classified domain.ClassifiedFilters, pageSize int) (*domain.SearchResult, error) {
	page := req.Criteria.Page
	if page < 0 {
		page = 0
	}

	logger.Debug("Taking fast path", port.Fields{"pushdown_predicates": len(classified.Pushdown)})

	docs, err := uc.store.Query(ctx, classified.Pushdown, page*pageSize, pageSize)
	if err != nil {
		return nil, &domain.StoreQueryError{Err: err}
	}
	total, err := uc.store.Count(ctx, classified.Pushdown)
	if err != nil {
		return nil, &domain.StoreQueryError{Err: err}
	}

	records := normalizeAll(docs)
	totalPages := (total + pageSize - 1) / pageSize

	result := &domain.SearchResult{
		Page: domain.SearchResultPage{
			Records: records,
			Pagination: domain.Pagination{
				CurrentPage:  page,
				PageSize:     pageSize,
				TotalResults: total,
				TotalPages:   totalPages,
				HasMore:      (page+1)*pageSize < total,
			},
		},
	}

	// The page doubles as the refinement baseline only when it covers the
	// whole filtered set; otherwise the baseline is dropped so the next
	// request falls back to a fresh fetch instead of refining a truncated
	// set.
	if page == 0 && total <= pageSize {
		result.AllResults = records
		uc.storeBaseline(ctx, req.SessionID, req.Criteria, records)
	} else {
		uc.dropBaseline(req.SessionID)
	}

	logger.Info("Fast path finished", port.Fields{"total_results": total, "items_on_page": len(records)})
	return result, nil
}

// batchPath pages through the store in fixed-size batches applying only
// pushdown predicates, then evaluates the residual predicates over the
// accumulated normalized set and computes exact pagination.
func (uc *SearchPropertiesUseCase) batchPath(ctx context.Context, logger port.LoggerPort, req domain.SearchRequest, classified domain.ClassifiedFilters, pageSize int, progress port.SearchProgressPort) (*domain.SearchResult, error) {
	estimate, err := uc.store.Count(ctx, classified.Pushdown)
	if err != nil {
		return nil, &domain.StoreQueryError{Err: err}
	}

	logger.Info("Taking batch path", port.Fields{
		"pushdown_predicates": len(classified.Pushdown),
		"residual_predicates": len(classified.Residual),
		"estimated_candidates": estimate,
	})

	var accumulated []domain.PropertyRecord
	var afterSeq int64
	batchNum := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("search aborted: %w", err)
		}

		batchNum++
		docs, err := uc.store.FetchBatch(ctx, classified.Pushdown, afterSeq, constants.BatchSize)
		if err != nil {
			// Partial results are discarded: accurate counts take priority
			// over availability.
			return nil, &domain.StoreQueryError{Batch: batchNum, Err: err}
		}

		batchRecords := normalizeAll(docs)
		accumulated = append(accumulated, batchRecords...)

		progress.Progress(len(accumulated), estimate, fmt.Sprintf("Fetching batch %d", batchNum))
		if filtered := domain.ApplyResidualPredicates(batchRecords, classified.Residual); len(filtered) > 0 {
			progress.Batch(filtered)
		}

		if len(docs) < constants.BatchSize {
			break
		}
		if len(accumulated) >= constants.MaxScannedRecords {
			logger.Warn("Scan cap reached, stopping batch fetch", port.Fields{"scanned": len(accumulated)})
			break
		}

		last := batchRecords[len(batchRecords)-1].SequenceKey
		if last <= afterSeq {
			// The store stopped advancing the sequence key; bail out rather
			// than loop forever.
			logger.Warn("Sequence key did not advance, stopping batch fetch", port.Fields{"after_seq": afterSeq})
			break
		}
		afterSeq = last
	}

	if len(accumulated) == 0 {
		uc.dropBaseline(req.SessionID)
		return &domain.SearchResult{
			Page: domain.PaginateRecords(nil, req.Criteria.Page, pageSize),
		}, nil
	}

	filteredAll := domain.ApplyResidualPredicates(accumulated, classified.Residual)
	page := domain.PaginateRecords(filteredAll, req.Criteria.Page, pageSize)
	uc.storeBaseline(ctx, req.SessionID, req.Criteria, filteredAll)

	logger.Info("Batch path finished", port.Fields{
		"scanned":       len(accumulated),
		"total_results": len(filteredAll),
		"batches":       batchNum,
	})
	return &domain.SearchResult{Page: page, AllResults: filteredAll}, nil
}

// refinementBaseline returns the previous full result set when the request
// qualifies for refinement. The stateless variant trusts the client-side
// guard and just takes the shipped baseline; the session variant re-checks
// the guard against the stored criteria.
func (uc *SearchPropertiesUseCase) refinementBaseline(req domain.SearchRequest) ([]domain.PropertyRecord, bool) {
	if req.IsRefinement && len(req.PreviousResults) > 0 {
		return req.PreviousResults, true
	}
	if req.SessionID == "" {
		return nil, false
	}

	uc.mu.Lock()
	baseline, ok := uc.baselines[req.SessionID]
	uc.mu.Unlock()
	if !ok {
		return nil, false
	}
	if !domain.IsRefinement(req.Criteria, baseline.criteria, baseline.records) {
		return nil, false
	}
	return baseline.records, true
}

func (uc *SearchPropertiesUseCase) storeBaseline(ctx context.Context, sessionID string, criteria domain.FilterCriteria, records []domain.PropertyRecord) {
	if sessionID == "" || ctx.Err() != nil {
		// A superseded search must not overwrite the winner's baseline.
		return
	}
	uc.mu.Lock()
	uc.baselines[sessionID] = sessionBaseline{criteria: criteria, records: records}
	uc.mu.Unlock()
}

func (uc *SearchPropertiesUseCase) dropBaseline(sessionID string) {
	if sessionID == "" {
		return
	}
	uc.mu.Lock()
	delete(uc.baselines, sessionID)
	uc.mu.Unlock()
}

// supersede cancels the session's still-running search, if any, and
// registers this one. The returned cancel also deregisters.
func (uc *SearchPropertiesUseCase) supersede(ctx context.Context, sessionID string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	entry := &inflightSearch{cancel: cancel}

	uc.mu.Lock()
	if prev, ok := uc.inflight[sessionID]; ok {
		prev.cancel()
	}
	uc.inflight[sessionID] = entry
	uc.mu.Unlock()

	return ctx, func() {
		uc.mu.Lock()
		if uc.inflight[sessionID] == entry {
			delete(uc.inflight, sessionID)
		}
		uc.mu.Unlock()
		cancel()
	}
}

func normalizeAll(docs []domain.RawPropertyDocument) []domain.PropertyRecord {
	records := make([]domain.PropertyRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, domain.Normalize(doc))
	}
	return records
}

type nopProgress struct{}

func (nopProgress) Progress(current, total int, phase string) {}
func (nopProgress) Batch(records []domain.PropertyRecord)     {}
