package domain

import (
	"errors"
	"fmt"
)

// ErrStoreQuery marks any failure of the underlying document store. Callers
// can test for it with errors.Is regardless of which query failed.
var ErrStoreQuery = errors.New("document store query failed")

// ErrInvalidInquiry marks an inquiry payload that failed contract
// validation, as opposed to a downstream delivery failure.
var ErrInvalidInquiry = errors.New("invalid inquiry payload")

// StoreQueryError wraps a store failure with the position it happened at.
// A batch failure aborts the whole fetch: partial results are discarded
// rather than served with silently wrong counts.
type StoreQueryError struct {
	Batch int // zero for non-batch queries
	Err   error
}

func (e *StoreQueryError) Error() string {
	if e.Batch > 0 {
		return fmt.Sprintf("document store query failed at batch %d: %v", e.Batch, e.Err)
	}
	return fmt.Sprintf("document store query failed: %v", e.Err)
}

func (e *StoreQueryError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrStoreQuery) succeed for wrapped store failures.
func (e *StoreQueryError) Is(target error) bool { return target == ErrStoreQuery }
