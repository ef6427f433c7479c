package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/constants"
)

func makeRecords(n int) []PropertyRecord {
	out := make([]PropertyRecord, n)
	for i := range out {
		out[i] = PropertyRecord{RecordID: fmt.Sprintf("rec-%d", i)}
	}
	return out
}

func TestPaginateRecordsZeroBased(t *testing.T) {
	all := makeRecords(45)

	first := PaginateRecords(all, 0, 20)
	assert.Len(t, first.Records, 20)
	assert.Equal(t, "rec-0", first.Records[0].RecordID)
	assert.Equal(t, 45, first.Pagination.TotalResults)
	assert.Equal(t, 3, first.Pagination.TotalPages)
	assert.True(t, first.Pagination.HasMore)

	last := PaginateRecords(all, 2, 20)
	assert.Len(t, last.Records, 5)
	assert.Equal(t, "rec-40", last.Records[0].RecordID)
	assert.False(t, last.Pagination.HasMore)
}

func TestPaginateRecordsBeyondEnd(t *testing.T) {
	page := PaginateRecords(makeRecords(5), 7, 20)
	assert.Empty(t, page.Records)
	assert.Equal(t, 5, page.Pagination.TotalResults)
	assert.Equal(t, 7, page.Pagination.CurrentPage)
	assert.False(t, page.Pagination.HasMore)
}

func TestPaginateRecordsEmptySet(t *testing.T) {
	page := PaginateRecords(nil, 0, 20)
	assert.Empty(t, page.Records)
	assert.Equal(t, 0, page.Pagination.TotalResults)
	assert.Equal(t, 0, page.Pagination.TotalPages)
}

func TestPaginateRecordsClampsInputs(t *testing.T) {
	page := PaginateRecords(makeRecords(3), -1, 0)
	assert.Equal(t, 0, page.Pagination.CurrentPage)
	assert.Equal(t, constants.DefaultPageSize, page.Pagination.PageSize)
	assert.Len(t, page.Records, 3)
}

func TestEffectivePageSize(t *testing.T) {
	assert.Equal(t, constants.DefaultPageSize, FilterCriteria{}.EffectivePageSize())
	assert.Equal(t, constants.DefaultPageSize, FilterCriteria{PageSize: -5}.EffectivePageSize())
	assert.Equal(t, 50, FilterCriteria{PageSize: 50}.EffectivePageSize())
}
