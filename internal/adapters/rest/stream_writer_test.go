package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/contextkeys"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/domain"
)

func decodeEvents(t *testing.T, body string) []map[string]interface{} {
	t.Helper()
	var events []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		var event map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &event))
		events = append(events, event)
	}
	return events
}

func TestEventStreamWriterEventSequence(t *testing.T) {
	rec := httptest.NewRecorder()
	logger := contextkeys.LoggerFromContext(context.Background())

	stream, err := newEventStreamWriter(rec, logger)
	require.NoError(t, err)

	stream.Progress(1000, 4500, "Fetching batch 1")
	stream.Batch([]domain.PropertyRecord{{RecordID: "rec-1"}})
	stream.Complete(&domain.SearchResult{
		Page: domain.PaginateRecords([]domain.PropertyRecord{{RecordID: "rec-1"}}, 0, 20),
		AllResults: []domain.PropertyRecord{{RecordID: "rec-1"}},
	})

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	events := decodeEvents(t, rec.Body.String())
	require.Len(t, events, 3)

	assert.Equal(t, "progress", events[0]["type"])
	assert.Equal(t, float64(1000), events[0]["current"])
	assert.Equal(t, float64(4500), events[0]["total"])
	assert.Equal(t, "Fetching batch 1", events[0]["phase"])

	assert.Equal(t, "batch", events[1]["type"])

	assert.Equal(t, "complete", events[2]["type"])
	assert.Contains(t, events[2], "pagination")
	assert.Contains(t, events[2], "all_results")
}

func TestEventStreamWriterTerminalErrorEvent(t *testing.T) {
	rec := httptest.NewRecorder()
	logger := contextkeys.LoggerFromContext(context.Background())

	stream, err := newEventStreamWriter(rec, logger)
	require.NoError(t, err)

	stream.Error("Property store query failed", "connection refused")

	// The stream is closed after a terminal event; later sends are dropped.
	stream.Progress(1, 2, "late")

	events := decodeEvents(t, rec.Body.String())
	require.Len(t, events, 1)
	assert.Equal(t, "error", events[0]["type"])
	assert.Equal(t, "Property store query failed", events[0]["error"])
	assert.Equal(t, "connection refused", events[0]["details"])
}

func TestEventStreamWriterRequiresFlusher(t *testing.T) {
	logger := contextkeys.LoggerFromContext(context.Background())

	_, err := newEventStreamWriter(nonFlushingWriter{httptest.NewRecorder()}, logger)
	assert.Error(t, err)
}

// nonFlushingWriter hides the Flusher implementation of the wrapped
// recorder.
type nonFlushingWriter struct {
	http.ResponseWriter
}
