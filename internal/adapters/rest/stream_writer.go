package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/domain"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/port"
)

// eventStreamWriter writes the one-way search event stream: one JSON object
// per event, newline-delimited, flushed immediately so the UI can render
// progress during long batch fetches. It implements port.SearchProgressPort
// for the engine's incremental events; the terminal complete/error events
// close the logical stream (per request: Started -> Progress* -> Batch* ->
// Complete | Error).
type eventStreamWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	enc     *json.Encoder
	logger  port.LoggerPort
	done    bool
}

func newEventStreamWriter(w http.ResponseWriter, logger port.LoggerPort) (*eventStreamWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support streaming")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	return &eventStreamWriter{
		w:       w,
		flusher: flusher,
		enc:     json.NewEncoder(w),
		logger:  logger,
	}, nil
}

// send writes one event line. Write errors (client went away) are logged and
// remembered; the engine keeps running, the results still land in the
// session baseline, and the client recovers via the plain fallback fetch.
func (s *eventStreamWriter) send(event interface{}) {
	if s.done {
		return
	}
	if err := s.enc.Encode(event); err != nil {
		s.logger.Warn("Failed to write stream event, client likely disconnected", port.Fields{
			"error": err.Error(),
		})
		s.done = true
		return
	}
	s.flusher.Flush()
}

func (s *eventStreamWriter) Progress(current, total int, phase string) {
	s.send(progressEventDTO{Type: "progress", Current: current, Total: total, Phase: phase})
}

func (s *eventStreamWriter) Batch(records []domain.PropertyRecord) {
	s.send(batchEventDTO{Type: "batch", Properties: records})
}

// Complete emits the terminal success event carrying the page, pagination
// and the full filtered set the client keeps as its refinement baseline.
func (s *eventStreamWriter) Complete(result *domain.SearchResult) {
	s.send(completeEventDTO{
		Type:       "complete",
		Properties: result.Page.Records,
		Pagination: result.Page.Pagination,
		AllResults: result.AllResults,
	})
	s.done = true
}

// Error emits the terminal failure event.
func (s *eventStreamWriter) Error(message, details string) {
	s.send(errorEventDTO{Type: "error", Error: message, Details: details})
	s.done = true
}
