package rest

import (
	"errors"
	"net/http"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/contextkeys"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/domain"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/port"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/port/usecases_port"
)

type SearchHandler struct {
	searchUC usecases_port.SearchPropertiesUseCasePort
}

func NewSearchHandler(searchUC usecases_port.SearchPropertiesUseCasePort) *SearchHandler {
	return &SearchHandler{searchUC: searchUC}
}

// Search is the plain request-response endpoint. It doubles as the fallback
// path when the streaming connection drops, so it is idempotent: the same
// criteria produce the same response with no side effect beyond refreshing
// the session baseline.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Search"})

	req := searchRequestFromHTTP(r)

	result, err := h.searchUC.Execute(r.Context(), req, nil)
	if err != nil {
		if errors.Is(err, domain.ErrStoreQuery) {
			logger.Error("Store query failed", err, nil)
			WriteJSONError(w, http.StatusBadGateway, "Property store query failed")
			return
		}
		logger.Error("Search failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	RespondWithJSON(w, http.StatusOK, SearchResponse{
		Properties: result.Page.Records,
		Pagination: result.Page.Pagination,
	})
}

// SearchStream runs the same search while streaming progress events, then a
// terminal complete or error event. The client may drop the connection at
// any time; no acknowledgment is needed to free server resources.
func (h *SearchHandler) SearchStream(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SearchStream"})

	stream, err := newEventStreamWriter(w, logger)
	if err != nil {
		logger.Error("Streaming not supported by transport", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	req := searchRequestFromHTTP(r)

	result, err := h.searchUC.Execute(r.Context(), req, stream)
	if err != nil {
		if errors.Is(err, domain.ErrStoreQuery) {
			logger.Error("Store query failed mid-stream", err, nil)
			stream.Error("Property store query failed", err.Error())
			return
		}
		logger.Error("Search failed mid-stream", err, nil)
		stream.Error("Search failed", err.Error())
		return
	}

	stream.Complete(result)
}
