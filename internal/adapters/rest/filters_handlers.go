package rest

import (
	"net/http"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/contextkeys"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/port"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/port/usecases_port"
)

type FiltersHandler struct {
	optionsUC usecases_port.GetFilterOptionsUseCasePort
}

func NewFiltersHandler(optionsUC usecases_port.GetFilterOptionsUseCasePort) *FiltersHandler {
	return &FiltersHandler{optionsUC: optionsUC}
}

func (h *FiltersHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFilterOptions"})

	options, err := h.optionsUC.Execute(r.Context())
	if err != nil {
		logger.Error("Failed to collect filter options", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to collect filter options")
		return
	}

	RespondWithJSON(w, http.StatusOK, options)
}
