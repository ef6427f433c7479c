package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/contextkeys"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/domain"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/port"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/port/usecases_port"
)

type InquiryHandler struct {
	inquiryUC usecases_port.SubmitInquiryUseCasePort
}

func NewInquiryHandler(inquiryUC usecases_port.SubmitInquiryUseCasePort) *InquiryHandler {
	return &InquiryHandler{inquiryUC: inquiryUC}
}

// SubmitInquiry validates the payload and forwards it downstream. The
// forward itself is fire-and-forget from the client's perspective, so a
// valid payload gets 202 even though delivery happens synchronously here.
func (h *InquiryHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SubmitInquiry"})

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn("Malformed inquiry body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	if err := h.inquiryUC.Execute(r.Context(), payload); err != nil {
		if errors.Is(err, domain.ErrInvalidInquiry) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Inquiry delivery failed", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Inquiry delivery failed")
		return
	}

	RespondWithJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
