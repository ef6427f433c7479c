package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/contextkeys"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/contracts"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/domain"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/port"
)

// SubmitInquiryUseCase validates an inquiry payload against its contract and
// relays it to the webhook collaborator. No retry: delivery is
// fire-and-forget by contract.
type SubmitInquiryUseCase struct {
	webhook port.InquiryWebhookPort
}

func NewSubmitInquiryUseCase(webhook port.InquiryWebhookPort) *SubmitInquiryUseCase {
	return &SubmitInquiryUseCase{webhook: webhook}
}

func (uc *SubmitInquiryUseCase) Execute(ctx context.Context, payload map[string]interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "SubmitInquiry",
	})

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInquiry, err)
	}
	if err := contracts.Validate(contracts.InquirySubmission, raw); err != nil {
		logger.Warn("Inquiry payload failed contract validation", port.Fields{"error": err.Error()})
		return fmt.Errorf("%w: %v", domain.ErrInvalidInquiry, err)
	}

	if err := uc.webhook.Submit(ctx, payload); err != nil {
		logger.Error("Webhook delivery failed", err, nil)
		return err
	}

	logger.Info("Inquiry forwarded to webhook", nil)
	return nil
}
