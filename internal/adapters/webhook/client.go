package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/contextkeys"
	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/port"
)

// InquiryWebhookClient posts inquiry payloads to the configured webhook.
// Fire-and-forget per the integration contract: one POST, no retries, the
// response body is drained and discarded.
type InquiryWebhookClient struct {
	webhookURL string
	httpClient *http.Client
}

func NewInquiryWebhookClient(webhookURL string) *InquiryWebhookClient {
	return &InquiryWebhookClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *InquiryWebhookClient) Submit(ctx context.Context, payload map[string]interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "InquiryWebhookClient",
	})

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Failed to deliver inquiry to webhook", err, nil)
		return fmt.Errorf("failed to deliver inquiry to webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		err := fmt.Errorf("webhook returned non-success status: %d", resp.StatusCode)
		logger.Error("Webhook rejected inquiry", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}

	logger.Info("Inquiry delivered to webhook", port.Fields{"status_code": resp.StatusCode})
	return nil
}
