package port

import "context"

// InquiryWebhookPort forwards an agent inquiry to the configured webhook.
// Fire-and-forget: a failed delivery is reported to the caller but never
// retried by this service.
type InquiryWebhookPort interface {
	Submit(ctx context.Context, payload map[string]interface{}) error
}
