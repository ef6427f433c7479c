package usecases_port

import "context"

// SubmitInquiryUseCasePort validates an inquiry payload and relays it to the
// webhook collaborator.
type SubmitInquiryUseCasePort interface {
	Execute(ctx context.Context, payload map[string]interface{}) error
}
