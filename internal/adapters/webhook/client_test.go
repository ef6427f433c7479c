package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/contextkeys"
)

func TestSubmitPostsJSONWithTraceID(t *testing.T) {
	var gotBody map[string]interface{}
	var gotTraceID, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = r.Header.Get("X-Trace-ID")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewInquiryWebhookClient(srv.URL)
	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-1")

	err := client.Submit(ctx, map[string]interface{}{"agent_name": "Jane Agent"})
	require.NoError(t, err)

	assert.Equal(t, "trace-1", gotTraceID)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Jane Agent", gotBody["agent_name"])
}

func TestSubmitReportsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewInquiryWebhookClient(srv.URL)

	err := client.Submit(context.Background(), map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestSubmitReportsUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewInquiryWebhookClient(srv.URL)

	err := client.Submit(context.Background(), map[string]interface{}{})
	assert.Error(t, err)
}
