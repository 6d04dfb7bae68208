package audit

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubuntucrafts/catalog/pkg/env/webhook"
)

func TestNewWebhookAudit(t *testing.T) {
	cases := []struct {
		description string
		expected    *webhook.WebhookEnv
		given       Option
		option      bool
	}{
		{
			"using option that updates internal state",
			&webhook.WebhookEnv{URL: "http://test"},
			func(w *WebhookAudit) {
				w.WebhookEnv.URL = "http://test"
			},
			true,
		},
		{
			"using option that does nothing",
			&webhook.WebhookEnv{},
			func(w *WebhookAudit) {
				// No-op.
			},
			true,
		},
		{
			"without using any options",
			&webhook.WebhookEnv{},
			func(w *WebhookAudit) {
				// No-op.
			},
			false,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			var actual *WebhookAudit

			if tc.option {
				actual = NewWebhookAudit(&webhook.WebhookEnv{}, tc.given)
			} else {
				actual = NewWebhookAudit(&webhook.WebhookEnv{})
			}

			assert.NotNil(t, actual)
			assert.IsType(t, &WebhookAudit{}, actual)
			assert.Equal(t, tc.expected, actual.WebhookEnv)
		})
	}
}

func TestWebhookAuditWrite(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		handler     http.HandlerFunc
		given       Entry
		error       bool
		message     string
	}{
		{
			"collector accepts the audit entry",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			Entry{Action: "POST", Subject: "/products", Timestamp: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC).Unix()},
			false,
			``,
		},
		{
			"collector rejects the audit entry",
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "test", http.StatusForbidden)
			},
			Entry{Action: "POST", Subject: "/products"},
			true,
			`unable to write audit entry`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(tc.handler)
			defer server.Close()

			env := &webhook.WebhookEnv{URL: server.URL, Token: "test123"}
			audit := NewWebhookAudit(env, WithHTTPClient(server.Client()))

			err := audit.Write(&tc.given)

			if tc.error {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.message)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWebhookAuditWritePayload(t *testing.T) {
	t.Parallel()

	var (
		payload       webhookPayload
		authorization string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")

		content, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(content, &payload))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	env := &webhook.WebhookEnv{URL: server.URL, Token: "test123"}
	audit := NewWebhookAudit(env, WithHTTPClient(server.Client()))

	err := audit.Write(&Entry{Action: "PUT", Subject: "/products/1", Timestamp: 1672531200})

	require.NoError(t, err)
	assert.Equal(t, "Bearer test123", authorization)
	assert.Equal(t, "catalog", payload.Source)
	assert.Equal(t, int64(1672531200), payload.Time)
	require.NotNil(t, payload.Event)
	assert.Equal(t, "PUT", payload.Event.Action)
	assert.Equal(t, "/products/1", payload.Event.Subject)
}

func TestWebhookAuditWriteNetworkFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	env := &webhook.WebhookEnv{URL: server.URL, Token: "test123"}
	audit := NewWebhookAudit(env)

	err := audit.Write(&Entry{Action: "POST", Subject: "/checkout"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to send audit webhook request")
}
