package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/ubuntucrafts/catalog/pkg/env/webhook"
	"github.com/ubuntucrafts/catalog/pkg/version"
)

const (
	webhookSource = "catalog"

	connectTimeout = 5 * time.Second
	requestTimeout = 30 * time.Second
)

// WebhookAudit forwards audit entries to an external HTTP collector.
type WebhookAudit struct {
	WebhookEnv *webhook.WebhookEnv

	client *http.Client
}

var _ Audit = (*WebhookAudit)(nil)

type webhookEvent struct {
	Action  string `json:"action"`
	Subject string `json:"subject"`
}

type webhookPayload struct {
	Event  *webhookEvent `json:"event"`
	Source string        `json:"source"`
	Time   int64         `json:"time"`
}

type Option func(*WebhookAudit)

func WithHTTPClient(client *http.Client) Option {
	return func(w *WebhookAudit) {
		w.SetHTTPClient(client)
	}
}

func NewWebhookAudit(env *webhook.WebhookEnv, options ...Option) *WebhookAudit {
	w := &WebhookAudit{WebhookEnv: env}

	w.client = &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: connectTimeout,
			}).DialContext,
		},
	}

	for _, option := range options {
		option(w)
	}

	return w
}

func (d *WebhookAudit) SetHTTPClient(client *http.Client) {
	d.client = client
}

func (d *WebhookAudit) Write(e *Entry) error {
	payload := &webhookPayload{
		Event: &webhookEvent{
			Action:  e.Action,
			Subject: e.Subject,
		},
		Source: webhookSource,
		Time:   e.Timestamp,
	}

	content, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("unable to marshal audit payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.WebhookEnv.URL, bytes.NewBuffer(content))
	if err != nil {
		return fmt.Errorf("unable to create audit webhook request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", d.WebhookEnv.Token))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("User-Agent", fmt.Sprintf("catalog/%s", version.Version()))

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("unable to send audit webhook request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unable to write audit entry: %s", resp.Status)
	}

	return nil
}
