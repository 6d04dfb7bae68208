package webhook

import (
	"os"

	"github.com/ubuntucrafts/catalog/pkg/env"
)

// WebhookEnv configures the optional HTTP audit sink. The sink is enabled
// only when AUDIT_WEBHOOK_URL is set; the token is required alongside it.
type WebhookEnv struct {
	URL   string
	Token string
}

func NewWebhookEnv() *WebhookEnv {
	return &WebhookEnv{}
}

func (w *WebhookEnv) Populate() error {
	url := os.Getenv("AUDIT_WEBHOOK_URL")
	if url == "" {
		return nil
	}
	w.URL = url

	token := os.Getenv("AUDIT_WEBHOOK_TOKEN")
	if token == "" {
		return &env.Error{Name: "AUDIT_WEBHOOK_TOKEN"}
	}
	w.Token = token

	return nil
}

func (w *WebhookEnv) Enabled() bool {
	return w.URL != ""
}
