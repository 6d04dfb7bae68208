package middleware

import (
	"net/http"
	"time"

	catalog "github.com/ubuntucrafts/catalog/pkg"
	"github.com/ubuntucrafts/catalog/pkg/audit"
)

// Audit records every mutating request before it reaches the handler. The
// webhook sink is best-effort: a failed delivery is logged, never a request
// failure.
func Audit(cfg *catalog.Config) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cfg.Logger.Infof("Received request: %s %s", r.Method, r.URL.Path)

			if r.Method != http.MethodGet {
				entry := &audit.Entry{
					Action:    r.Method,
					Subject:   r.URL.Path,
					Timestamp: time.Now().Unix(),
				}
				_ = cfg.LoggerAudit.Write(entry)

				if cfg.WebhookAudit != nil && cfg.WebhookAudit.WebhookEnv.Enabled() {
					if err := cfg.WebhookAudit.Write(entry); err != nil {
						cfg.Logger.Errorf("Unable to send audit to webhook: %s", err)
					}
				}
			}
			h.ServeHTTP(w, r)
		})
	}
}
