package catalog

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/ubuntucrafts/catalog/pkg/audit"
	"github.com/ubuntucrafts/catalog/pkg/env/db"
	"github.com/ubuntucrafts/catalog/pkg/env/server"
	"github.com/ubuntucrafts/catalog/pkg/store"
)

// Config carries the shared service state handed to handlers and middleware.
type Config struct {
	DB           *sql.DB
	DBEnv        *db.DBEnv
	ServerEnv    *server.ServerEnv
	Products     *store.ProductStore
	Orders       *store.OrderStore
	LoggerAudit  *audit.LoggerAudit
	WebhookAudit *audit.WebhookAudit
	Logger       *zap.SugaredLogger
}
