package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	catalog "github.com/ubuntucrafts/catalog/pkg"
	"github.com/ubuntucrafts/catalog/pkg/audit"
	"github.com/ubuntucrafts/catalog/pkg/env/db"
	"github.com/ubuntucrafts/catalog/pkg/env/server"
	"github.com/ubuntucrafts/catalog/pkg/env/webhook"
	"github.com/ubuntucrafts/catalog/pkg/handlers"
	"github.com/ubuntucrafts/catalog/pkg/middleware"
	"github.com/ubuntucrafts/catalog/pkg/store"
	"github.com/ubuntucrafts/catalog/pkg/version"
)

const (
	readTimeout       = 1 * time.Minute
	readHeaderTimeout = 20 * time.Second
	writeTimeout      = 2 * time.Minute

	handlerTimeout = 30 * time.Second
)

func Run(logger *zap.SugaredLogger) error {
	production := os.Getenv("ENVIRONMENT") == "production"
	logger.Infof("Starting catalog version: %s", version.Version())

	srve := server.NewServerEnv()
	if err := srve.Populate(); err != nil {
		return fmt.Errorf("unable to configure HTTP server: %w", err)
	}
	logger.Infof("Production: %t, stage prefix: %q", production, srve.StagePrefix)

	dbe := db.NewDBEnv()
	if err := dbe.Populate(); err != nil {
		return fmt.Errorf("unable to configure database: %w", err)
	}
	logger.Infof("Using database driver: %s (write access: %t)", dbe.Driver, dbe.AllowWrite)

	sqldb, err := sql.Open(dbe.Driver.Name(), dbe.ConnectionDSN())
	if err != nil {
		return fmt.Errorf("unable to open database connection: %w", err)
	}
	defer func() { _ = sqldb.Close() }()
	logger.Debugf("Connected to database host: %s (port: %d)", dbe.Host, dbe.Port)

	la := audit.NewLoggerAudit(logger)

	we := webhook.NewWebhookEnv()
	if err := we.Populate(); err != nil {
		return fmt.Errorf("unable to configure audit webhook: %w", err)
	}

	var wa *audit.WebhookAudit
	if we.Enabled() {
		logger.Infof("Sending audit to webhook endpoint: %s", we.URL)
		wa = audit.NewWebhookAudit(we)
	}

	cfg := &catalog.Config{
		DB:           sqldb,
		DBEnv:        dbe,
		ServerEnv:    srve,
		Products:     store.NewProductStore(sqldb, dbe.Driver),
		Orders:       store.NewOrderStore(sqldb, dbe.Driver),
		LoggerAudit:  la,
		WebhookAudit: wa,
		Logger:       logger,
	}

	// Temp workaround for easy to access io.Writer.
	defaultLogOutput := log.Default().Writer()

	healthLogOutput := io.Discard
	if !production {
		healthLogOutput = defaultLogOutput
	}
	logHandler := gorillaHandlers.LoggingHandler

	chain := alice.New(
		alice.Constructor(middleware.Recovery(cfg)),
		alice.Constructor(middleware.Metrics()),
		alice.Constructor(middleware.Timeout(handlerTimeout)),
		alice.Constructor(middleware.Audit(cfg)),
	)

	r := mux.NewRouter()
	r.Handle("/healthcheck", logHandler(healthLogOutput, handlers.Healthcheck(cfg))).Methods("GET")
	r.Handle("/metrics", logHandler(healthLogOutput, promhttp.Handler())).Methods("GET")

	api := r.PathPrefix(cfg.ServerEnv.StagePrefix).Subrouter()
	api.Handle("/products", logHandler(defaultLogOutput, chain.Then(handlers.ListProducts(cfg)))).Methods("GET")
	api.Handle("/products/{id}", logHandler(defaultLogOutput, chain.Then(handlers.GetProduct(cfg)))).Methods("GET")
	api.Handle("/products", logHandler(defaultLogOutput, chain.Then(handlers.CreateProduct(cfg)))).Methods("POST")
	api.Handle("/products/{id}", logHandler(defaultLogOutput, chain.Then(handlers.UpdateProduct(cfg)))).Methods("PUT")
	api.Handle("/products/{id}", logHandler(defaultLogOutput, chain.Then(handlers.DeleteProduct(cfg)))).Methods("DELETE")
	api.Handle("/checkout", logHandler(defaultLogOutput, chain.Then(handlers.Checkout(cfg)))).Methods("POST")

	logger.Infof("HTTP server starting on port: %d", cfg.ServerEnv.Port)

	httpServer := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(cfg.ServerEnv.Port)),
		Handler:           r,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	if err := httpServer.ListenAndServe(); err != nil {
		return fmt.Errorf("unable to start HTTP server: %w", err)
	}

	return nil
}
