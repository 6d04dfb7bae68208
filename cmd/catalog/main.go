package main

import (
	"log"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v4/stdlib"
	"go.uber.org/zap"

	"github.com/ubuntucrafts/catalog/pkg/cmd"
)

func main() {
	l, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Unable to initialize Zap logger: %s", err)
	}
	defer func() { _ = l.Sync() }()

	logger := l.Sugar()
	if err := cmd.Run(logger); err != nil {
		logger.Fatalf("Unable to start catalog: %s", err)
	}
}
