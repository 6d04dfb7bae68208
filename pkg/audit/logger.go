package audit

import (
	"go.uber.org/zap"
)

type LoggerAudit struct {
	Logger *zap.SugaredLogger
}

var _ Audit = (*LoggerAudit)(nil)

func NewLoggerAudit(logger *zap.SugaredLogger) *LoggerAudit {
	return &LoggerAudit{Logger: logger}
}

func (d *LoggerAudit) Write(e *Entry) error {
	d.Logger.Infow("AUDIT",
		"Action", e.Action,
		"Subject", e.Subject,
		"Timestamp", e.Timestamp,
	)
	return nil
}
