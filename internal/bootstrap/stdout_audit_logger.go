package bootstrap

import (
	"context"

	"go-farmbook/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through zap, tagged with the
// service and environment, and with the farm, user and request found on ctx.
type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger(service, env string, logger *zap.Logger) *StdoutAuditLogger {
	if logger == nil {
		logger = zap.L()
	}
	return &StdoutAuditLogger{
		logger: logger.Named("audit").With(
			zap.String("service", service),
			zap.String("env", env),
		),
	}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
	}

	meta := contextutil.ExtractMetadata(ctx)
	if meta.FarmID != "" {
		fields = append(fields, zap.String("farm_id", meta.FarmID))
	}
	if meta.UserID != "" {
		fields = append(fields, zap.String("user_id", meta.UserID))
	}
	if meta.RequestID != "" {
		fields = append(fields, zap.String("request_id", meta.RequestID))
	}
	if len(entry.Meta) > 0 {
		fields = append(fields, zap.Any("meta", entry.Meta))
	}

	l.logger.Info("audit event", fields...)
}
