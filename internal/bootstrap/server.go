package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultShutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// StartHTTPServer serves handler until ctx is cancelled, then drains
// in-flight requests for up to cfg.ShutdownTimeout. It returns the listen
// error if the server could not start.
func StartHTTPServer(
	ctx context.Context,
	handler http.Handler,
	cfg ServerConfig,
	auditLogger AuditLogger,
) error {
	logger := zap.L().Named("bootstrap.server")

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	auditLogger.Log(ctx, AuditLog{
		Action:  ActionServerStart,
		Message: "farmbook api starting",
		Meta:    map[string]any{"port": cfg.Port},
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err, ok := <-listenErr:
		if ok {
			logger.Error("listen failed", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received", zap.Error(context.Cause(ctx)))

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	meta := map[string]any{"drain_timeout": timeout.String()}
	err := server.Shutdown(shutdownCtx)
	if err != nil {
		meta["error"] = err.Error()
		logger.Error("forced shutdown", zap.Error(err))
	} else {
		logger.Info("server exited gracefully")
	}

	auditLogger.Log(context.Background(), AuditLog{
		Action:  ActionServerShutdown,
		Message: "farmbook api stopped",
		Meta:    meta,
	})
	return nil
}
