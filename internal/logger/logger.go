// Package logger constructs the application's structured zap logger.
package logger

import "go.uber.org/zap"

// New returns a production zap logger. Callers should defer Sync.
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
