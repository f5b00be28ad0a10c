package utils

import "go.uber.org/zap"

// NewLogger builds the process-wide structured logger. Internal failures are
// logged here with context; clients only ever receive a short generic message.
func NewLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	return cfg.Build()
}
