package utils

import (
	"go.uber.org/zap"
)

var logger *zap.Logger

// InitLogger builds the process-wide zap logger.
func InitLogger() {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger = l
}

// Logger returns the process-wide logger, initializing a no-op
// logger when InitLogger was never called (tests).
func Logger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}
