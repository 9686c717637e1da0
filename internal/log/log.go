// Package log provides the package-level zap logger used for diagnostics.
package log

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	mu         sync.Mutex
	baseLogger *zap.Logger
)

// Init initializes the package-level logger.
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	Set(zapLogger)
	return nil
}

// Set replaces the package-level logger.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	baseLogger = l
}

// Logger returns the package-level logger, falling back to a production
// logger when Init has not been called.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if baseLogger == nil {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		baseLogger = l
	}
	return baseLogger
}

// Sync flushes any buffered log entries.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	if baseLogger != nil {
		_ = baseLogger.Sync()
	}
}
