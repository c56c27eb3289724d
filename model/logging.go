package model

import (
	"sync"

	"go.uber.org/zap"
)

var logState = struct {
	mu     sync.RWMutex
	logger *zap.Logger
}{logger: zap.NewNop()}

// SetLogger installs a logger for the package. Passing nil restores the no-op
// logger. The package logs at debug level only: skipped mass-assignment keys
// and guard flag toggles.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logState.mu.Lock()
	logState.logger = l
	logState.mu.Unlock()
}

func logDebug(msg string, fields ...zap.Field) {
	logState.mu.RLock()
	l := logState.logger
	logState.mu.RUnlock()
	l.Debug(msg, fields...)
}
