// Package log provides a simple logging abstraction for the pk3save
// codec.
//
// By default, the package uses a no-op logger that discards all output.
// Callers can configure logging by calling SetLogger with their preferred
// implementation.
//
// The package provides built-in support for zerolog via NewZerologAdapter,
// but any logger implementing the Logger interface can be used.
//
// Example with zerolog:
//
//	import (
//	    "os"
//	    "github.com/rs/zerolog"
//	    "github.com/JohnDeved/pk3save/internal/log"
//	)
//
//	func main() {
//	    zlog := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	    log.SetLogger(log.NewZerologAdapter(zlog))
//	    // ... use the pk3save packages
//	}
package log

import "sync"

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// F creates a Field with the given key and value.
//
// Example:
//
//	log.Debug("elected active slot", log.F("slot", "B"), log.F("counter", c))
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger defines the interface for logging in the pk3save codec.
// Implementations should handle structured logging with key-value fields.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

var (
	globalLogger Logger = &noopLogger{}
	mu           sync.RWMutex
)

// SetLogger sets the global logger used by the pk3save codec.
// Pass nil to disable logging (uses a no-op logger).
//
// Safe to call from multiple goroutines.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		globalLogger = &noopLogger{}
	} else {
		globalLogger = l
	}
}

// GetLogger returns the current global logger.
// Safe to call from multiple goroutines.
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// Debug logs a message at debug level using the global logger.
func Debug(msg string, fields ...Field) { GetLogger().Debug(msg, fields...) }

// Info logs a message at info level using the global logger.
func Info(msg string, fields ...Field) { GetLogger().Info(msg, fields...) }

// Warn logs a message at warn level using the global logger. Non-fatal
// conditions are reported on this channel (pk3.Verify logs a PK3
// checksum mismatch here); they never abort the calling operation. No
// Gen-1/2 save checksum is checked or reported.
func Warn(msg string, fields ...Field) { GetLogger().Warn(msg, fields...) }

// Error logs a message at error level using the global logger.
func Error(msg string, fields ...Field) { GetLogger().Error(msg, fields...) }

// Noop returns a Logger that discards everything, for tests that need a
// concrete instance rather than the package-global default.
func Noop() Logger { return &noopLogger{} }

type noopLogger struct{}

func (*noopLogger) Debug(string, ...Field) {}
func (*noopLogger) Info(string, ...Field)  {}
func (*noopLogger) Warn(string, ...Field)  {}
func (*noopLogger) Error(string, ...Field) {}
