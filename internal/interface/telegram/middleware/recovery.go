// Package middleware contains Telegram bot middlewares for update processing.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECOVERY MIDDLEWARE
// Catches panics in screen handlers so one crashing interaction never takes
// the bot down. The panic and stack trace go to the log; the user gets a
// short apology.
// ══════════════════════════════════════════════════════════════════════════════

// RecoveryConfig holds configuration for the recovery middleware.
type RecoveryConfig struct {
	// EnableStackTrace enables capturing stack traces.
	EnableStackTrace bool

	// UserErrorMessage is the message sent to users when a panic occurs.
	UserErrorMessage string

	// Logger for structured logging.
	Logger *slog.Logger
}

// DefaultRecoveryConfig returns sensible defaults.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		EnableStackTrace: true,
		UserErrorMessage: "😔 Xatolik yuz berdi. Birozdan keyin qayta urinib ko'ring.",
	}
}

// PanicInfo contains information about a recovered panic.
type PanicInfo struct {
	// PanicValue is the raw panic value.
	PanicValue any

	// StackTrace is the formatted stack trace (empty when disabled).
	StackTrace string

	// TelegramID is the Telegram user ID (if available).
	TelegramID int64

	// Operation is what was being processed, e.g. "callback:statistics".
	Operation string

	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

// RecoveryResult represents the outcome of a wrapped call.
type RecoveryResult struct {
	// Recovered indicates a panic was caught.
	Recovered bool

	// PanicInfo contains panic details (if recovered).
	PanicInfo *PanicInfo

	// UserMessage is the message to show to the user (if recovered).
	UserMessage string

	// Err is the error fn returned, nil when fn panicked or succeeded.
	Err error
}

// RecoveryMiddleware recovers from panics in handlers.
type RecoveryMiddleware struct {
	config RecoveryConfig
	logger *slog.Logger
}

// NewRecoveryMiddleware creates a new recovery middleware.
func NewRecoveryMiddleware(config RecoveryConfig) *RecoveryMiddleware {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &RecoveryMiddleware{config: config, logger: config.Logger}
}

// RecoverWithHandler runs fn and converts a panic into a RecoveryResult.
// Callers inspect Recovered first; Err carries fn's error otherwise.
func (m *RecoveryMiddleware) RecoverWithHandler(
	ctx context.Context,
	telegramID int64,
	operation string,
	fn func() error,
) (result *RecoveryResult) {
	result = &RecoveryResult{}

	defer func() {
		if r := recover(); r != nil {
			info := &PanicInfo{
				PanicValue: r,
				TelegramID: telegramID,
				Operation:  operation,
				Timestamp:  time.Now(),
			}
			if m.config.EnableStackTrace {
				info.StackTrace = string(debug.Stack())
			}

			m.logger.Error("panic recovered",
				"operation", operation,
				"telegram_id", telegramID,
				"panic", fmt.Sprintf("%v", r),
				"stack", info.StackTrace,
			)

			result.Recovered = true
			result.PanicInfo = info
			result.UserMessage = m.config.UserErrorMessage
		}
	}()

	result.Err = fn()
	return result
}
