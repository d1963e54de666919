package logging

import (
	"log/slog"

	"github.com/google/uuid"
)

// Standard attribute keys.
const (
	FieldRunID     = "run_id"
	FieldComponent = "component"
	FieldFile      = "file"
)

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithRunID tags logger with a fresh run identifier and returns both.
func WithRunID(logger *slog.Logger) (*slog.Logger, string) {
	if logger == nil {
		logger = NewNop()
	}
	id := uuid.NewString()
	return logger.With(slog.String(FieldRunID, id)), id
}

// NewComponentLogger creates a logger with a standardized component attribute.
// If logger is nil, a no-op logger is used as the base.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}
