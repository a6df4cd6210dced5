package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tripkml"
)

// Ensure LoggingEmitter implements tripkml.Emitter.
var _ tripkml.Emitter = (*LoggingEmitter)(nil)

// LoggingEmitter wraps an Emitter with logging.
type LoggingEmitter struct {
	next   tripkml.Emitter
	logger *slog.Logger
}

// NewLoggingEmitter creates a new LoggingEmitter.
func NewLoggingEmitter(next tripkml.Emitter, logger *slog.Logger) *LoggingEmitter {
	return &LoggingEmitter{next: next, logger: logger}
}

// Emit delegates to the wrapped emitter and logs the operation.
func (e *LoggingEmitter) Emit(ctx context.Context, places []*tripkml.Place, path, title string, showDates bool) (err error) {
	defer func(begin time.Time) {
		e.logger.InfoContext(ctx, "emit",
			"path", path,
			"title", title,
			"places", len(places),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Emit(ctx, places, path, title, showDates)
}
