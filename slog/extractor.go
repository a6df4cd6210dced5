// Package slog wraps tripkml services with structured logging.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/tripkml"
)

// Ensure LoggingExtractor implements tripkml.Extractor.
var _ tripkml.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   tripkml.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next tripkml.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (trip *tripkml.Trip, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if trip != nil {
			attrs = append(attrs, "title", trip.Title, "places", len(trip.Places))
		}
		if err != nil {
			attrs = append(attrs, "code", tripkml.ErrorCode(err), "err", err)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
