package mock

import (
	"context"

	"github.com/fwojciec/tripkml"
)

var _ tripkml.Emitter = (*Emitter)(nil)

// Emitter is a mock implementation of tripkml.Emitter.
type Emitter struct {
	EmitFn func(ctx context.Context, places []*tripkml.Place, path, title string, showDates bool) error
}

func (e *Emitter) Emit(ctx context.Context, places []*tripkml.Place, path, title string, showDates bool) error {
	return e.EmitFn(ctx, places, path, title, showDates)
}
