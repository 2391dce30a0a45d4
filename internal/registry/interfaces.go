package registry

import (
	"context"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/ui"
)

// Committer persists an edited component value. The registry calls it at
// most once per edit draw call, only after the editing callback has returned,
// and never retries. value always has length 1.
type Committer interface {
	Commit(ctx context.Context, writePath component.EntityPath, key component.TypeKey, value component.RawValue) error
}

// CommitterFunc adapts a function to the Committer interface.
type CommitterFunc func(ctx context.Context, writePath component.EntityPath, key component.TypeKey, value component.RawValue) error

// Commit implements Committer.
func (f CommitterFunc) Commit(ctx context.Context, writePath component.EntityPath, key component.TypeKey, value component.RawValue) error {
	return f(ctx, writePath, key, value)
}

// FallbackProvider supplies a start value for editing a component that has
// no value yet.
type FallbackProvider interface {
	FallbackFor(ctx context.Context, key component.TypeKey) (component.RawValue, bool)
}

// DisplayArgs is everything a legacy display callback (or the fallback
// renderer) gets to see.
type DisplayArgs struct {
	Layout   ui.Layout
	Path     component.EntityPath
	Key      component.TypeKey
	CacheKey component.CacheKey
	Value    component.RawValue
}

// LegacyDisplayFunc draws a component read-only. Unlike typed callbacks it
// receives the raw batch, which may hold any number of instances when used
// as the fallback renderer.
type LegacyDisplayFunc func(ctx context.Context, u ui.UI, args DisplayArgs)
