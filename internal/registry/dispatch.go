package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/ctxlog"
	"github.com/specialistvlad/componentui/internal/selector"
	"github.com/specialistvlad/componentui/internal/ui"
)

// Request describes one draw call.
type Request struct {
	// Path is the entity the value was resolved for.
	Path component.EntityPath

	// Key selects the handlers.
	Key component.TypeKey

	// Value is the batch resolved for Key. The zero value means the component
	// is not logged at all.
	Value component.RawValue

	// Instance picks one element of Value, or AllInstances.
	Instance component.Instance

	// Layout decides between compact and detail handlers.
	Layout ui.Layout

	// AllowEdit gates RenderEdit; without it the call only displays.
	AllowEdit bool

	// CacheKey identifies Value for memoization of derived data. Zero means
	// the value is not cacheable.
	CacheKey component.CacheKey
}

func (req Request) args(value component.RawValue, cacheKey component.CacheKey) DisplayArgs {
	return DisplayArgs{
		Layout:   req.Layout,
		Path:     req.Path,
		Key:      req.Key,
		CacheKey: cacheKey,
		Value:    value,
	}
}

// RenderDisplay draws req read-only. It never commits.
func (r *Registry) RenderDisplay(ctx context.Context, u ui.UI, req Request) {
	if req.Value.IsMissing() {
		r.renderMissing(ctx, u, req)
		return
	}

	sel := selector.Select(req.Value, req.Instance)
	if !sel.Scalar {
		r.fallback(ctx, u, req.args(sel.Value, req.CacheKey))
		return
	}
	r.displayScalar(ctx, u, req, sel.Value)
}

// RenderEdit draws req with editing enabled and commits a changed value to
// writePath. Only edit-or-view callbacks are eligible for editing; without one
// the call degrades to display. The returned error is a *WriteError when the
// Committer rejected the value; everything else is handled internally.
func (r *Registry) RenderEdit(ctx context.Context, u ui.UI, req Request, writePath component.EntityPath) error {
	if !req.AllowEdit {
		r.RenderDisplay(ctx, u, req)
		return nil
	}

	if req.Value.Len() == 0 && r.fallbackValues != nil {
		if v, ok := r.fallbackValues.FallbackFor(ctx, req.Key); ok && v.Len() > 0 {
			req.Value = v
			req.Instance = 0
			req.CacheKey = 0
		}
	}
	if req.Value.IsMissing() {
		r.renderMissing(ctx, u, req)
		return nil
	}

	sel := selector.Select(req.Value, req.Instance)
	if !sel.Scalar {
		r.fallback(ctx, u, req.args(sel.Value, req.CacheKey))
		return nil
	}

	h, ok := r.editOrViewFor(req.Key, req.Layout.IsDetail())
	if !ok {
		r.displayScalar(ctx, u, req, sel.Value)
		return nil
	}

	res, err := h.run(ctx, u, sel.Value, ModeEdit)
	if err != nil {
		r.fallback(ctx, u, req.args(sel.Value, 0))
		return nil
	}
	v, changed := res.Value()
	if !changed {
		return nil
	}
	return r.commit(ctx, writePath, req.Key, v)
}

// displayScalar applies display precedence to a length-1 value: legacy
// display, then the edit-or-view callback for the layout, then the fallback.
func (r *Registry) displayScalar(ctx context.Context, u ui.UI, req Request, value component.RawValue) {
	args := req.args(value, req.CacheKey)
	if req.Value.Len() > 1 {
		// A slice of a larger batch has no identity of its own.
		args.CacheKey = 0
	}

	if fn, ok := r.legacyDisplay[req.Key]; ok {
		fn(ctx, u, args)
		return
	}

	if h, ok := r.editOrViewFor(req.Key, req.Layout.IsDetail()); ok {
		// Display mode never yields a change, so the result is ignored.
		if _, err := h.run(ctx, u, value, ModeDisplay); err == nil {
			return
		}
	}

	r.fallback(ctx, u, args)
}

func (r *Registry) renderMissing(ctx context.Context, u ui.UI, req Request) {
	r.once.Error(ctx, "missing:"+string(req.Path)+":"+string(req.Key),
		"Component is missing.", "path", req.Path, "key", req.Key)
	u.ErrorLabel(fmt.Sprintf("Couldn't get %s: missing", req.Key.ShortName()))
}

func (r *Registry) commit(ctx context.Context, writePath component.EntityPath, key component.TypeKey, value component.RawValue) error {
	if r.committer == nil {
		return &WriteError{Path: writePath, Key: key, Err: ErrNoCommitter}
	}

	logger := ctxlog.FromContext(ctx)
	if err := r.committer.Commit(ctx, writePath, key, value); err != nil {
		var werr *WriteError
		if errors.As(err, &werr) {
			return werr
		}
		return &WriteError{Path: writePath, Key: key, Err: err}
	}
	logger.Debug("Committed edited component.", "path", writePath, "key", key)
	return nil
}
