package registry

import "context"

type contextKey struct{}

// WithRegistry returns a copy of ctx carrying r, so draw code deep in the UI
// tree reaches the registry without a global.
func WithRegistry(ctx context.Context, r *Registry) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext returns the registry carried by ctx, or nil.
func FromContext(ctx context.Context) *Registry {
	r, _ := ctx.Value(contextKey{}).(*Registry)
	return r
}
