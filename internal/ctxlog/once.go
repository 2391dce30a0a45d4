package ctxlog

import (
	"context"
	"log/slog"
	"sync"
)

// Once suppresses repeated log lines. Each distinct key is logged the first
// time it is seen; later calls with the same key are dropped. Per-frame UI
// code hits the same failure every frame, so without this a single bad value
// would flood the log.
type Once struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewOnce creates an empty Once set.
func NewOnce() *Once {
	return &Once{seen: make(map[string]struct{})}
}

// first reports whether key has not been logged before and marks it as seen.
func (o *Once) first(key string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.seen[key]; ok {
		return false
	}
	o.seen[key] = struct{}{}
	return true
}

// Log emits msg at level through the context logger unless key was already logged.
// It reports whether the line was emitted.
func (o *Once) Log(ctx context.Context, level slog.Level, key, msg string, args ...any) bool {
	if !o.first(key) {
		return false
	}
	FromContext(ctx).Log(ctx, level, msg, args...)
	return true
}

// Warn is Log at slog.LevelWarn.
func (o *Once) Warn(ctx context.Context, key, msg string, args ...any) bool {
	return o.Log(ctx, slog.LevelWarn, key, msg, args...)
}

// Error is Log at slog.LevelError.
func (o *Once) Error(ctx context.Context, key, msg string, args ...any) bool {
	return o.Log(ctx, slog.LevelError, key, msg, args...)
}

// Reset forgets every key seen so far.
func (o *Once) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = make(map[string]struct{})
}
