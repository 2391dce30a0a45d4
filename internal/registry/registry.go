package registry

import (
	"log/slog"
	"sort"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Module is the interface that all component UI modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// editOrView is a type-erased edit-or-view callback together with the cty
// element type its typed callback decodes.
type editOrView struct {
	run      untypedEditOrView
	elemType cty.Type
}

// Registry holds the handler tables and the collaborators used during dispatch.
type Registry struct {
	fallback LegacyDisplayFunc

	legacyDisplay map[component.TypeKey]LegacyDisplayFunc
	singleline    map[component.TypeKey]*editOrView
	multiline     map[component.TypeKey]*editOrView

	committer      Committer
	fallbackValues FallbackProvider
	logger         *slog.Logger
	once           *ctxlog.Once
}

// Option configures a Registry.
type Option func(*Registry)

// WithCommitter sets the collaborator that persists edited values.
func WithCommitter(c Committer) Option {
	return func(r *Registry) { r.committer = c }
}

// WithFallbackValues sets the provider of start values for editing
// components that have no value yet.
func WithFallbackValues(p FallbackProvider) Option {
	return func(r *Registry) { r.fallbackValues = p }
}

// WithLogger sets the logger used during registration. Draw calls log
// through the logger carried by their context.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// New creates an empty registry. fallback draws anything no registered
// callback handles; nil uses a FallbackUI without a cache.
func New(fallback LegacyDisplayFunc, opts ...Option) *Registry {
	r := &Registry{
		fallback:      fallback,
		legacyDisplay: make(map[component.TypeKey]LegacyDisplayFunc),
		singleline:    make(map[component.TypeKey]*editOrView),
		multiline:     make(map[component.TypeKey]*editOrView),
		logger:        slog.Default(),
		once:          ctxlog.NewOnce(),
	}
	if r.fallback == nil {
		r.fallback = NewFallbackUI(nil).Render
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterModules lets every module register its callbacks.
func (r *Registry) RegisterModules(modules ...Module) {
	for _, m := range modules {
		m.Register(r)
	}
	r.logger.Debug("Component UI modules registered.", "modules", len(modules), "keys", len(r.Keys()))
}

// Keys returns every TypeKey with at least one registered callback, sorted.
func (r *Registry) Keys() []component.TypeKey {
	seen := make(map[component.TypeKey]struct{})
	for k := range r.legacyDisplay {
		seen[k] = struct{}{}
	}
	for k := range r.singleline {
		seen[k] = struct{}{}
	}
	for k := range r.multiline {
		seen[k] = struct{}{}
	}
	keys := make([]component.TypeKey, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Committer returns the configured committer, or nil.
func (r *Registry) Committer() Committer {
	return r.committer
}
