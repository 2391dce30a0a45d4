// Package dataui draws the data logged for an entity instance: the list of
// its components, each dispatched through the component UI registry, and the
// detail view of a single component that may be edited in place.
package dataui

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/ctxlog"
	"github.com/specialistvlad/componentui/internal/registry"
	"github.com/specialistvlad/componentui/internal/ui"
)

// Resolver is the value store the data UI reads from.
type Resolver interface {
	// Resolve returns the latest-at batch of key at path. A component that
	// was never logged resolves to the zero RawValue and no error.
	Resolve(ctx context.Context, path component.EntityPath, key component.TypeKey, q component.Query) (component.RawValue, component.CacheKey, error)

	// Components lists the keys with a value at path for q, sorted.
	Components(ctx context.Context, path component.EntityPath, q component.Query) ([]component.TypeKey, error)
}

// InstancePath addresses one instance of an entity, or all of them.
type InstancePath struct {
	Path     component.EntityPath
	Instance component.Instance
}

// String renders the path as "/entity" or "/entity[3]".
func (p InstancePath) String() string {
	if p.Instance.IsAll() {
		return string(p.Path)
	}
	return fmt.Sprintf("%s[%d]", p.Path, uint64(p.Instance))
}

// ParseInstancePath parses "/entity" (all instances) and "/entity[3]".
func ParseInstancePath(s string) (InstancePath, error) {
	s = strings.TrimSpace(s)
	open := strings.LastIndexByte(s, '[')
	if open < 0 || !strings.HasSuffix(s, "]") {
		if strings.ContainsAny(s, "[]") {
			return InstancePath{}, fmt.Errorf("dataui: invalid instance path %q", s)
		}
		return InstancePath{Path: component.ParseEntityPath(s), Instance: component.AllInstances}, nil
	}
	instance, err := component.ParseInstance(s[open+1 : len(s)-1])
	if err != nil {
		return InstancePath{}, fmt.Errorf("dataui: invalid instance path %q: %w", s, err)
	}
	return InstancePath{Path: component.ParseEntityPath(s[:open]), Instance: instance}, nil
}

// DataUI draws entity data through a registry.
type DataUI struct {
	reg      *registry.Registry
	resolver Resolver
}

// New creates a DataUI.
func New(reg *registry.Registry, resolver Resolver) *DataUI {
	return &DataUI{reg: reg, resolver: resolver}
}

type resolved struct {
	key      component.TypeKey
	value    component.RawValue
	cacheKey component.CacheKey
}

// InstanceUI draws every component of p. Single-line layouts only get a
// count; otherwise each component is one property row drawn in the list
// layout. Tooltips hide indicator components unless there is nothing else.
func (d *DataUI) InstanceUI(ctx context.Context, u ui.UI, layout ui.Layout, p InstancePath, q component.Query) error {
	keys, err := d.resolver.Components(ctx, p.Path, q)
	if err != nil {
		u.ErrorLabel(fmt.Sprintf("Failed to list components of %s: %v", p, err))
		return fmt.Errorf("list components of %s: %w", p, err)
	}

	components := make([]resolved, 0, len(keys))
	indicators := 0
	for _, key := range keys {
		value, cacheKey, err := d.resolver.Resolve(ctx, p.Path, key, q)
		if err != nil {
			u.ErrorLabel(fmt.Sprintf("Failed to query %s: %v", key.ShortName(), err))
			return fmt.Errorf("resolve %s of %s: %w", key, p, err)
		}
		if value.IsMissing() {
			continue
		}
		if key.IsIndicator() {
			indicators++
		}
		components = append(components, resolved{key: key, value: value, cacheKey: cacheKey})
	}

	if len(components) == 0 {
		u.Label(nothingLogged(q))
		return nil
	}

	if layout.IsSingleLine() {
		u.Label(fmt.Sprintf("%s (including %s)",
			plural(len(components), "component"), plural(indicators, "indicator component")))
		return nil
	}

	showIndicators := layout != ui.LayoutTooltip || indicators == len(components)
	for _, c := range components {
		if c.key.IsIndicator() {
			if showIndicators {
				u.Label(c.key.ShortName())
			}
			continue
		}
		c := c
		u.Property(c.key.ShortName(), func(u ui.UI) {
			d.reg.RenderDisplay(ctx, u, registry.Request{
				Path:     p.Path,
				Key:      c.key,
				Value:    c.value,
				Instance: p.Instance,
				Layout:   ui.LayoutList,
				CacheKey: c.cacheKey,
			})
		})
	}
	return nil
}

// ComponentUI draws a single component of p in layout. With allowEdit the
// component is editable and a change is committed to writePath; a component
// without a value is then edited starting from its fallback. The returned
// error is the committer's *registry.WriteError, already logged.
func (d *DataUI) ComponentUI(ctx context.Context, u ui.UI, layout ui.Layout, p InstancePath, key component.TypeKey, q component.Query, allowEdit bool, writePath component.EntityPath) error {
	value, cacheKey, err := d.resolver.Resolve(ctx, p.Path, key, q)
	if err != nil {
		u.ErrorLabel(fmt.Sprintf("Failed to query %s: %v", key.ShortName(), err))
		return fmt.Errorf("resolve %s of %s: %w", key, p, err)
	}

	req := registry.Request{
		Path:      p.Path,
		Key:       key,
		Value:     value,
		Instance:  p.Instance,
		Layout:    layout,
		AllowEdit: allowEdit,
		CacheKey:  cacheKey,
	}
	var renderErr error
	u.Property(key.ShortName(), func(u ui.UI) {
		renderErr = d.reg.RenderEdit(ctx, u, req, writePath)
	})
	if renderErr != nil {
		ctxlog.FromContext(ctx).Error("Failed to write edited component.", "path", writePath, "key", key, "error", renderErr)
	}
	return renderErr
}

func nothingLogged(q component.Query) string {
	if q.IsStatic() {
		return "Nothing logged"
	}
	return fmt.Sprintf("Nothing logged at %s = %d", q.Timeline, q.At)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
