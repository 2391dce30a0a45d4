package config

import (
	"context"
	"fmt"
	"sort"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of everything loaded:
// component manifests and logged data.
type Model struct {
	Components map[component.TypeKey]*ComponentDefinition
	Logs       []*LogEntry
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Components: make(map[component.TypeKey]*ComponentDefinition)}
}

// ComponentDefinition is the manifest of one component kind.
type ComponentDefinition struct {
	Key         component.TypeKey
	Description string

	// Type is the cty type of a single instance. cty.DynamicPseudoType
	// disables type checking for the component.
	Type cty.Type

	// Fallback is the value edited when the component has no value yet.
	Fallback *cty.Value
}

// LogEntry is one batch of component values logged for an entity at a point
// on a timeline. An empty Timeline marks static data.
type LogEntry struct {
	Path       component.EntityPath
	Timeline   string
	At         int64
	Components map[component.TypeKey]component.RawValue
}

// Merge adds other's definitions and logs to m. Definitions in other replace
// those already present.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	for k, def := range other.Components {
		m.Components[k] = def
	}
	m.Logs = append(m.Logs, other.Logs...)
}

// Keys returns the keys of all declared components, sorted.
func (m *Model) Keys() []component.TypeKey {
	keys := make([]component.TypeKey, 0, len(m.Components))
	for k := range m.Components {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// FallbackFor returns the declared fallback of key as a length-1 batch.
func (m *Model) FallbackFor(_ context.Context, key component.TypeKey) (component.RawValue, bool) {
	def, ok := m.Components[key]
	if !ok || def.Fallback == nil {
		return component.RawValue{}, false
	}
	return component.Single(*def.Fallback), true
}

// Validate checks that every declared fallback conforms to its type.
func (m *Model) Validate() error {
	for _, k := range m.Keys() {
		def := m.Components[k]
		if def.Fallback == nil || def.Type.Equals(cty.DynamicPseudoType) {
			continue
		}
		if errs := def.Fallback.Type().TestConformance(def.Type); len(errs) > 0 {
			return fmt.Errorf("component '%s': fallback does not conform to %s: %v", k, def.Type.FriendlyName(), errs[0])
		}
	}
	return nil
}
