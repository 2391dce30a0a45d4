package registry

import (
	"strings"

	"github.com/specialistvlad/componentui/internal/component"
)

// UITypes is the set of UI capabilities registered for a TypeKey.
type UITypes uint8

const (
	// DisplayUI means the key can be displayed by a dedicated callback.
	DisplayUI UITypes = 1 << iota

	// SingleLineEditor means a single-line edit-or-view callback exists.
	SingleLineEditor

	// MultiLineEditor means a multi-line edit-or-view callback exists.
	MultiLineEditor
)

// Has reports whether all capabilities in o are present.
func (t UITypes) Has(o UITypes) bool {
	return t&o == o
}

// String implements fmt.Stringer.
func (t UITypes) String() string {
	if t == 0 {
		return "none"
	}
	var parts []string
	if t.Has(DisplayUI) {
		parts = append(parts, "display")
	}
	if t.Has(SingleLineEditor) {
		parts = append(parts, "singleline")
	}
	if t.Has(MultiLineEditor) {
		parts = append(parts, "multiline")
	}
	return strings.Join(parts, "|")
}

// RegisterDisplay registers a legacy, view-only callback for key. A legacy
// display callback takes precedence over every edit-or-view callback when
// displaying and is never used for editing. Re-registering replaces the
// previous callback.
func (r *Registry) RegisterDisplay(key component.TypeKey, fn LegacyDisplayFunc) {
	_, replaced := r.legacyDisplay[key]
	r.logger.Debug("Registering legacy display UI.", "key", key, "replaced", replaced)
	r.legacyDisplay[key] = fn
}

func (r *Registry) registerEditOrView(table map[component.TypeKey]*editOrView, kind string, key component.TypeKey, h *editOrView) {
	_, replaced := table[key]
	r.logger.Debug("Registering edit-or-view UI.", "kind", kind, "key", key, "type", h.elemType.FriendlyName(), "replaced", replaced)
	table[key] = h
}

// CapabilitiesOf reports which callbacks exist for key. Registering an
// edit-or-view callback implies DisplayUI. A key with no callback returns the
// empty set; it is still displayable through the fallback renderer.
func (r *Registry) CapabilitiesOf(key component.TypeKey) UITypes {
	var caps UITypes
	if _, ok := r.legacyDisplay[key]; ok {
		caps |= DisplayUI
	}
	if _, ok := r.singleline[key]; ok {
		caps |= DisplayUI | SingleLineEditor
	}
	if _, ok := r.multiline[key]; ok {
		caps |= DisplayUI | MultiLineEditor
	}
	return caps
}

// IsEditable reports whether key has any edit-or-view callback.
func (r *Registry) IsEditable(key component.TypeKey) bool {
	caps := r.CapabilitiesOf(key)
	return caps.Has(SingleLineEditor) || caps.Has(MultiLineEditor)
}

// editOrViewFor picks the edit-or-view callback for the layout. The detail
// layout prefers the multi-line callback and falls back to the single-line
// one; compact layouts only use single-line callbacks.
func (r *Registry) editOrViewFor(key component.TypeKey, detail bool) (*editOrView, bool) {
	if detail {
		if h, ok := r.multiline[key]; ok {
			return h, true
		}
	}
	h, ok := r.singleline[key]
	return h, ok
}
