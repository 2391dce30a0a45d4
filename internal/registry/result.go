package registry

import (
	"context"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/ui"
)

// Mode selects whether an edit-or-view callback may mutate its value.
type Mode int

const (
	// ModeDisplay shows the value read-only. It never yields a change.
	ModeDisplay Mode = iota

	// ModeEdit lets the callback mutate the value.
	ModeEdit
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "display"
}

// EditResult is the outcome of running an edit-or-view callback: either
// Unchanged, or Changed with a length-1 replacement value. A change is
// reported whenever the callback says so, even if the new value equals the
// old one, so that e.g. confirming a fallback value still writes it.
type EditResult struct {
	changed bool
	value   component.RawValue
}

// Unchanged is the result of a callback that did not change its value.
func Unchanged() EditResult {
	return EditResult{}
}

// Changed is the result of a callback that produced value.
func Changed(value component.RawValue) EditResult {
	return EditResult{changed: true, value: value}
}

// Value returns the replacement value and whether there is one.
func (r EditResult) Value() (component.RawValue, bool) {
	return r.value, r.changed
}

// IsChanged reports whether the result carries a replacement value.
func (r EditResult) IsChanged() bool {
	return r.changed
}

// untypedEditOrView is the uniform, type-erased form of a typed callback.
// A non-nil error means the value could not be shown at all (cardinality or
// decoding failure) and the caller should fall back to a less specific renderer.
type untypedEditOrView func(ctx context.Context, u ui.UI, raw component.RawValue, mode Mode) (EditResult, error)
