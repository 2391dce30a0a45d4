// Package ui defines the immediate-mode drawing surface that component UIs
// render into, and a scripted text implementation of it.
//
// Widgets follow the immediate-mode convention: they are called every frame
// with a pointer to the current value, draw it, apply any pending user input
// to it and report whether the value changed during this frame.
package ui

import "fmt"

// Layout describes the context a component is drawn in.
type Layout int

const (
	// LayoutList is a compact, single-line list item.
	LayoutList Layout = iota

	// LayoutSelectionPanel is the detail view of the selected item. It is the
	// only layout in which multi-line editors are preferred.
	LayoutSelectionPanel

	// LayoutTooltip is a compact hover view.
	LayoutTooltip
)

// IsDetail reports whether the layout is the detail (selection) context.
func (l Layout) IsDetail() bool {
	return l == LayoutSelectionPanel
}

// IsSingleLine reports whether content should fit on one line. Tooltips
// are compact but may span several lines.
func (l Layout) IsSingleLine() bool {
	return l == LayoutList
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case LayoutList:
		return "list"
	case LayoutSelectionPanel:
		return "selection"
	case LayoutTooltip:
		return "tooltip"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout parses the names produced by Layout.String.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "list":
		return LayoutList, nil
	case "selection", "detail":
		return LayoutSelectionPanel, nil
	case "tooltip":
		return LayoutTooltip, nil
	default:
		return LayoutList, fmt.Errorf("ui: unknown layout %q: must be 'list', 'selection' or 'tooltip'", s)
	}
}

// UI is the drawing surface handed to component callbacks.
type UI interface {
	// Label draws plain text.
	Label(text string)

	// WeakLabel draws de-emphasized text.
	WeakLabel(text string)

	// ErrorLabel draws an error message in place of content.
	ErrorLabel(text string)

	// Property draws a named row; body draws the value side.
	Property(name string, body func(UI))

	// Group draws a titled, indented section.
	Group(title string, body func(UI))

	// TextEdit draws an editable single-line text field.
	TextEdit(id string, value *string) bool

	// Checkbox draws an editable boolean.
	Checkbox(id, label string, value *bool) bool

	// NumberEdit draws an editable number.
	NumberEdit(id string, value *float64) bool

	// ColorEdit draws an editable RGBA color.
	ColorEdit(id string, rgba *[4]uint8) bool

	// ComboBox draws a selection among options.
	ComboBox(id string, value *string, options []string) bool
}

// FormatColor renders rgba as "#rrggbbaa".
func FormatColor(rgba [4]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", rgba[0], rgba[1], rgba[2], rgba[3])
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseColor(s string) ([4]uint8, error) {
	var rgba [4]uint8
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 6:
		rgba[3] = 0xff
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &rgba[0], &rgba[1], &rgba[2]); err != nil {
			return rgba, fmt.Errorf("ui: invalid color %q: %w", s, err)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &rgba[0], &rgba[1], &rgba[2], &rgba[3]); err != nil {
			return rgba, fmt.Errorf("ui: invalid color %q: %w", s, err)
		}
	default:
		return rgba, fmt.Errorf("ui: invalid color %q: expected 6 or 8 hex digits", s)
	}
	return rgba, nil
}
