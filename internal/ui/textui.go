package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TextUI is a line-oriented UI. Every draw call becomes one indented line,
// which makes it usable both as a CLI surface and as a recording fake in
// tests. Input is scripted: a widget whose id appears in the script takes the
// scripted value the first time it is drawn and reports a change.
type TextUI struct {
	out    io.Writer
	lines  []string
	depth  int
	script map[string]string

	prefix      string
	prefixDepth int

	applied map[string]bool
	changed []string
}

// NewTextUI creates a TextUI. out may be nil to only record lines. script
// maps widget ids to the textual input to apply.
func NewTextUI(out io.Writer, script map[string]string) *TextUI {
	if script == nil {
		script = map[string]string{}
	}
	return &TextUI{
		out:     out,
		script:  script,
		applied: make(map[string]bool),
	}
}

// ParseScript turns "id=value" pairs into a script map.
func ParseScript(pairs []string) (map[string]string, error) {
	script := make(map[string]string, len(pairs))
	for _, p := range pairs {
		id, value, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("ui: invalid input %q: expected id=value", p)
		}
		script[strings.TrimSpace(id)] = value
	}
	return script, nil
}

// Lines returns every line drawn so far.
func (t *TextUI) Lines() []string {
	t.flush()
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// String returns all drawn lines joined by newlines.
func (t *TextUI) String() string {
	return strings.Join(t.Lines(), "\n")
}

// Changed returns the ids of widgets whose value changed, in draw order.
func (t *TextUI) Changed() []string {
	return t.changed
}

func (t *TextUI) write(depth int, text string) {
	line := strings.Repeat("  ", depth) + text
	t.lines = append(t.lines, line)
	if t.out != nil {
		fmt.Fprintln(t.out, line)
	}
}

func (t *TextUI) emit(text string) {
	if t.prefix != "" {
		prefix, depth := t.prefix, t.prefixDepth
		t.prefix = ""
		t.write(depth, prefix+": "+text)
		return
	}
	t.write(t.depth, text)
}

// flush writes a property name whose body has not drawn anything yet.
func (t *TextUI) flush() {
	if t.prefix == "" {
		return
	}
	prefix, depth := t.prefix, t.prefixDepth
	t.prefix = ""
	t.write(depth, prefix+":")
}

// take returns the scripted input for id, at most once.
func (t *TextUI) take(id string) (string, bool) {
	if t.applied[id] {
		return "", false
	}
	v, ok := t.script[id]
	if ok {
		t.applied[id] = true
	}
	return v, ok
}

func (t *TextUI) widget(id, rendered string, changed bool) {
	if changed {
		t.changed = append(t.changed, id)
		rendered += " *"
	}
	t.emit(fmt.Sprintf("[%s] %s", id, rendered))
}

func (t *TextUI) invalid(id, input string, err error) {
	t.emit(fmt.Sprintf("error: invalid input %q for %s: %v", input, id, err))
}

// Label implements UI.
func (t *TextUI) Label(text string) {
	t.emit(text)
}

// WeakLabel implements UI.
func (t *TextUI) WeakLabel(text string) {
	t.emit("(" + text + ")")
}

// ErrorLabel implements UI.
func (t *TextUI) ErrorLabel(text string) {
	t.emit("error: " + text)
}

// Property implements UI.
func (t *TextUI) Property(name string, body func(UI)) {
	t.flush()
	t.prefix, t.prefixDepth = name, t.depth
	t.depth++
	body(t)
	t.depth--
	t.flush()
}

// Group implements UI.
func (t *TextUI) Group(title string, body func(UI)) {
	t.emit(title)
	t.depth++
	body(t)
	t.depth--
	t.flush()
}

// TextEdit implements UI.
func (t *TextUI) TextEdit(id string, value *string) bool {
	in, ok := t.take(id)
	changed := ok
	if ok {
		*value = in
	}
	t.widget(id, strconv.Quote(*value), changed)
	return changed
}

// Checkbox implements UI.
func (t *TextUI) Checkbox(id, label string, value *bool) bool {
	changed := false
	if in, ok := t.take(id); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(in))
		if err != nil {
			t.invalid(id, in, err)
		} else {
			*value = b
			changed = true
		}
	}
	mark := "[ ]"
	if *value {
		mark = "[x]"
	}
	t.widget(id, mark+" "+label, changed)
	return changed
}

// NumberEdit implements UI.
func (t *TextUI) NumberEdit(id string, value *float64) bool {
	changed := false
	if in, ok := t.take(id); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(in), 64)
		if err != nil {
			t.invalid(id, in, err)
		} else {
			*value = f
			changed = true
		}
	}
	t.widget(id, strconv.FormatFloat(*value, 'g', -1, 64), changed)
	return changed
}

// ColorEdit implements UI.
func (t *TextUI) ColorEdit(id string, rgba *[4]uint8) bool {
	changed := false
	if in, ok := t.take(id); ok {
		c, err := ParseColor(strings.TrimSpace(in))
		if err != nil {
			t.invalid(id, in, err)
		} else {
			*rgba = c
			changed = true
		}
	}
	t.widget(id, FormatColor(*rgba), changed)
	return changed
}

// ComboBox implements UI.
func (t *TextUI) ComboBox(id string, value *string, options []string) bool {
	changed := false
	if in, ok := t.take(id); ok {
		found := false
		for _, o := range options {
			if o == in {
				found = true
				break
			}
		}
		if !found {
			t.invalid(id, in, fmt.Errorf("not one of %s", strings.Join(options, ", ")))
		} else {
			*value = in
			changed = true
		}
	}
	t.widget(id, "< "+*value+" >", changed)
	return changed
}
