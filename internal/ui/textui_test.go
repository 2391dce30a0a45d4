package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextUI_PropertyAndGroup(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	u := NewTextUI(out, nil)

	u.Property("Name", func(u UI) { u.Label("points") })
	u.Property("Empty", func(u UI) {})
	u.Group("Color", func(u UI) {
		u.Label("r")
		u.Property("nested", func(u UI) { u.WeakLabel("weak") })
	})
	u.ErrorLabel("boom")

	want := []string{
		"Name: points",
		"Empty:",
		"Color",
		"  r",
		"  nested: (weak)",
		"error: boom",
	}
	assert.Equal(t, want, u.Lines())
	assert.Equal(t, "Name: points\nEmpty:\nColor\n  r\n  nested: (weak)\nerror: boom\n", out.String())
}

func TestTextUI_ScriptedWidgets(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	u := NewTextUI(nil, map[string]string{
		"text":  "hello",
		"flag":  "true",
		"num":   "2.5",
		"color": "#10203040",
		"combo": "b",
	})
	text, flag, num := "", false, 0.0
	color := [4]uint8{}
	combo := "a"

	// --- Act ---
	changes := []bool{
		u.TextEdit("text", &text),
		u.Checkbox("flag", "Flag", &flag),
		u.NumberEdit("num", &num),
		u.ColorEdit("color", &color),
		u.ComboBox("combo", &combo, []string{"a", "b"}),
		u.TextEdit("untouched", &text),
	}

	// --- Assert ---
	assert.Equal(t, []bool{true, true, true, true, true, false}, changes)
	assert.Equal(t, "hello", text)
	assert.True(t, flag)
	assert.Equal(t, 2.5, num)
	assert.Equal(t, [4]uint8{0x10, 0x20, 0x30, 0x40}, color)
	assert.Equal(t, "b", combo)
	assert.Equal(t, []string{"text", "flag", "num", "color", "combo"}, u.Changed())
	assert.Equal(t, `[text] "hello" *`, u.Lines()[0])
}

func TestTextUI_ScriptAppliesOnce(t *testing.T) {
	t.Parallel()

	u := NewTextUI(nil, map[string]string{"num": "3"})
	v := 0.0

	require.True(t, u.NumberEdit("num", &v))
	v = 1
	assert.False(t, u.NumberEdit("num", &v))
	assert.Equal(t, 1.0, v)
}

func TestTextUI_InvalidInput(t *testing.T) {
	t.Parallel()

	u := NewTextUI(nil, map[string]string{"num": "abc", "combo": "z"})
	v := 1.0
	combo := "a"

	assert.False(t, u.NumberEdit("num", &v))
	assert.False(t, u.ComboBox("combo", &combo, []string{"a"}))
	assert.Equal(t, 1.0, v)
	assert.Contains(t, u.String(), `error: invalid input "abc" for num`)
}

func TestParseScript(t *testing.T) {
	t.Parallel()

	script, err := ParseScript([]string{"a=1", " b = x=y"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": " x=y"}, script)

	_, err = ParseScript([]string{"novalue"})
	require.Error(t, err)
}

func TestLayout(t *testing.T) {
	t.Parallel()

	for _, l := range []Layout{LayoutList, LayoutSelectionPanel, LayoutTooltip} {
		parsed, err := ParseLayout(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
	assert.True(t, LayoutSelectionPanel.IsDetail())
	assert.False(t, LayoutTooltip.IsDetail())
	assert.True(t, LayoutList.IsSingleLine())
	assert.False(t, LayoutTooltip.IsSingleLine())

	_, err := ParseLayout("grid")
	require.Error(t, err)
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, [4]uint8{0xff, 0x80, 0x00, 0xff}, c)
	assert.Equal(t, "#ff8000ff", FormatColor(c))

	_, err = ParseColor("#123")
	require.Error(t, err)
}
