package termui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/componentui/internal/ui"
)

func newSimSurface(t *testing.T, w, h int) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(w, h)
	t.Cleanup(sim.Fini)
	return New(sim), sim
}

func rowText(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, y) //nolint:staticcheck // GetContent is the simulation read-back API
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestSurface_DrawsLines(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	surface, sim := newSimSurface(t, 40, 5)
	u := surface.UI()

	// --- Act ---
	u.Property("Color", func(u ui.UI) { u.Label("#ff0000ff") })
	u.ErrorLabel("boom")
	surface.Show()

	// --- Assert ---
	assert.Equal(t, "Color: #ff0000ff", rowText(sim, 0))
	assert.Equal(t, "error: boom", rowText(sim, 1))
	assert.Equal(t, 2, surface.Rows())

	_, _, style, _ := sim.GetContent(0, 1) //nolint:staticcheck // read-back
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg)
}

func TestSurface_IsReadOnly(t *testing.T) {
	t.Parallel()

	surface, _ := newSimSurface(t, 20, 3)
	u := surface.UI()
	v := 1.0

	assert.False(t, u.NumberEdit("n", &v))
	assert.Equal(t, 1.0, v)
}

func TestSurface_ClipsAndClears(t *testing.T) {
	t.Parallel()

	surface, sim := newSimSurface(t, 5, 2)
	u := surface.UI()

	u.Label("abcdefgh")
	u.Label("second")
	u.Label("dropped")

	assert.Equal(t, "abcde", rowText(sim, 0))
	assert.Equal(t, "secon", rowText(sim, 1))
	assert.Equal(t, 2, surface.Rows())

	surface.Clear()
	assert.Equal(t, 0, surface.Rows())
}
