package color

import (
	"context"
	"math"
	"strconv"

	"github.com/specialistvlad/componentui/internal/registry"
	"github.com/specialistvlad/componentui/internal/ui"
)

// Key is the component this module draws.
const Key = "components.Color"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Color is an sRGB color with straight alpha, one byte per channel.
type Color struct {
	R uint8 `cty:"r"`
	G uint8 `cty:"g"`
	B uint8 `cty:"b"`
	A uint8 `cty:"a"`
}

// RGBA returns the channels in r, g, b, a order.
func (c Color) RGBA() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// FromRGBA builds a Color from channels in r, g, b, a order.
func FromRGBA(rgba [4]uint8) Color {
	return Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
}

// EditColor is the single-line color picker.
func EditColor(_ context.Context, u ui.UI, value *registry.MaybeMut[Color]) bool {
	rgba := value.Get().RGBA()
	c := value.AsMut()
	if c == nil {
		u.Label(ui.FormatColor(rgba))
		return false
	}
	if !u.ColorEdit("Color", &rgba) {
		return false
	}
	*c = FromRGBA(rgba)
	return true
}

// EditChannels is the multi-line editor used in the selection panel. It shows
// the swatch and one number field per channel.
func EditChannels(_ context.Context, u ui.UI, value *registry.MaybeMut[Color]) bool {
	c := value.AsMut()
	current := value.Get()
	changed := false

	u.Group(ui.FormatColor(current.RGBA()), func(u ui.UI) {
		channels := []struct {
			name string
			ptr  *uint8
		}{
			{"r", &current.R},
			{"g", &current.G},
			{"b", &current.B},
			{"a", &current.A},
		}
		for _, ch := range channels {
			if c == nil {
				u.Property(ch.name, func(u ui.UI) { u.Label(formatChannel(*ch.ptr)) })
				continue
			}
			f := float64(*ch.ptr)
			if u.NumberEdit("Color."+ch.name, &f) {
				*ch.ptr = clampChannel(f)
				changed = true
			}
		}
	})

	if changed {
		*c = current
	}
	return changed
}

func formatChannel(v uint8) string {
	return strconv.Itoa(int(v))
}

func clampChannel(f float64) uint8 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= 255:
		return 255
	default:
		return uint8(math.Round(f))
	}
}

// Register registers the handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	registry.RegisterSingleline(r, Key, EditColor)
	registry.RegisterMultiline(r, Key, EditChannels)
}
