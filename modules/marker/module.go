package marker

import (
	"context"

	"github.com/specialistvlad/componentui/internal/registry"
	"github.com/specialistvlad/componentui/internal/ui"
)

// Key is the component this module draws.
const Key = "components.MarkerShape"

// Shapes are the marker shapes a point can be drawn with, in menu order.
var Shapes = []string{"circle", "diamond", "square", "cross", "plus", "up", "down", "left", "right", "asterisk"}

// Module implements the registry.Module interface for this package.
type Module struct{}

// EditShape draws a combo box over Shapes. A stored shape that is not in
// the menu is shown as-is and can only be replaced by a known one.
func EditShape(_ context.Context, u ui.UI, value *registry.MaybeMut[string]) bool {
	shape := value.AsMut()
	if shape == nil {
		u.Label(value.Get())
		return false
	}
	return u.ComboBox("MarkerShape", shape, Shapes)
}

// Register registers the handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	registry.RegisterSingleline(r, Key, EditShape)
}
