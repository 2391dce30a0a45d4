package visible

import (
	"context"

	"github.com/specialistvlad/componentui/internal/registry"
	"github.com/specialistvlad/componentui/internal/ui"
)

// Key is the component this module draws.
const Key = "components.Visible"

// Module implements the registry.Module interface for this package.
type Module struct{}

// EditVisible draws the visibility toggle.
func EditVisible(_ context.Context, u ui.UI, value *registry.MaybeMut[bool]) bool {
	b := value.AsMut()
	if b == nil {
		if value.Get() {
			u.Label("visible")
		} else {
			u.WeakLabel("hidden")
		}
		return false
	}
	return u.Checkbox("Visible", "visible", b)
}

// Register registers the handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	registry.RegisterSingleline(r, Key, EditVisible)
}
