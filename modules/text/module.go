package text

import (
	"context"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/registry"
	"github.com/specialistvlad/componentui/internal/ui"
)

// Keys of the string components this module draws.
const (
	NameKey  = "components.Name"
	LabelKey = "components.Label"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// editor returns a single-line text editor whose widget id is the short
// name of key.
func editor(key component.TypeKey) registry.EditOrViewFunc[string] {
	id := key.ShortName()
	return func(_ context.Context, u ui.UI, value *registry.MaybeMut[string]) bool {
		s := value.AsMut()
		if s == nil {
			if value.Get() == "" {
				u.WeakLabel("empty")
			} else {
				u.Label(value.Get())
			}
			return false
		}
		return u.TextEdit(id, s)
	}
}

// Register registers the handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	for _, key := range []component.TypeKey{NameKey, LabelKey} {
		registry.RegisterSingleline(r, key, editor(key))
	}
}
