package scalar

import (
	"context"
	"strconv"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/registry"
	"github.com/specialistvlad/componentui/internal/ui"
)

// Keys of the numeric components this module draws.
const (
	RadiusKey = "components.Radius"
	ScalarKey = "components.Scalar"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// NonNegative lists keys whose edits are clamped at zero.
	NonNegative []component.TypeKey
}

// NewModule returns the module with radius clamped at zero.
func NewModule() *Module {
	return &Module{NonNegative: []component.TypeKey{RadiusKey}}
}

func editor(key component.TypeKey, nonNegative bool) registry.EditOrViewFunc[float64] {
	id := key.ShortName()
	return func(_ context.Context, u ui.UI, value *registry.MaybeMut[float64]) bool {
		f := value.AsMut()
		if f == nil {
			u.Label(strconv.FormatFloat(value.Get(), 'g', -1, 64))
			return false
		}
		if !u.NumberEdit(id, f) {
			return false
		}
		if nonNegative && *f < 0 {
			*f = 0
		}
		return true
	}
}

// Register registers the handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	clamped := make(map[component.TypeKey]bool, len(m.NonNegative))
	for _, k := range m.NonNegative {
		clamped[k] = true
	}
	for _, key := range []component.TypeKey{RadiusKey, ScalarKey} {
		registry.RegisterSingleline(r, key, editor(key, clamped[key]))
	}
}
