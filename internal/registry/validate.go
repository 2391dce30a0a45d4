package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/config"
	"github.com/specialistvlad/componentui/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Validate performs a parity check between component manifests and the
// registered typed callbacks: a value logged with the manifest's type must be
// decodable by every edit-or-view callback of the same key, and so must the
// manifest's fallback.
func (r *Registry) Validate(ctx context.Context, defs map[component.TypeKey]*config.ComponentDefinition) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	check := func(kind string, key component.TypeKey, h *editOrView) {
		def, ok := defs[key]
		if !ok {
			logger.Debug("No manifest for component UI; skipping type check.", "key", key, "kind", kind)
			return
		}

		if def.Type.Equals(cty.DynamicPseudoType) {
			logger.Warn("Manifest for component has 'type = any', which disables static type checking. Consider using a specific type.", "key", key)
			return
		}

		if !def.Type.Equals(h.elemType) && convert.GetConversion(def.Type, h.elemType) == nil {
			errs = append(errs, fmt.Sprintf("component '%s': type mismatch. Manifest declares '%s' but the %s UI expects '%s'",
				key, def.Type.FriendlyName(), kind, h.elemType.FriendlyName()))
		}

		if def.Fallback != nil {
			if _, err := convert.Convert(*def.Fallback, h.elemType); err != nil {
				errs = append(errs, fmt.Sprintf("component '%s': fallback cannot be edited by the %s UI: %v", key, kind, err))
			}
		}
	}

	for _, key := range r.Keys() {
		if h, ok := r.singleline[key]; ok {
			check("singleline", key, h)
		}
		if h, ok := r.multiline[key]; ok {
			check("multiline", key, h)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
