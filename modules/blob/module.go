package blob

import (
	"context"
	"fmt"
	"mime"

	"github.com/specialistvlad/componentui/internal/registry"
	"github.com/specialistvlad/componentui/internal/ui"
	"github.com/zclconf/go-cty/cty"
)

// Keys of the components this module draws.
const (
	BlobKey      = "components.Blob"
	MediaTypeKey = "components.MediaType"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// DisplayBlob draws a byte blob as its size. Blobs are never edited, so only
// a legacy display callback is registered.
func DisplayBlob(_ context.Context, u ui.UI, args registry.DisplayArgs) {
	if args.Value.Len() != 1 {
		u.Label(fmt.Sprintf("%d blobs", args.Value.Len()))
		return
	}
	v := args.Value.Element(0)
	if v.IsNull() || !v.IsKnown() || !v.CanIterateElements() {
		u.WeakLabel("no data")
		return
	}
	u.Label(FormatBytes(v.LengthInt()))
}

// DisplayMediaType draws a media type with its common file extension, if any.
func DisplayMediaType(_ context.Context, u ui.UI, args registry.DisplayArgs) {
	if args.Value.Len() != 1 {
		u.Label(fmt.Sprintf("%d media types", args.Value.Len()))
		return
	}
	v := args.Value.Element(0)
	if v.IsNull() || !v.IsKnown() || !v.Type().Equals(cty.String) {
		u.WeakLabel("unknown media type")
		return
	}
	mt := v.AsString()
	exts, err := mime.ExtensionsByType(mt)
	if err != nil || len(exts) == 0 {
		u.Label(mt)
		return
	}
	u.Label(fmt.Sprintf("%s (%s)", mt, exts[0]))
}

// FormatBytes renders n with a binary unit.
func FormatBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Register registers the handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterDisplay(BlobKey, DisplayBlob)
	r.RegisterDisplay(MediaTypeKey, DisplayMediaType)
}
