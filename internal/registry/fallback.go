package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/componentui/internal/memo"
	"github.com/specialistvlad/componentui/internal/ui"
	"github.com/zclconf/go-cty/cty"
)

// DefaultMaxPreview is the number of elements the detail layout previews for
// a batch with more than one instance.
const DefaultMaxPreview = 8

// FallbackUI is the total renderer used when no callback applies. It shows
// the component's name and instance count and formats elements in HCL syntax.
type FallbackUI struct {
	cache *memo.Cache[[]string]

	// MaxPreview bounds the number of elements listed in the detail layout.
	MaxPreview int
}

// NewFallbackUI creates a fallback renderer. cache may be nil, in which case
// formatted previews are recomputed on every draw.
func NewFallbackUI(cache *memo.Cache[[]string]) *FallbackUI {
	return &FallbackUI{cache: cache, MaxPreview: DefaultMaxPreview}
}

// Render implements LegacyDisplayFunc.
func (f *FallbackUI) Render(_ context.Context, u ui.UI, args DisplayArgs) {
	name := args.Key.ShortName()
	n := args.Value.Len()

	switch {
	case args.Value.IsMissing():
		u.WeakLabel(fmt.Sprintf("%s: (missing)", name))
	case n == 0:
		u.WeakLabel(fmt.Sprintf("%s: empty", name))
	case n == 1:
		u.Label(f.preview(args, 1)[0])
	case !args.Layout.IsDetail():
		u.Label(fmt.Sprintf("%d × %s", n, name))
	default:
		limit := f.MaxPreview
		if limit <= 0 || limit > n {
			limit = n
		}
		lines := f.preview(args, limit)
		u.Group(fmt.Sprintf("%d × %s", n, name), func(u ui.UI) {
			for i, line := range lines {
				u.Label(fmt.Sprintf("[%d] %s", i, line))
			}
			if rest := n - len(lines); rest > 0 {
				u.WeakLabel(fmt.Sprintf("… %d more", rest))
			}
		})
	}
}

// preview formats the first limit elements, memoized by the request's cache key.
func (f *FallbackUI) preview(args DisplayArgs, limit int) []string {
	compute := func() []string {
		out := make([]string, 0, limit)
		for i := 0; i < limit; i++ {
			out = append(out, FormatValue(args.Value.Element(i)))
		}
		return out
	}
	if f.cache == nil {
		return compute()
	}
	key := memo.Key{Hash: args.CacheKey, Variant: fmt.Sprintf("fallback:%s:%d", args.Key, limit)}
	return f.cache.GetOrCompute(key, compute)
}

// FormatValue renders v on one line in HCL syntax. It never fails.
func FormatValue(v cty.Value) string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

func writeValue(sb *strings.Builder, v cty.Value) {
	if v.IsMarked() {
		v, _ = v.Unmark()
	}
	switch {
	case !v.IsKnown():
		sb.WriteString("(unknown)")
		return
	case v.IsNull():
		sb.WriteString("null")
		return
	}

	ty := v.Type()
	switch {
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		sb.WriteByte('[')
		i := 0
		for it := v.ElementIterator(); it.Next(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			_, ev := it.Element()
			writeValue(sb, ev)
		}
		sb.WriteByte(']')
	case ty.IsMapType():
		sb.WriteByte('{')
		i := 0
		for it := v.ElementIterator(); it.Next(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			k, ev := it.Element()
			sb.WriteString(string(hclwrite.TokensForValue(k).Bytes()))
			sb.WriteString(" = ")
			writeValue(sb, ev)
		}
		sb.WriteByte('}')
	case ty.IsObjectType():
		names := make([]string, 0, len(ty.AttributeTypes()))
		for name := range ty.AttributeTypes() {
			names = append(names, name)
		}
		sort.Strings(names)
		sb.WriteByte('{')
		for i, name := range names {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(name)
			sb.WriteString(" = ")
			writeValue(sb, v.GetAttr(name))
		}
		sb.WriteByte('}')
	case ty.Equals(cty.DynamicPseudoType):
		sb.WriteString("(dynamic)")
	case ty.IsPrimitiveType():
		sb.WriteString(string(hclwrite.TokensForValue(v).Bytes()))
	default:
		sb.WriteString(v.GoString())
	}
}
