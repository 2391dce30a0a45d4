package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/memo"
	"github.com/specialistvlad/componentui/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		val  cty.Value
		want string
	}{
		{"string", cty.StringVal("hi \"there\""), `"hi \"there\""`},
		{"number", cty.NumberFloatVal(1.25), "1.25"},
		{"bool", cty.True, "true"},
		{"null", cty.NullVal(cty.String), "null"},
		{"unknown", cty.UnknownVal(cty.Number), "(unknown)"},
		{"dynamic", cty.DynamicVal, "(unknown)"},
		{"list", cty.ListVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2)}), "[1, 2]"},
		{"empty list", cty.ListValEmpty(cty.String), "[]"},
		{"object sorted", colorVal(1, 2, 3, 4), "{a = 4, b = 3, g = 2, r = 1}"},
		{"map", cty.MapVal(map[string]cty.Value{"k": cty.StringVal("v")}), `{"k" = "v"}`},
		{"nested unknown", cty.TupleVal([]cty.Value{cty.UnknownVal(cty.Bool)}), "[(unknown)]"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, FormatValue(tc.val))
		})
	}
}

func TestFallbackUI_Render(t *testing.T) {
	t.Parallel()

	five := component.Batch(cty.Number,
		cty.NumberIntVal(1), cty.NumberIntVal(2), cty.NumberIntVal(3), cty.NumberIntVal(4), cty.NumberIntVal(5))

	testCases := []struct {
		name   string
		value  component.RawValue
		layout ui.Layout
		want   []string
	}{
		{"missing", component.RawValue{}, ui.LayoutList, []string{"(Temp: (missing))"}},
		{"empty", component.Batch(cty.Number), ui.LayoutList, []string{"(Temp: empty)"}},
		{"single", component.Single(cty.NumberIntVal(7)), ui.LayoutSelectionPanel, []string{"7"}},
		{"many compact", five, ui.LayoutTooltip, []string{"5 × Temp"}},
		{"many detail", five, ui.LayoutSelectionPanel, []string{
			"5 × Temp",
			"  [0] 1",
			"  [1] 2",
			"  [2] 3",
			"  (… 2 more)",
		}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := NewFallbackUI(nil)
			f.MaxPreview = 3
			u := ui.NewTextUI(nil, nil)

			f.Render(context.Background(), u, DisplayArgs{Layout: tc.layout, Key: "test.Temp", Value: tc.value})

			assert.Equal(t, tc.want, u.Lines())
		})
	}
}

func TestFallbackUI_MemoizesByCacheKey(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cache := memo.New[[]string](0)
	f := NewFallbackUI(cache)
	value := component.Batch(cty.String, cty.StringVal("a"), cty.StringVal("b"))
	args := DisplayArgs{Layout: ui.LayoutSelectionPanel, Key: "test.Name", Value: value, CacheKey: value.Hash()}

	// --- Act ---
	f.Render(context.Background(), ui.NewTextUI(nil, nil), args)
	f.Render(context.Background(), ui.NewTextUI(nil, nil), args)
	args.CacheKey = 0
	f.Render(context.Background(), ui.NewTextUI(nil, nil), args)

	// --- Assert ---
	hits, misses := cache.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.Equal(t, 1, cache.Len())
}
