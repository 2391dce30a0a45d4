package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/config"
	"github.com/specialistvlad/componentui/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	r := New(nil)
	RegisterSingleline(r, "test.Color", func(context.Context, ui.UI, *MaybeMut[testColor]) bool { return false })
	RegisterMultiline(r, "test.Scalar", func(context.Context, ui.UI, *MaybeMut[float64]) bool { return false })
	RegisterSingleline(r, "test.Name", func(context.Context, ui.UI, *MaybeMut[string]) bool { return false })

	white := colorVal(255, 255, 255, 255)
	badFallback := cty.StringVal("abc")

	testCases := []struct {
		name    string
		defs    map[component.TypeKey]*config.ComponentDefinition
		wantErr []string
	}{
		{
			name: "matching types",
			defs: map[component.TypeKey]*config.ComponentDefinition{
				"test.Color":  {Key: "test.Color", Type: testColorType, Fallback: &white},
				"test.Scalar": {Key: "test.Scalar", Type: cty.Number},
			},
		},
		{
			name: "convertible types",
			defs: map[component.TypeKey]*config.ComponentDefinition{
				"test.Name": {Key: "test.Name", Type: cty.Number},
			},
		},
		{
			name: "any disables the check",
			defs: map[component.TypeKey]*config.ComponentDefinition{
				"test.Color": {Key: "test.Color", Type: cty.DynamicPseudoType},
			},
		},
		{
			name: "mismatch",
			defs: map[component.TypeKey]*config.ComponentDefinition{
				"test.Color": {Key: "test.Color", Type: cty.Bool},
			},
			wantErr: []string{"component 'test.Color': type mismatch"},
		},
		{
			name: "fallback not editable",
			defs: map[component.TypeKey]*config.ComponentDefinition{
				"test.Scalar": {Key: "test.Scalar", Type: cty.String, Fallback: &badFallback},
			},
			wantErr: []string{"component 'test.Scalar': fallback cannot be edited by the multiline UI"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := r.Validate(context.Background(), tc.defs)

			if len(tc.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tc.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
