package marker

import (
	"context"
	"testing"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/registry"
	"github.com/specialistvlad/componentui/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestEditShape(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		input      string
		wantCommit bool
		wantLine   string
	}{
		{name: "known shape", input: "diamond", wantCommit: true, wantLine: "[MarkerShape] < diamond > *"},
		{name: "unknown shape", input: "star", wantCommit: false, wantLine: "[MarkerShape] < circle >"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			var committed []component.RawValue
			r := registry.New(nil, registry.WithCommitter(registry.CommitterFunc(
				func(_ context.Context, _ component.EntityPath, _ component.TypeKey, v component.RawValue) error {
					committed = append(committed, v)
					return nil
				})))
			r.RegisterModules(&Module{})
			u := ui.NewTextUI(nil, map[string]string{"MarkerShape": tc.input})

			// --- Act ---
			err := r.RenderEdit(context.Background(), u, registry.Request{
				Key:       Key,
				Value:     component.Batch(cty.String, cty.StringVal("circle")),
				AllowEdit: true,
			}, "/e")

			// --- Assert ---
			require.NoError(t, err)
			assert.Contains(t, u.Lines(), tc.wantLine)
			if !tc.wantCommit {
				assert.Empty(t, committed)
				return
			}
			require.Len(t, committed, 1)
			assert.Equal(t, tc.input, committed[0].Element(0).AsString())
		})
	}
}
