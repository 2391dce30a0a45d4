package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type testModule struct {
	registered bool
}

func (m *testModule) Register(r *Registry) {
	m.registered = true
	r.RegisterDisplay("test.Blob", func(_ context.Context, u ui.UI, _ DisplayArgs) { u.Label("blob") })
}

func TestRegisterModules(t *testing.T) {
	t.Parallel()

	r := New(nil)
	m := &testModule{}

	r.RegisterModules(m)

	assert.True(t, m.registered)
	assert.Equal(t, []component.TypeKey{"test.Blob"}, r.Keys())
}

func TestCapabilitiesOf(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r := New(nil)
	noop := func(context.Context, ui.UI, DisplayArgs) {}
	view := func(context.Context, ui.UI, *MaybeMut[string]) bool { return false }

	r.RegisterDisplay("test.Legacy", noop)
	RegisterSingleline(r, "test.Single", view)
	RegisterMultiline(r, "test.Multi", view)
	r.RegisterDisplay("test.Status", noop)
	RegisterSingleline(r, "test.Status", view)

	testCases := []struct {
		key  component.TypeKey
		want UITypes
	}{
		{"test.Temp", 0},
		{"test.Legacy", DisplayUI},
		{"test.Single", DisplayUI | SingleLineEditor},
		{"test.Multi", DisplayUI | MultiLineEditor},
		{"test.Status", DisplayUI | SingleLineEditor},
	}

	for _, tc := range testCases {
		t.Run(string(tc.key), func(t *testing.T) {
			assert.Equal(t, tc.want, r.CapabilitiesOf(tc.key))
		})
	}

	assert.Equal(t, "none", UITypes(0).String())
	assert.Equal(t, "display|singleline", (DisplayUI | SingleLineEditor).String())
	assert.False(t, r.IsEditable("test.Legacy"))
	assert.True(t, r.IsEditable("test.Multi"))
	assert.Equal(t, []component.TypeKey{"test.Legacy", "test.Multi", "test.Single", "test.Status"}, r.Keys())
}

func TestRegister_LastRegistrationWins(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r := New(nil)
	r.RegisterDisplay("test.Name", func(_ context.Context, u ui.UI, _ DisplayArgs) { u.Label("first") })
	r.RegisterDisplay("test.Name", func(_ context.Context, u ui.UI, _ DisplayArgs) { u.Label("second") })
	RegisterSingleline(r, "test.Other", func(_ context.Context, u ui.UI, _ *MaybeMut[string]) bool {
		u.Label("first")
		return false
	})
	RegisterSingleline(r, "test.Other", func(_ context.Context, u ui.UI, _ *MaybeMut[string]) bool {
		u.Label("second")
		return false
	})
	value := component.Single(cty.StringVal("x"))

	// --- Act ---
	u := ui.NewTextUI(nil, nil)
	r.RenderDisplay(context.Background(), u, Request{Key: "test.Name", Value: value})
	r.RenderDisplay(context.Background(), u, Request{Key: "test.Other", Value: value})

	// --- Assert ---
	assert.Equal(t, []string{"second", "second"}, u.Lines())
}

func TestRegisterSingleline_PanicsOnTypeWithoutCtyEquivalent(t *testing.T) {
	t.Parallel()

	r := New(nil)
	require.Panics(t, func() {
		RegisterSingleline(r, "test.Chan", func(context.Context, ui.UI, *MaybeMut[chan int]) bool { return false })
	})
}

func TestContext_CarriesRegistry(t *testing.T) {
	t.Parallel()

	r := New(nil)

	ctx := WithRegistry(context.Background(), r)

	assert.Same(t, r, FromContext(ctx))
	assert.Nil(t, FromContext(context.Background()))
}
