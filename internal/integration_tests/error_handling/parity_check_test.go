package integration_tests

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/componentui/internal/app"
	"github.com/specialistvlad/componentui/internal/registry"
	"github.com/specialistvlad/componentui/internal/ui"
	"github.com/stretchr/testify/require"
)

type mockParityCheckModule struct{}

func (m *mockParityCheckModule) Register(r *registry.Registry) {
	type mismatched struct {
		GoOnlyField string `cty:"go_only_field"`
	}
	registry.RegisterSingleline(r, "test.Mismatched", func(context.Context, ui.UI, *registry.MaybeMut[mismatched]) bool {
		return false
	})
}

// TestStartupValidation_ManifestImplementationMismatch_Fails validates that
// the app refuses to start if a manifest and a Go type are out of sync.
func TestStartupValidation_ManifestImplementationMismatch_Fails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	mismatchedManifest := `
		component "test.Mismatched" {
			type = object({ hcl_only_field = string })
		}
	`
	path := filepath.Join(t.TempDir(), "manifest.hcl")
	require.NoError(t, os.WriteFile(path, []byte(mismatchedManifest), 0o600))
	cfg := &app.Config{DataPaths: []string{path}, LogLevel: "error"}

	// --- Act ---
	_, err := app.NewApp(context.Background(), &app.SafeBuffer{}, &app.SafeBuffer{}, cfg, app.NewLoader(), &mockParityCheckModule{})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "registry validation failed")
	require.Contains(t, err.Error(), "test.Mismatched")
}
