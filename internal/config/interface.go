package config

import (
	"context"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads manifests and data files from the given paths (files or
	// directories) and translates them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)

	// LoadSource parses a single in-memory document. name is used in
	// diagnostics only.
	LoadSource(ctx context.Context, name string, src []byte) (*Model, error)
}
