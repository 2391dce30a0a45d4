package registry

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/componentui/internal/component"
)

// Registry errors.
var (
	// ErrNoCommitter indicates an edit produced a value but no Committer is configured.
	ErrNoCommitter = errors.New("registry: no committer configured")

	// ErrCardinality indicates a typed callback was reached with a batch whose length is not 1.
	ErrCardinality = errors.New("registry: typed callbacks need exactly one instance")

	// ErrDecode indicates a value could not be decoded into the callback's Go type.
	ErrDecode = errors.New("registry: failed to deserialize component")

	// ErrEncode indicates an edited value could not be encoded back.
	ErrEncode = errors.New("registry: failed to serialize edited component")
)

// WriteError is returned by RenderEdit when the Committer rejects an edited value.
type WriteError struct {
	Path component.EntityPath
	Key  component.TypeKey
	Err  error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("registry: failed to write %s to %s: %v", e.Key, e.Path, e.Err)
}

// Unwrap returns the underlying committer error.
func (e *WriteError) Unwrap() error {
	return e.Err
}
