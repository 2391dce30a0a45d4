package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/componentui/internal/config"
	"github.com/specialistvlad/componentui/internal/ctxlog"
	"github.com/specialistvlad/componentui/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	builtin []source
}

type source struct {
	name string
	src  []byte
}

// Option configures a Loader.
type Option func(*Loader)

// WithBuiltin adds an in-memory document that Load reads before any file.
// Files may redeclare its components.
func WithBuiltin(name string, src []byte) Option {
	return func(l *Loader) { l.builtin = append(l.builtin, source{name: name, src: src}) }
}

// NewLoader creates a new HCL configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load orchestrates the entire HCL loading process. It is agnostic to the
// origin of the paths and parses any valid block from any file. Logged values
// are typed against the component definitions of all files, so a log may
// precede the manifest that declares its components.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := config.NewModel()
	var logs []*LogBlock

	for _, b := range l.builtin {
		hclFile, diags := parser.ParseHCL(b.src, b.name)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL source %s: %w", b.name, diags)
		}
		fileLogs, err := l.decodeFile(ctx, b.name, hclFile, model)
		if err != nil {
			return nil, err
		}
		logs = append(logs, fileLogs...)
	}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		fileLogs, err := l.decodeFile(ctx, file, hclFile, model)
		if err != nil {
			return nil, err
		}
		logs = append(logs, fileLogs...)
	}

	return l.finish(ctx, model, logs)
}

// LoadSource parses a single in-memory HCL document.
func (l *Loader) LoadSource(ctx context.Context, name string, src []byte) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL source %s: %w", name, diags)
	}

	model := config.NewModel()
	logs, err := l.decodeFile(ctx, name, hclFile, model)
	if err != nil {
		return nil, err
	}
	return l.finish(ctx, model, logs)
}

// decodeFile translates the component blocks of one file into model and
// returns its log blocks for later typing.
func (l *Loader) decodeFile(ctx context.Context, name string, file *hcl.File, model *config.Model) ([]*LogBlock, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}

	for _, block := range root.Components {
		def, err := translateComponentDefinition(ctx, block)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", name, err)
		}
		if _, exists := model.Components[def.Key]; exists {
			ctxlog.FromContext(ctx).Warn("Component declared more than once; last declaration wins.", "key", def.Key, "file", name)
		}
		model.Components[def.Key] = def
	}
	return root.Logs, nil
}

func (l *Loader) finish(ctx context.Context, model *config.Model, logs []*LogBlock) (*config.Model, error) {
	for _, block := range logs {
		entry, err := translateLogEntry(ctx, block, model.Components)
		if err != nil {
			return nil, err
		}
		model.Logs = append(model.Logs, entry)
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}

	ctxlog.FromContext(ctx).Debug("HCL loading complete.", "components", len(model.Components), "logs", len(model.Logs))
	return model, nil
}
