package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/ctxlog"
	"github.com/specialistvlad/componentui/internal/dataui"
	"github.com/specialistvlad/componentui/internal/registry"
	"github.com/specialistvlad/componentui/internal/ui"
)

// Run renders the configured entities and, if a component to edit is
// configured, applies the scripted input to it, commits the result and
// renders the written entity again.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx = registry.WithRegistry(ctx, a.registry)
	a.logger.Debug("App.Run method started.")

	layout, err := ui.ParseLayout(a.config.layoutName())
	if err != nil {
		return err
	}
	q := a.config.Query()

	targets, err := a.targets(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("Rendering entities.", "count", len(targets), "layout", layout, "timeline", q.Timeline, "at", q.At)

	if a.config.Terminal {
		return a.runTerminal(ctx, layout, targets, q)
	}

	if err := a.renderFrame(ctx, ui.NewTextUI(a.outW, nil), layout, targets, q); err != nil {
		return err
	}
	if a.config.EditKey != "" {
		if err := a.edit(ctx, layout, targets[0], q); err != nil {
			return err
		}
	}

	hits, misses := a.previews.Stats()
	a.logger.Debug("App.Run method finished.", "preview_hits", hits, "preview_misses", misses)
	return nil
}

// targets returns the configured entity, or every entity in the store.
func (a *App) targets(ctx context.Context) ([]dataui.InstancePath, error) {
	if a.config.Entity != "" {
		p, err := dataui.ParseInstancePath(a.config.Entity)
		if err != nil {
			return nil, err
		}
		return []dataui.InstancePath{p}, nil
	}

	paths, err := a.store.Paths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}
	if len(paths) == 0 {
		a.logger.Warn("The store holds no entities.")
	}
	targets := make([]dataui.InstancePath, 0, len(paths))
	for _, p := range paths {
		targets = append(targets, dataui.InstancePath{Path: p, Instance: component.AllInstances})
	}
	return targets, nil
}

// renderFrame draws one frame: a titled group per entity.
func (a *App) renderFrame(ctx context.Context, u ui.UI, layout ui.Layout, targets []dataui.InstancePath, q component.Query) error {
	a.previews.BeginFrame()
	for _, p := range targets {
		var err error
		u.Group(p.String(), func(u ui.UI) {
			err = a.data.InstanceUI(ctx, u, layout, p, q)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *App) edit(ctx context.Context, layout ui.Layout, p dataui.InstancePath, q component.Query) error {
	key := component.TypeKey(a.config.EditKey)
	script, err := ui.ParseScript(a.config.Inputs)
	if err != nil {
		return err
	}
	writePath := p.Path
	if a.config.WritePath != "" {
		writePath = component.ParseEntityPath(a.config.WritePath)
	}
	if !a.registry.IsEditable(key) {
		a.logger.Warn("Component has no editor; it is displayed read-only.", "key", key, "capabilities", a.registry.CapabilitiesOf(key))
	}

	u := ui.NewTextUI(a.outW, script)
	var editErr error
	u.Group("edit "+p.String(), func(u ui.UI) {
		editErr = a.data.ComponentUI(ctx, u, layout, p, key, q, true, writePath)
	})
	if editErr != nil {
		return fmt.Errorf("failed to edit %s: %w", key, editErr)
	}

	if len(u.Changed()) == 0 {
		a.logger.Info("Nothing was edited.", "key", key)
		return nil
	}
	a.logger.Info("Edited component committed.", "key", key, "path", writePath, "widgets", u.Changed())

	written := []dataui.InstancePath{{Path: writePath, Instance: p.Instance}}
	return a.renderFrame(ctx, ui.NewTextUI(a.outW, nil), layout, written, q)
}

// runTerminal draws one frame onto the terminal and waits for a key.
func (a *App) runTerminal(ctx context.Context, layout ui.Layout, targets []dataui.InstancePath, q component.Query) error {
	surface, err := a.openSurface()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer surface.Close()

	surface.Clear()
	if err := a.renderFrame(ctx, surface.UI(), layout, targets, q); err != nil {
		return err
	}
	surface.Show()
	a.logger.Debug("Frame drawn; waiting for a key.", "rows", surface.Rows())
	surface.WaitForKey(ctx)
	return nil
}
