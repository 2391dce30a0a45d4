// This file contains the logic for translating HCL schema structs into the
// format-agnostic model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/config"
	"github.com/specialistvlad/componentui/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// isExprDefined checks if an HCL expression was actually present in the source
// code. The HCL decoder populates omitted optional expression fields with
// zero-width placeholder expressions, so a nil check is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}

	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}

// translateComponentDefinition converts a component block into the agnostic model.
func translateComponentDefinition(ctx context.Context, b *ComponentBlock) (*config.ComponentDefinition, error) {
	logger := ctxlog.FromContext(ctx).With("component", b.Key)
	ctx = ctxlog.WithLogger(ctx, logger)

	def := &config.ComponentDefinition{
		Key:         component.TypeKey(b.Key),
		Description: b.Description,
		Type:        cty.DynamicPseudoType,
	}

	if isExprDefined(ctx, b.Type, "type") {
		ty, err := typeExprToCtyType(ctx, b.Type)
		if err != nil {
			return nil, fmt.Errorf("component '%s': %w", b.Key, err)
		}
		def.Type = ty
	}

	if isExprDefined(ctx, b.Fallback, "fallback") {
		val, diags := b.Fallback.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid fallback for component '%s': %w", b.Key, diags)
		}
		if !val.IsNull() {
			if !def.Type.Equals(cty.DynamicPseudoType) {
				converted, err := convert.Convert(val, def.Type)
				if err != nil {
					return nil, fmt.Errorf("fallback for component '%s' is not a valid %s: %w", b.Key, def.Type.FriendlyName(), err)
				}
				val = converted
			}
			def.Fallback = &val
		}
	}

	logger.Debug("Translated component definition.", "type", def.Type.FriendlyName(), "has_fallback", def.Fallback != nil)
	return def, nil
}

// translateLogEntry evaluates the values of a log block. Values of declared
// components are converted to a list of the declared type; undeclared
// components keep whatever collection type the literal has.
func translateLogEntry(ctx context.Context, b *LogBlock, defs map[component.TypeKey]*config.ComponentDefinition) (*config.LogEntry, error) {
	entry := &config.LogEntry{
		Path:       component.ParseEntityPath(b.Path),
		Timeline:   b.Timeline,
		At:         b.At,
		Components: make(map[component.TypeKey]component.RawValue, len(b.Components)),
	}

	for _, c := range b.Components {
		key := component.TypeKey(c.Key)
		val, diags := c.Values.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid values for '%s' at '%s': %w", key, entry.Path, diags)
		}

		if def, ok := defs[key]; ok && !def.Type.Equals(cty.DynamicPseudoType) {
			converted, err := convert.Convert(val, cty.List(def.Type))
			if err != nil {
				return nil, fmt.Errorf("values for '%s' at '%s' are not a list of %s: %w", key, entry.Path, def.Type.FriendlyName(), err)
			}
			val = converted
		}

		raw, err := component.NewRawValue(val)
		if err != nil {
			return nil, fmt.Errorf("values for '%s' at '%s': %w", key, entry.Path, err)
		}
		entry.Components[key] = raw
	}
	return entry, nil
}
