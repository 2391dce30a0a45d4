package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/ui"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// MaybeMut is a value handed to an edit-or-view callback. In display mode it
// is read-only and AsMut returns nil; callbacks must then render without
// editing.
type MaybeMut[C any] struct {
	value   *C
	mutable bool
}

// Get returns the current value.
func (m *MaybeMut[C]) Get() C {
	return *m.value
}

// AsMut returns a pointer for editing, or nil when the view is read-only.
func (m *MaybeMut[C]) AsMut() *C {
	if !m.mutable {
		return nil
	}
	return m.value
}

// IsMutable reports whether the callback is allowed to edit.
func (m *MaybeMut[C]) IsMutable() bool {
	return m.mutable
}

// EditOrViewFunc is a strongly typed callback that both displays and edits a
// value of type C. It returns true when it changed the value.
type EditOrViewFunc[C any] func(ctx context.Context, u ui.UI, value *MaybeMut[C]) bool

// Codec converts a single cty element to and from C.
type Codec[C any] interface {
	// Type is the cty type of an encoded element.
	Type() cty.Type
	Decode(v cty.Value) (C, error)
	Encode(c C) (cty.Value, error)
}

// CtyCodec is the default Codec built on gocty. It converts any value
// convertible to its type before decoding.
type CtyCodec[C any] struct {
	ty cty.Type
}

// NewCtyCodec derives the cty type from C using gocty.ImpliedType.
func NewCtyCodec[C any]() (CtyCodec[C], error) {
	ty, err := gocty.ImpliedType((*C)(nil))
	if err != nil {
		return CtyCodec[C]{}, fmt.Errorf("could not imply cty type from %T: %w", (*C)(nil), err)
	}
	return CtyCodec[C]{ty: ty}, nil
}

// Type implements Codec.
func (c CtyCodec[C]) Type() cty.Type {
	return c.ty
}

// Decode implements Codec.
func (c CtyCodec[C]) Decode(v cty.Value) (C, error) {
	var out C
	if v.IsNull() {
		return out, fmt.Errorf("value is null")
	}
	if !v.IsWhollyKnown() {
		return out, fmt.Errorf("value is not known")
	}
	converted, err := convert.Convert(v, c.ty)
	if err != nil {
		return out, err
	}
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Encode implements Codec.
func (c CtyCodec[C]) Encode(value C) (cty.Value, error) {
	return gocty.ToCtyValue(value, c.ty)
}

// RegisterSingleline registers a single-line edit-or-view callback for key,
// decoding values with the default CtyCodec. It panics if C has no cty
// equivalent, which is a programming error in the registering module.
func RegisterSingleline[C any](r *Registry, key component.TypeKey, fn EditOrViewFunc[C]) {
	RegisterSinglelineWithCodec(r, key, mustCodec[C](key), fn)
}

// RegisterMultiline registers a multi-line edit-or-view callback for key. It
// is only used in the detail layout.
func RegisterMultiline[C any](r *Registry, key component.TypeKey, fn EditOrViewFunc[C]) {
	RegisterMultilineWithCodec(r, key, mustCodec[C](key), fn)
}

// RegisterSinglelineWithCodec is RegisterSingleline with an explicit codec.
func RegisterSinglelineWithCodec[C any](r *Registry, key component.TypeKey, codec Codec[C], fn EditOrViewFunc[C]) {
	r.registerEditOrView(r.singleline, "singleline", key, erase(r, key, codec, fn))
}

// RegisterMultilineWithCodec is RegisterMultiline with an explicit codec.
func RegisterMultilineWithCodec[C any](r *Registry, key component.TypeKey, codec Codec[C], fn EditOrViewFunc[C]) {
	r.registerEditOrView(r.multiline, "multiline", key, erase(r, key, codec, fn))
}

func mustCodec[C any](key component.TypeKey) CtyCodec[C] {
	codec, err := NewCtyCodec[C]()
	if err != nil {
		panic(fmt.Sprintf("component UI for '%s': %v", key, err))
	}
	return codec
}

// erase wraps a typed callback into the uniform untyped form.
func erase[C any](r *Registry, key component.TypeKey, codec Codec[C], fn EditOrViewFunc[C]) *editOrView {
	run := func(ctx context.Context, u ui.UI, raw component.RawValue, mode Mode) (EditResult, error) {
		if n := raw.Len(); n != 1 {
			r.once.Error(ctx, "cardinality:"+string(key),
				"Typed component UI called with wrong number of instances.", "key", key, "instances", n)
			return Unchanged(), fmt.Errorf("%w: '%s' has %d", ErrCardinality, key, n)
		}

		value, err := codec.Decode(raw.Element(0))
		if err != nil {
			r.once.Warn(ctx, "decode:"+string(key),
				"Failed to deserialize component; falling back.", "key", key, "error", err)
			return Unchanged(), fmt.Errorf("%w '%s': %v", ErrDecode, key, err)
		}

		view := &MaybeMut[C]{value: &value, mutable: mode == ModeEdit}
		changed := fn(ctx, u, view)
		if mode != ModeEdit || !changed {
			return Unchanged(), nil
		}

		encoded, err := codec.Encode(value)
		if err != nil {
			r.once.Error(ctx, "encode:"+string(key),
				"Failed to serialize edited component; edit discarded.", "key", key, "error", err)
			return Unchanged(), nil
		}
		return Changed(component.Single(encoded)), nil
	}
	return &editOrView{run: run, elemType: codec.Type()}
}
