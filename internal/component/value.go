package component

import (
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// ErrNotABatch is returned when a cty value cannot be used as a component batch.
var ErrNotABatch = errors.New("component: value is not a list, set or tuple")

// CacheKey is a content hash identifying a RawValue. Zero means "no key".
type CacheKey uint64

// RawValue is an immutable batch of L >= 0 encoded instances of one component
// kind. The zero RawValue represents a missing component and reports IsMissing.
type RawValue struct {
	val     cty.Value
	present bool
}

// NewRawValue wraps a cty list, set or tuple. Sets are converted to lists so
// that elements are addressable by index; a null collection becomes an empty
// batch of its element type.
func NewRawValue(v cty.Value) (RawValue, error) {
	if v.Type() == cty.NilType {
		return RawValue{}, nil
	}
	ty := v.Type()
	switch {
	case ty.IsListType(), ty.IsTupleType():
	case ty.IsSetType():
		if v.IsNull() || !v.IsKnown() {
			break
		}
		if v.LengthInt() == 0 {
			return RawValue{val: cty.ListValEmpty(ty.ElementType()), present: true}, nil
		}
		return RawValue{val: cty.ListVal(v.AsValueSlice()), present: true}, nil
	default:
		return RawValue{}, fmt.Errorf("%w: got %s", ErrNotABatch, ty.FriendlyName())
	}

	if !v.IsKnown() {
		return RawValue{}, fmt.Errorf("component: batch of type %s is unknown", ty.FriendlyName())
	}
	if v.IsNull() {
		if ty.IsTupleType() {
			return RawValue{val: cty.EmptyTupleVal, present: true}, nil
		}
		return RawValue{val: cty.ListValEmpty(ty.ElementType()), present: true}, nil
	}
	return RawValue{val: v, present: true}, nil
}

// MustRawValue is NewRawValue that panics on error. Intended for tests and
// static tables.
func MustRawValue(v cty.Value) RawValue {
	rv, err := NewRawValue(v)
	if err != nil {
		panic(err)
	}
	return rv
}

// Batch builds a list batch from elements of elemType. With no elements it
// returns an empty batch of that type.
func Batch(elemType cty.Type, elems ...cty.Value) RawValue {
	if len(elems) == 0 {
		return RawValue{val: cty.ListValEmpty(elemType), present: true}
	}
	return RawValue{val: cty.ListVal(elems), present: true}
}

// Single builds a length-1 batch holding elem.
func Single(elem cty.Value) RawValue {
	return RawValue{val: cty.ListVal([]cty.Value{elem}), present: true}
}

// IsMissing reports whether this is the zero RawValue.
func (r RawValue) IsMissing() bool {
	return !r.present
}

// Len returns the number of instances in the batch. Missing values have length 0.
func (r RawValue) Len() int {
	if r.IsMissing() {
		return 0
	}
	return r.val.LengthInt()
}

// Value returns the underlying cty collection.
func (r RawValue) Value() cty.Value {
	return r.val
}

// Element returns the i-th instance without touching any other element.
func (r RawValue) Element(i int) cty.Value {
	return r.val.Index(cty.NumberIntVal(int64(i)))
}

// Slice returns a length-1 batch that shares the i-th element. Callers must
// pass an index already in range; see selector.Select for the clamp policy.
func (r RawValue) Slice(i int) RawValue {
	elem := r.Element(i)
	if r.val.Type().IsTupleType() {
		return RawValue{val: cty.TupleVal([]cty.Value{elem}), present: true}
	}
	return RawValue{val: cty.ListVal([]cty.Value{elem}), present: true}
}

// ElementType returns the element type of list batches, or the type of the
// first element of a tuple. Empty tuples and missing values report
// cty.DynamicPseudoType.
func (r RawValue) ElementType() cty.Type {
	if r.IsMissing() {
		return cty.DynamicPseudoType
	}
	ty := r.val.Type()
	if ty.IsTupleType() {
		elems := ty.TupleElementTypes()
		if len(elems) == 0 {
			return cty.DynamicPseudoType
		}
		return elems[0]
	}
	return ty.ElementType()
}

// Hash returns a content hash of the batch, suitable as a memoization key for
// derived display data. Missing values hash to zero.
func (r RawValue) Hash() CacheKey {
	if r.IsMissing() {
		return 0
	}
	h := fnv.New64a()
	ty := r.val.Type()
	if tyJSON, err := ctyjson.MarshalType(ty); err == nil {
		h.Write(tyJSON)
	}
	if r.val.IsWhollyKnown() {
		if buf, err := ctyjson.Marshal(r.val, ty); err == nil {
			h.Write(buf)
			return CacheKey(h.Sum64())
		}
	}
	h.Write([]byte(r.val.GoString()))
	return CacheKey(h.Sum64())
}

// Equal reports whether both batches hold the same type and values.
func (r RawValue) Equal(o RawValue) bool {
	if r.IsMissing() || o.IsMissing() {
		return r.IsMissing() == o.IsMissing()
	}
	return r.val.RawEquals(o.val)
}

// String renders the batch for debugging.
func (r RawValue) String() string {
	if r.IsMissing() {
		return "RawValue(missing)"
	}
	return fmt.Sprintf("RawValue(%d × %s)", r.Len(), r.ElementType().FriendlyName())
}
