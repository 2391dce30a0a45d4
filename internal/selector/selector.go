// Package selector reduces a component batch plus an instance request to the
// one element a typed UI can show, or to a decision to summarize the batch.
package selector

import (
	"github.com/specialistvlad/componentui/internal/component"
)

// Selection is the outcome of Select.
type Selection struct {
	// Scalar is true when exactly one element was chosen.
	Scalar bool

	// Index is the chosen (clamped) element index. Only meaningful if Scalar.
	Index int

	// Value holds the length-1 slice when Scalar, otherwise the whole batch
	// to be handed to a summary renderer.
	Value component.RawValue
}

// Select applies the instance policy:
//
//   - an empty batch has no scalar;
//   - "all" on a single-element batch is unambiguous and selects index 0;
//   - "all" on a larger batch has no scalar, the batch is summarized;
//   - a concrete index is clamped into [0, L-1], so out-of-range requests
//     show the last element instead of failing.
//
// Only the chosen element is sliced; no other element is read.
func Select(v component.RawValue, instance component.Instance) Selection {
	n := v.Len()
	if n == 0 || (instance.IsAll() && n > 1) {
		return Selection{Value: v}
	}

	index := 0
	if !instance.IsAll() {
		index = Clamp(instance, n)
	}
	return Selection{Scalar: true, Index: index, Value: v.Slice(index)}
}

// Clamp maps instance onto [0, n-1]. n must be positive.
func Clamp(instance component.Instance, n int) int {
	last := uint64(n - 1)
	if uint64(instance) > last {
		return int(last)
	}
	return int(instance)
}
