package component

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Instance selects an element of a component batch. AllInstances asks for
// the batch as a whole.
type Instance uint64

// AllInstances is the "all" instance selector.
const AllInstances Instance = math.MaxUint64

// IsAll reports whether the selector asks for every instance.
func (i Instance) IsAll() bool {
	return i == AllInstances
}

// String renders the instance as "all" or its decimal index.
func (i Instance) String() string {
	if i.IsAll() {
		return "all"
	}
	return strconv.FormatUint(uint64(i), 10)
}

// ParseInstance parses "all" (or "*") and non-negative decimal indices.
func ParseInstance(s string) (Instance, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "all", "*", "":
		return AllInstances, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("component: invalid instance %q: %w", s, err)
	}
	if Instance(n) == AllInstances {
		return 0, fmt.Errorf("component: instance %q is reserved", s)
	}
	return Instance(n), nil
}
