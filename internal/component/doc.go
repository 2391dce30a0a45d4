// Package component defines the value-level vocabulary shared by the
// component UI registry and its collaborators: the TypeKey naming a component
// kind, the opaque RawValue batch holding its encoded instances, the Instance
// selector, entity paths and latest-at queries.
//
// A RawValue wraps a cty list (or tuple) value. The registry never interprets
// its elements; only typed adapters decode them, and only one element at a
// time.
package component
