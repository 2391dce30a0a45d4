package component

import (
	"strings"
)

// EntityPath addresses an entity in the data store, e.g. "/world/points".
// Paths are stored normalized: a single leading slash, no trailing slash and
// no empty segments. The root entity is "/".
type EntityPath string

// ParseEntityPath normalizes s into an EntityPath.
func ParseEntityPath(s string) EntityPath {
	parts := strings.Split(s, "/")
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return EntityPath("/" + strings.Join(kept, "/"))
}

// String implements fmt.Stringer.
func (p EntityPath) String() string {
	return string(p)
}

// Parts returns the path segments.
func (p EntityPath) Parts() []string {
	s := strings.Trim(string(p), "/")
	if s == "" {
		return nil
	}
	return strings.Split(s, "/")
}

// Join appends child segments to the path.
func (p EntityPath) Join(child ...string) EntityPath {
	return ParseEntityPath(string(p) + "/" + strings.Join(child, "/"))
}

// Query is a latest-at query: the newest value logged at or before At on
// Timeline. Static values (logged without a timeline) always match and take
// precedence over temporal ones.
type Query struct {
	Timeline string
	At       int64
}

// IsStatic reports whether the query only looks at static data.
func (q Query) IsStatic() bool {
	return q.Timeline == ""
}
