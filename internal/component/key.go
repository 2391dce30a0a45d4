package component

import (
	"strings"
)

// TypeKey names a component kind. It is the exact-match dispatch key of the
// registry tables, e.g. "core.components.Color".
type TypeKey string

// String implements fmt.Stringer.
func (k TypeKey) String() string {
	return string(k)
}

// ShortName returns the last dot-separated segment of the key
// ("core.components.Color" -> "Color").
func (k TypeKey) ShortName() string {
	s := string(k)
	if i := strings.LastIndexByte(s, '.'); i >= 0 && i < len(s)-1 {
		return s[i+1:]
	}
	return s
}

// IsIndicator reports whether the key names an indicator component. Indicators
// carry no data and only mark which archetype was logged.
func (k TypeKey) IsIndicator() bool {
	return strings.HasSuffix(string(k), "Indicator")
}

// Descriptor annotates a TypeKey with where it came from: the archetype that
// logged it and the archetype field it fills. It is used for labels and
// lookups in surrounding UI only; handler dispatch always uses Key alone.
type Descriptor struct {
	Archetype string
	Field     string
	Key       TypeKey
}

// String renders the descriptor as "Archetype:Key#Field", omitting empty parts.
func (d Descriptor) String() string {
	var b strings.Builder
	if d.Archetype != "" {
		b.WriteString(d.Archetype)
		b.WriteByte(':')
	}
	b.WriteString(string(d.Key))
	if d.Field != "" {
		b.WriteByte('#')
		b.WriteString(d.Field)
	}
	return b.String()
}
