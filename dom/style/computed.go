package style

import (
	"image/color"
	"sort"
	"strings"

	"github.com/npillmayer/cssbox/dom/style/css"
)

// ComputedStyle is the set of computed property values for a document node.
// It is immutable: there are no setters, and every getter returns a value.
// Values are never shared between nodes by reference.
type ComputedStyle struct {
	values map[string]css.Value
}

// NewComputedStyle creates a computed style from a map of values. The map
// is copied.
func NewComputedStyle(values map[string]css.Value) *ComputedStyle {
	m := make(map[string]css.Value, len(values))
	for k, v := range values {
		m[k] = v
	}
	return &ComputedStyle{values: m}
}

// Get returns the computed value of a property.
func (cs *ComputedStyle) Get(key string) (css.Value, bool) {
	if cs == nil {
		return nil, false
	}
	v, ok := cs.values[key]
	return v, ok
}

// Len returns the number of properties set.
func (cs *ComputedStyle) Len() int {
	if cs == nil {
		return 0
	}
	return len(cs.values)
}

// Dimen returns a dimension property. If the property is not set or is
// not a dimension, the zero DimenT is returned (check with IsNone).
func (cs *ComputedStyle) Dimen(key string) css.DimenT {
	v, _ := cs.Get(key)
	if d, ok := v.(css.DimenT); ok {
		return d
	}
	return css.DimenT{}
}

// Color returns a color property. Missing or non-color values result in
// transparent black.
func (cs *ComputedStyle) Color(key string) color.RGBA {
	v, _ := cs.Get(key)
	if c, ok := v.(css.Color); ok {
		return c.RGBA
	}
	return color.RGBA{}
}

// Keyword returns the string form of a property value, or "" if the
// property is not set.
func (cs *ComputedStyle) Keyword(key string) string {
	v, ok := cs.Get(key)
	if !ok {
		return ""
	}
	return v.String()
}

// Number returns a numeric property value. Absolute dimensions are
// returned as their pixel value.
func (cs *ComputedStyle) Number(key string) (float64, bool) {
	v, _ := cs.Get(key)
	switch n := v.(type) {
	case css.Number:
		return float64(n), true
	case css.DimenT:
		if n.IsAbsolute() {
			return n.Px(), true
		}
	}
	return 0, false
}

// Display returns the display mode. Nodes without a display property are
// treated as 'inline', the initial value.
func (cs *ComputedStyle) Display() css.DisplayMode {
	v, _ := cs.Get("display")
	if d, ok := v.(css.DisplayMode); ok {
		return d
	}
	return initialDisplay
}

// FontSize returns the computed font size in px.
func (cs *ComputedStyle) FontSize() float64 {
	d := cs.Dimen("font-size")
	if d.IsAbsolute() {
		return d.Px()
	}
	return initialFontSize.Px()
}

// Keys returns the names of all properties set, sorted.
func (cs *ComputedStyle) Keys() []string {
	if cs == nil {
		return nil
	}
	keys := make([]string, 0, len(cs.values))
	for k := range cs.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal checks if two computed styles hold the same values.
func (cs *ComputedStyle) Equal(other *ComputedStyle) bool {
	if cs.Len() != other.Len() {
		return false
	}
	if cs == nil || other == nil {
		return cs.Len() == 0
	}
	for k, v := range cs.values {
		w, ok := other.values[k]
		if !ok || v != w {
			return false
		}
	}
	return true
}

// String returns a deterministic dump of all values, one per line, sorted
// by key.
func (cs *ComputedStyle) String() string {
	if cs == nil {
		return "<no style>"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, k := range cs.Keys() {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(cs.values[k].String())
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// Group returns the values of all properties of a property group, sorted
// by key.
func (cs *ComputedStyle) Group(groupname string) []KeyValue {
	var kvs []KeyValue
	for _, k := range cs.Keys() {
		if GroupNameFromPropertyKey(k) == groupname {
			kvs = append(kvs, KeyValue{k, cs.values[k]})
		}
	}
	return kvs
}
