package style

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cssbox/dom/style/css"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. Raw values come straight from
// stylesheets; the registry turns them into typed values.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return strings.EqualFold(strings.TrimSpace(string(p)), "initial")
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return strings.EqualFold(strings.TrimSpace(string(p)), "inherit")
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

// KeyValue is a container for a typed style property.
type KeyValue struct {
	Key   string
	Value css.Value
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String()
}

// --- CSS Property Groups ----------------------------------------------

// CSS knows a whole lot of properties. We split them up into organisatorial
// groups, mainly for debugging output.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting property groups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGFont      = "Font"
	PGText      = "Text"
	PGX         = "X"
)

// PropertyGroups lists all group names in display order.
var PropertyGroups = []string{
	PGDisplay, PGDimension, PGMargins, PGPadding, PGBorder, PGColor, PGFont, PGText, PGX,
}

var groupNameFromPropertyKey = map[string]string{
	"margin-top":          PGMargins,
	"margin-left":         PGMargins,
	"margin-right":        PGMargins,
	"margin-bottom":       PGMargins,
	"padding-top":         PGPadding,
	"padding-left":        PGPadding,
	"padding-right":       PGPadding,
	"padding-bottom":      PGPadding,
	"border-top-color":    PGBorder,
	"border-left-color":   PGBorder,
	"border-right-color":  PGBorder,
	"border-bottom-color": PGBorder,
	"border-top-width":    PGBorder,
	"border-left-width":   PGBorder,
	"border-right-width":  PGBorder,
	"border-bottom-width": PGBorder,
	"border-top-style":    PGBorder,
	"border-left-style":   PGBorder,
	"border-right-style":  PGBorder,
	"border-bottom-style": PGBorder,
	"width":               PGDimension,
	"height":              PGDimension,
	"display":             PGDisplay,
	"visibility":          PGDisplay,
	"color":               PGColor,
	"background-color":    PGColor,
	"font-size":           PGFont,
	"font-family":         PGFont,
	"font-weight":         PGFont,
	"font-style":          PGFont,
	"line-height":         PGText,
	"white-space":         PGText,
}

// --- Compound properties ----------------------------------------------

// feazeCompound4 distributes one to four values to four directions, as
// CSS does for shortcuts like 'padding' or 'border-color':
//
//     padding: 1px             => all four sides
//     padding: 1px 2px         => top/bottom, right/left
//     padding: 1px 2px 3px     => top, right/left, bottom
//     padding: 1px 2px 3px 4px => top, right, bottom, left
//
// The resulting keys are constructed from pre and suf, e.g. "border",
// "width" and "top" => "border-top-width".
func feazeCompound4[T any](pre string, suf string, dirs [4]string, fields []T) ([]string, []T, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, nil, fmt.Errorf("expecting 1-4 values for %s", p(pre, suf, "*"))
	}
	keys := make([]string, 4)
	for i, d := range dirs {
		keys[i] = p(pre, suf, d)
	}
	vals := make([]T, 4)
	switch l {
	case 1:
		vals[0], vals[1], vals[2], vals[3] = fields[0], fields[0], fields[0], fields[0]
	case 2:
		vals[0], vals[1], vals[2], vals[3] = fields[0], fields[1], fields[0], fields[1]
	case 3:
		vals[0], vals[1], vals[2], vals[3] = fields[0], fields[1], fields[2], fields[1]
	case 4:
		copy(vals, fields)
	}
	return keys, vals, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
