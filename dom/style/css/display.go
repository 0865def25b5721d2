package css

import (
	"bytes"
	"fmt"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	FlowRootMode    DisplayMode = 0x0010 // CSS flow-root display property
	ListItemMode    DisplayMode = 0x0020 // CSS list-item display
	FlexMode        DisplayMode = 0x0040 // CSS inner display = flex
	GridMode        DisplayMode = 0x0080 // CSS inner display = grid
	TableMode       DisplayMode = 0x0100 // CSS table display property (inner or outer)
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, ListItemMode, FlowRootMode, FlexMode,
	GridMode, TableMode, InnerBlockMode, InnerInlineMode,
}

// Outer returns outer mode
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Inner returns inner mode
func (disp DisplayMode) Inner() DisplayMode {
	return disp & 0xfff0
}

// IsBlockLevel return true if it has outer display level of BlockMode.
//
// CSS 2.1, section 9.2.1:
// Block-level elements are those elements of the source document that are formatted visually
// as blocks (e.g., paragraphs). The following values of the 'display' property make an element
// block-level: 'block', 'list-item', and 'table'.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp&0x000f == BlockMode
}

// IsInlineLevel return true if it has outer display level of InlineMode.
func (disp DisplayMode) IsInlineLevel() bool {
	return disp&0x000f == InlineMode
}

// IsNone is true for 'display: none'.
func (disp DisplayMode) IsNone() bool {
	return disp&0x000f == DisplayNone
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one atomic
// mode flag with disp (excluding NoMode).
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	for _, m := range allDisplayModes {
		if disp.Contains(m) && d.Contains(m) {
			return true
		}
	}
	return false
}

var modeNames = map[DisplayMode]string{
	DisplayNone:     "none",
	BlockMode:       "block",
	InlineMode:      "inline",
	FlowRootMode:    "flow-root",
	ListItemMode:    "list-item",
	FlexMode:        "flex",
	GridMode:        "grid",
	TableMode:       "table",
	InnerBlockMode:  "inner-block",
	InnerInlineMode: "inner-inline",
}

// keywords maps 'display' keywords to mode flags. String is the inverse.
var keywords = []struct {
	name string
	mode DisplayMode
}{
	{"none", DisplayNone},
	{"block", BlockMode | InnerBlockMode},
	{"inline", InlineMode | InnerInlineMode},
	{"inline-block", InlineMode | InnerBlockMode},
	{"list-item", ListItemMode | BlockMode},
	{"flow-root", BlockMode | FlowRootMode},
	{"table", BlockMode | TableMode},
	{"inline-table", InlineMode | TableMode},
}

// String returns the CSS keyword for a display mode, if there is one, and
// the list of atomic modes otherwise.
func (disp DisplayMode) String() string {
	if disp == NoMode {
		return "no-mode"
	}
	for _, k := range keywords {
		if k.mode == disp {
			return k.name
		}
	}
	if name, ok := modeNames[disp]; ok {
		return name
	}
	return disp.FullString()
}

func (DisplayMode) cssValue() {}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var b bytes.Buffer
	first := true
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(modeNames[m])
		}
	}
	return b.String()
}

// Symbol returns a Unicode symbol for a mode, used in tree dumps.
func (disp DisplayMode) Symbol() string {
	switch {
	case disp == NoMode:
		return "\u2013"
	case disp.IsNone():
		return "\u2205"
	case disp.Contains(ListItemMode):
		return "\u25a3"
	case disp.Contains(TableMode):
		return "\u25a5"
	case disp.Contains(BlockMode) || disp.Contains(InnerBlockMode):
		return "\u25a9"
	case disp.Contains(InlineMode) || disp.Contains(InnerInlineMode):
		return "\u25ba"
	}
	return "?"
}

// ParseDisplay returns mode flags from a display property string (outer and inner).
func ParseDisplay(display string) (DisplayMode, error) {
	if display == "" {
		return NoMode, nil
	}
	for _, k := range keywords {
		if k.name == display {
			return k.mode, nil
		}
	}
	return NoMode, fmt.Errorf("%w: unknown display mode %q", ErrNotAValue, display)
}
