package css

import (
	"fmt"
	"strconv"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// Conversion factors from absolute units to CSS pixels (1in = 96px).
var absoluteUnits = map[string]float64{
	"px": 1,
	"in": 96,
	"cm": 96 / 2.54,
	"mm": 96 / 25.4,
	"q":  96 / 101.6,
	"pt": 96.0 / 72.0,
	"pc": 16,
}

// DimenT is an option type for CSS dimensions.
//
//     type DimenT
//         = Auto
//         | JustDimen px
//         | Percentage p
//         | FontRel em/ex
//
// Absolute lengths are always held in CSS pixels. Font relative lengths are
// converted to pixels by Absolute, percentages by Resolve.
type DimenT struct {
	d       float64
	percent float64
	flags   uint32
}

// Auto creates the dimension 'auto'.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// JustDimen creates a CSS dimension with a fixed value of x pixels.
func JustDimen(x float64) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n float64) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// EM creates a font relative dimension of x em.
func EM(x float64) DimenT {
	return DimenT{d: x, flags: dimenEM}
}

// EX creates a font relative dimension of x ex.
func EX(x float64) DimenT {
	return DimenT{d: x, flags: dimenEX}
}

// IsNone is true for the zero value, which denotes an unset dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsAuto is true for 'auto'.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// IsAbsolute is true for fixed pixel values.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsPercent is true for percentages.
func (d DimenT) IsPercent() bool {
	return d.flags&relativeMask == dimenPercent
}

// IsFontRelative is true for em and ex values.
func (d DimenT) IsFontRelative() bool {
	f := d.flags & relativeMask
	return f == dimenEM || f == dimenEX
}

// Px returns the pixel value of an absolute dimension, 0 otherwise.
func (d DimenT) Px() float64 {
	if d.IsAbsolute() {
		return d.d
	}
	return 0
}

// Percent returns the percentage value of a relative dimension, 0 otherwise.
func (d DimenT) Percent() float64 {
	if d.IsPercent() {
		return d.percent
	}
	return 0
}

// Absolute converts font relative units to pixels, given the font size
// in pixels. One ex is taken to be half an em. Other dimensions are
// returned unchanged.
func (d DimenT) Absolute(fontSize float64) DimenT {
	switch d.flags & relativeMask {
	case dimenEM:
		return JustDimen(d.d * fontSize)
	case dimenEX:
		return JustDimen(d.d * fontSize / 2)
	}
	return d
}

// Resolve returns the pixel value of d, resolving percentages against ref.
// 'auto' and unset dimensions resolve to 0.
func (d DimenT) Resolve(ref float64) float64 {
	switch {
	case d.IsAbsolute():
		return d.d
	case d.IsPercent():
		return ref * d.percent / 100
	}
	return 0
}

// Scale multiplies absolute and percentage values by f.
func (d DimenT) Scale(f float64) DimenT {
	switch {
	case d.IsAbsolute():
		return JustDimen(d.d * f)
	case d.IsPercent():
		return Percentage(d.percent * f)
	}
	return d
}

func (d DimenT) String() string {
	switch {
	case d.IsAuto():
		return "auto"
	case d.IsAbsolute():
		return strconv.FormatFloat(d.d, 'f', -1, 64) + "px"
	case d.IsPercent():
		return strconv.FormatFloat(d.percent, 'f', -1, 64) + "%"
	case d.flags&relativeMask == dimenEM:
		return strconv.FormatFloat(d.d, 'f', -1, 64) + "em"
	case d.flags&relativeMask == dimenEX:
		return strconv.FormatFloat(d.d, 'f', -1, 64) + "ex"
	}
	return "none"
}

func (DimenT) cssValue() {}

// ---------------------------------------------------------------------------

// Match starts a pattern match on a dimension:
//
//     var px float64
//     switch d.Match() {
//     case d.Match().Just(&px): ...
//     }
//
// Each matching method returns nil if the dimension is not of the requested
// kind, otherwise the matcher.
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is a helper type for matching dimensions.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	if m == nil {
		return nil
	}
	switch {
	case (m.dimen.flags&kindMask) != 0 && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags & relativeMask) != (d.flags & relativeMask) {
			return nil
		}
		return m
	}
	return nil
}

// Just matches absolute dimensions and extracts the pixel value.
func (m *Matcher) Just(px *float64) *Matcher {
	if m != nil && m.dimen.IsAbsolute() {
		if px != nil {
			*px = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches percentages and extracts the percent value.
func (m *Matcher) Percentage(p *float64) *Matcher {
	if m != nil && m.dimen.IsPercent() {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// Auto matches 'auto'.
func (m *Matcher) Auto() *Matcher {
	if m != nil && m.dimen.IsAuto() {
		return m
	}
	return nil
}

// --- Parsing ---------------------------------------------------------------

// LengthOptions controls which forms ParseLength accepts.
type LengthOptions struct {
	Negative bool // negative values are valid
	Percent  bool // percentages are valid
	Auto     bool // 'auto' is valid
}

// ParseLength parses a single token into a dimension. Unitless numbers are
// accepted only for zero.
func ParseLength(tok Token, opts LengthOptions) (DimenT, error) {
	switch tok.Kind {
	case TokIdent:
		if opts.Auto && tok.Text == "auto" {
			return Auto(), nil
		}
	case TokNumber:
		if tok.Num == 0 {
			return JustDimen(0), nil
		}
	case TokPercentage:
		if !opts.Percent || (!opts.Negative && tok.Num < 0) {
			break
		}
		return Percentage(tok.Num), nil
	case TokDimension:
		if !opts.Negative && tok.Num < 0 {
			break
		}
		return lengthFromUnit(tok.Num, tok.Unit)
	}
	return DimenT{}, fmt.Errorf("%w: length %q", ErrNotAValue, tok.String())
}

func lengthFromUnit(x float64, unit string) (DimenT, error) {
	if f, ok := absoluteUnits[unit]; ok {
		return JustDimen(x * f), nil
	}
	switch unit {
	case "em":
		return EM(x), nil
	case "ex":
		return EX(x), nil
	}
	return DimenT{}, fmt.Errorf("%w: unknown unit %q", ErrNotAValue, unit)
}
