package css

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"golang.org/x/image/colornames"
)

// Color is a CSS color value. The zero value is transparent black.
// 'currentcolor' is a placeholder which the cascade replaces by the
// computed value of property 'color'.
type Color struct {
	RGBA    color.RGBA
	current bool
}

// CurrentColor is the keyword 'currentcolor'.
var CurrentColor = Color{current: true}

// Transparent is fully transparent black.
var Transparent = Color{}

// Black is opaque black.
var Black = RGB(0, 0, 0)

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{RGBA: color.RGBA{R: r, G: g, B: b, A: 0xff}}
}

// IsCurrentColor is true for 'currentcolor'.
func (c Color) IsCurrentColor() bool {
	return c.current
}

// IsTransparent is true if alpha is zero (and c is not 'currentcolor').
func (c Color) IsTransparent() bool {
	return !c.current && c.RGBA.A == 0
}

func (c Color) String() string {
	if c.current {
		return "currentcolor"
	}
	if c.RGBA.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.RGBA.R, c.RGBA.G, c.RGBA.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.RGBA.R, c.RGBA.G, c.RGBA.B, c.RGBA.A)
}

func (Color) cssValue() {}

// ParseColor parses a color from tokens. It accepts named colors,
// hex notation with 3, 4, 6 or 8 digits, rgb() and rgba() functions,
// 'transparent' and 'currentcolor'. All tokens must be consumed.
func ParseColor(tokens []Token) (Color, error) {
	if len(tokens) == 0 {
		return Color{}, fmt.Errorf("%w: empty color", ErrNotAValue)
	}
	c, n, err := parseColorPrefix(tokens)
	if err != nil {
		return c, err
	}
	if n != len(tokens) {
		return Color{}, fmt.Errorf("%w: trailing tokens after color", ErrNotAValue)
	}
	return c, nil
}

// parseColorPrefix parses a color at the start of tokens and returns the
// number of tokens consumed.
func parseColorPrefix(tokens []Token) (Color, int, error) {
	tok := tokens[0]
	switch tok.Kind {
	case TokIdent:
		switch tok.Text {
		case "transparent":
			return Transparent, 1, nil
		case "currentcolor":
			return CurrentColor, 1, nil
		}
		if rgba, ok := colornames.Map[tok.Text]; ok {
			return Color{RGBA: rgba}, 1, nil
		}
	case TokHash:
		if c, err := parseHex(tok.Text); err == nil {
			return c, 1, nil
		}
	case TokFunction:
		if tok.Text == "rgb" || tok.Text == "rgba" {
			return parseRGBFunction(tokens)
		}
	}
	return Color{}, 0, fmt.Errorf("%w: color %q", ErrNotAValue, tok.String())
}

// ColorPrefix checks if tokens start with a color and returns it together
// with the number of tokens it spans. Used by shorthand parsers.
func ColorPrefix(tokens []Token) (Color, int, bool) {
	if len(tokens) == 0 {
		return Color{}, 0, false
	}
	c, n, err := parseColorPrefix(tokens)
	return c, n, err == nil
}

func parseHex(h string) (Color, error) {
	var digits []uint8
	for _, r := range h {
		v, err := strconv.ParseUint(string(r), 16, 8)
		if err != nil {
			return Color{}, err
		}
		digits = append(digits, uint8(v))
	}
	var c color.RGBA
	switch len(digits) {
	case 3, 4:
		c.R, c.G, c.B = digits[0]*17, digits[1]*17, digits[2]*17
		c.A = 0xff
		if len(digits) == 4 {
			c.A = digits[3] * 17
		}
	case 6, 8:
		c.R = digits[0]<<4 | digits[1]
		c.G = digits[2]<<4 | digits[3]
		c.B = digits[4]<<4 | digits[5]
		c.A = 0xff
		if len(digits) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
	default:
		return Color{}, fmt.Errorf("%w: hex color #%s", ErrNotAValue, h)
	}
	return Color{RGBA: c}, nil
}

// parseRGBFunction parses 'rgb(r, g, b)' or 'rgba(r, g, b, a)'. Components
// are numbers 0…255 or percentages, alpha is a number 0…1 or a percentage.
func parseRGBFunction(tokens []Token) (Color, int, error) {
	var args []Token
	i := 1
	for ; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Kind == TokCloseParen {
			break
		}
		if tok.Kind == TokComma {
			continue
		}
		args = append(args, tok)
	}
	if i == len(tokens) || (len(args) != 3 && len(args) != 4) {
		return Color{}, 0, fmt.Errorf("%w: malformed %s()", ErrNotAValue, tokens[0].Text)
	}
	var comp [4]uint8
	comp[3] = 0xff
	for j, a := range args {
		var f float64
		switch a.Kind {
		case TokNumber:
			f = a.Num
			if j == 3 {
				f *= 255
			}
		case TokPercentage:
			f = a.Num * 255 / 100
		default:
			return Color{}, 0, fmt.Errorf("%w: color component %q", ErrNotAValue, a.String())
		}
		comp[j] = uint8(math.Round(math.Max(0, math.Min(255, f))))
	}
	return Color{RGBA: color.RGBA{R: comp[0], G: comp[1], B: comp[2], A: comp[3]}}, i + 1, nil
}
