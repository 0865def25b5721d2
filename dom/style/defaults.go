package style

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cssbox/dom/style/css"
)

// Initial values. Border widths default to 'medium'.
var (
	initialDisplay     = css.InlineMode | css.InnerInlineMode
	initialBorderWidth = css.JustDimen(3)
	initialFontSize    = css.JustDimen(16)
	initialFontWeight  = css.Number(400)
)

// defaultProperties lists the supported longhands in computation order:
// 'font-size' and 'color' first, border styles before border widths.
func defaultProperties() []PropertyDef {
	props := []PropertyDef{
		{"font-size", initialFontSize, true, parseFontSize},
		{"color", css.Black, true, parseColor},
		{"display", initialDisplay, false, parseDisplay},
		{"width", css.Auto(), false, lengthParser(css.LengthOptions{Percent: true, Auto: true})},
		{"height", css.Auto(), false, lengthParser(css.LengthOptions{Percent: true, Auto: true})},
	}
	for _, d := range fourDirs {
		props = append(props, PropertyDef{"margin-" + d, css.JustDimen(0), false,
			lengthParser(css.LengthOptions{Negative: true, Percent: true, Auto: true})})
	}
	for _, d := range fourDirs {
		props = append(props, PropertyDef{"padding-" + d, css.JustDimen(0), false,
			lengthParser(css.LengthOptions{Percent: true})})
	}
	for _, d := range fourDirs {
		props = append(props, PropertyDef{"border-" + d + "-style", css.Keyword("none"), false,
			keywordParser(borderStyles...)})
	}
	for _, d := range fourDirs {
		props = append(props, PropertyDef{"border-" + d + "-width", initialBorderWidth, false,
			parseBorderWidth})
	}
	for _, d := range fourDirs {
		props = append(props, PropertyDef{"border-" + d + "-color", css.CurrentColor, false,
			parseColor})
	}
	props = append(props, []PropertyDef{
		{"background-color", css.Transparent, false, parseColor},
		{"font-family", css.Keyword("serif"), true, parseFontFamily},
		{"font-weight", initialFontWeight, true, parseFontWeight},
		{"font-style", css.Keyword("normal"), true, keywordParser("normal", "italic", "oblique")},
		{"line-height", css.Keyword("normal"), true, parseLineHeight},
		{"visibility", css.Keyword("visible"), true, keywordParser("visible", "hidden", "collapse")},
		{"white-space", css.Keyword("normal"), true,
			keywordParser("normal", "pre", "nowrap", "pre-wrap", "pre-line")},
	}...)
	return props
}

var borderStyles = []string{
	"none", "hidden", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset",
}

// Font sizes for absolute size keywords, in px.
var fontSizeKeywords = map[string]float64{
	"xx-small": 9,
	"x-small":  10,
	"small":    13,
	"medium":   16,
	"large":    18,
	"x-large":  24,
	"xx-large": 32,
}

// --- Parsers ----------------------------------------------------------

func single(tokens []css.Token) (css.Token, error) {
	if len(tokens) != 1 {
		return css.Token{}, fmt.Errorf("%w: expected a single value, have %d", css.ErrNotAValue, len(tokens))
	}
	return tokens[0], nil
}

func keywordParser(allowed ...string) ParseFunc {
	return func(tokens []css.Token) (css.Value, error) {
		tok, err := single(tokens)
		if err != nil {
			return nil, err
		}
		if tok.Kind == css.TokIdent {
			for _, k := range allowed {
				if tok.Text == k {
					return css.Keyword(k), nil
				}
			}
		}
		return nil, fmt.Errorf("%w: keyword %q", css.ErrNotAValue, tok.String())
	}
}

func lengthParser(opts css.LengthOptions) ParseFunc {
	return func(tokens []css.Token) (css.Value, error) {
		tok, err := single(tokens)
		if err != nil {
			return nil, err
		}
		return css.ParseLength(tok, opts)
	}
}

func parseColor(tokens []css.Token) (css.Value, error) {
	return css.ParseColor(tokens)
}

func parseDisplay(tokens []css.Token) (css.Value, error) {
	tok, err := single(tokens)
	if err != nil {
		return nil, err
	}
	if tok.Kind != css.TokIdent {
		return nil, fmt.Errorf("%w: display %q", css.ErrNotAValue, tok.String())
	}
	return css.ParseDisplay(tok.Text)
}

func parseBorderWidth(tokens []css.Token) (css.Value, error) {
	tok, err := single(tokens)
	if err != nil {
		return nil, err
	}
	if tok.Kind == css.TokIdent {
		switch tok.Text {
		case "thin":
			return css.JustDimen(1), nil
		case "medium":
			return css.JustDimen(3), nil
		case "thick":
			return css.JustDimen(5), nil
		}
	}
	return css.ParseLength(tok, css.LengthOptions{})
}

func parseFontSize(tokens []css.Token) (css.Value, error) {
	tok, err := single(tokens)
	if err != nil {
		return nil, err
	}
	if tok.Kind == css.TokIdent {
		if _, ok := fontSizeKeywords[tok.Text]; ok || tok.Text == "smaller" || tok.Text == "larger" {
			return css.Keyword(tok.Text), nil
		}
	}
	return css.ParseLength(tok, css.LengthOptions{Percent: true})
}

// parseFontFamily accepts a comma separated list of family names. A family
// name is either a string or a sequence of identifiers. The list is kept
// as a single keyword, with names separated by ", ".
func parseFontFamily(tokens []css.Token) (css.Value, error) {
	var families []string
	var name []string
	flush := func() error {
		if len(name) == 0 {
			return fmt.Errorf("%w: empty font family name", css.ErrNotAValue)
		}
		families = append(families, strings.Join(name, " "))
		name = name[:0]
		return nil
	}
	for _, tok := range tokens {
		switch tok.Kind {
		case css.TokIdent, css.TokString:
			name = append(name, tok.Text)
		case css.TokComma:
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: font family %q", css.ErrNotAValue, tok.String())
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return css.Keyword(strings.Join(families, ", ")), nil
}

func parseFontWeight(tokens []css.Token) (css.Value, error) {
	tok, err := single(tokens)
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case css.TokIdent:
		switch tok.Text {
		case "normal", "bold", "bolder", "lighter":
			return css.Keyword(tok.Text), nil
		}
	case css.TokNumber:
		w := int(tok.Num)
		if float64(w) == tok.Num && w >= 100 && w <= 900 && w%100 == 0 {
			return css.Number(w), nil
		}
	}
	return nil, fmt.Errorf("%w: font weight %q", css.ErrNotAValue, tok.String())
}

func parseLineHeight(tokens []css.Token) (css.Value, error) {
	tok, err := single(tokens)
	if err != nil {
		return nil, err
	}
	switch {
	case tok.IsIdent("normal"):
		return css.Keyword("normal"), nil
	case tok.Kind == css.TokNumber && tok.Num >= 0:
		return css.Number(tok.Num), nil
	}
	return css.ParseLength(tok, css.LengthOptions{Percent: true})
}
