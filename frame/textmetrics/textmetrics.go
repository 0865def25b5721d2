/*
Package textmetrics measures text for layout.

Text shaping is not a concern of this module. Layout asks a Measurer for
the advance width and line height of a run of text in a given font style.
Clients with access to real fonts plug in their own Measurer; Default
returns a measurer based on a fixed-width bitmap face, which is good
enough for tests and for debugging layouts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textmetrics

import (
	"strings"

	"github.com/npillmayer/cssbox/dom/style"
	"github.com/npillmayer/cssbox/dom/style/css"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FontStyle is the set of style properties relevant for measuring text.
type FontStyle struct {
	Family     string
	Size       float64 // font size in px
	Weight     int     // 100…900
	Italic     bool
	LineHeight float64 // line height in px; 0 for 'normal'
}

// Measurer measures runs of text.
type Measurer interface {
	// Measure returns the advance width of text and the height of a line
	// box containing it, both in px.
	Measure(text string, fs FontStyle) (width, lineHeight float64)
}

// MeasureFunc is an adapter to use ordinary functions as measurers.
type MeasureFunc func(text string, fs FontStyle) (float64, float64)

// Measure calls f(text, fs).
func (f MeasureFunc) Measure(text string, fs FontStyle) (float64, float64) {
	return f(text, fs)
}

// FromStyle extracts the font style from a computed style. A 'line-height'
// given as a number is multiplied by the font size.
func FromStyle(cs *style.ComputedStyle) FontStyle {
	fs := FontStyle{
		Family: cs.Keyword("font-family"),
		Size:   cs.FontSize(),
		Weight: 400,
		Italic: false,
	}
	if w, ok := cs.Number("font-weight"); ok {
		fs.Weight = int(w)
	}
	switch cs.Keyword("font-style") {
	case "italic", "oblique":
		fs.Italic = true
	}
	if v, ok := cs.Get("line-height"); ok {
		switch lh := v.(type) {
		case css.Number:
			fs.LineHeight = float64(lh) * fs.Size
		case css.DimenT:
			fs.LineHeight = lh.Px()
		}
	}
	return fs
}

// Default returns a measurer using a fixed-width 7×13 bitmap face, scaled
// to the requested font size.
func Default() Measurer {
	return faceMeasurer{face: basicfont.Face7x13, size: 13}
}

// faceMeasurer measures with a font face designed for a given pixel size.
type faceMeasurer struct {
	face font.Face
	size float64
}

func (m faceMeasurer) Measure(text string, fs FontStyle) (float64, float64) {
	scale := 1.0
	if fs.Size > 0 {
		scale = fs.Size / m.size
	}
	w := toFloat(font.MeasureString(m.face, text)) * scale
	if fs.Weight >= 600 {
		// simulate bold by widening every glyph by one pixel
		w += float64(len([]rune(text))) * scale
	}
	lh := fs.LineHeight
	if lh <= 0 {
		lh = toFloat(m.face.Metrics().Height) * scale
	}
	return w, lh
}

func toFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// CollapseWhiteSpace collapses runs of white space to a single space, as
// for 'white-space: normal'. Text consisting of white space only collapses
// to the empty string.
func CollapseWhiteSpace(s string) string {
	var b strings.Builder
	space, content := false, false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
		}
		space, content = false, true
		b.WriteRune(r)
	}
	if !content {
		return ""
	}
	if space {
		b.WriteByte(' ')
	}
	return b.String()
}
