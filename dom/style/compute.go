package style

import (
	"strings"

	"github.com/npillmayer/cssbox/dom/style/css"
)

// Compute derives the computed style of a node from its specified values
// (the winners of the cascade) and the computed style of its parent. parent
// is nil for the root node.
//
// For every registered property:
//
//   - if no value is specified, inherited properties copy the parent's
//     computed value, all others use the initial value;
//   - 'inherit' copies the parent's computed value (the initial value for
//     the root);
//   - 'initial' uses the initial value.
//
// Specified values are then turned into computed values: font relative
// and absolute lengths become pixels, font size keywords and percentages
// are resolved against the parent's font size, 'currentcolor' becomes
// the value of 'color', and border widths are zero for borders with style
// 'none' or 'hidden'. Percentages of box dimensions are left to layout.
func (r *Registry) Compute(specified map[string]css.Value, parent *ComputedStyle) *ComputedStyle {
	c := computer{
		values:         make(map[string]css.Value, len(r.order)),
		parentFontSize: initialFontSize.Px(),
		parentWeight:   float64(initialFontWeight),
		parentColor:    css.Black,
	}
	if parent != nil {
		c.parentFontSize = parent.FontSize()
		if w, ok := parent.Number("font-weight"); ok {
			c.parentWeight = w
		}
		if col, ok := parent.values["color"].(css.Color); ok {
			c.parentColor = col
		}
	}
	for _, name := range r.order {
		def := r.defs[name]
		v, isSpecified := specified[name]
		switch {
		case !isSpecified && def.Inherited && parent != nil,
			isSpecified && v == css.Inherit && parent != nil:
			// parent values are computed already; computing them again
			// only zeroes border widths of borders without style
			if pv, ok := parent.Get(name); ok {
				v = pv
			} else {
				v = def.Initial
			}
		case !isSpecified, v == css.Inherit, v == css.Initial:
			v = def.Initial
		}
		c.values[name] = c.compute(name, v)
	}
	return &ComputedStyle{values: c.values}
}

type computer struct {
	values         map[string]css.Value
	parentFontSize float64
	parentWeight   float64
	parentColor    css.Color
}

func (c *computer) fontSize() float64 {
	if d, ok := c.values["font-size"].(css.DimenT); ok && d.IsAbsolute() {
		return d.Px()
	}
	return c.parentFontSize
}

func (c *computer) compute(name string, v css.Value) css.Value {
	switch name {
	case "font-size":
		return c.computeFontSize(v)
	case "font-weight":
		return c.computeFontWeight(v)
	case "line-height":
		if d, ok := v.(css.DimenT); ok {
			if d.IsPercent() {
				return css.JustDimen(d.Resolve(c.fontSize()))
			}
			return d.Absolute(c.fontSize())
		}
		return v
	}
	switch val := v.(type) {
	case css.DimenT:
		if strings.HasPrefix(name, "border-") && strings.HasSuffix(name, "-width") {
			style := c.values[strings.TrimSuffix(name, "-width")+"-style"]
			if style == css.Keyword("none") || style == css.Keyword("hidden") {
				return css.JustDimen(0)
			}
		}
		return val.Absolute(c.fontSize())
	case css.Color:
		if val.IsCurrentColor() {
			if name == "color" {
				return c.parentColor
			}
			if col, ok := c.values["color"].(css.Color); ok {
				return col
			}
			return css.Black
		}
	}
	return v
}

func (c *computer) computeFontSize(v css.Value) css.Value {
	switch val := v.(type) {
	case css.Keyword:
		switch val {
		case "smaller":
			return css.JustDimen(c.parentFontSize / 1.2)
		case "larger":
			return css.JustDimen(c.parentFontSize * 1.2)
		}
		if px, ok := fontSizeKeywords[string(val)]; ok {
			return css.JustDimen(px)
		}
	case css.DimenT:
		if val.IsPercent() {
			return css.JustDimen(val.Resolve(c.parentFontSize))
		}
		if d := val.Absolute(c.parentFontSize); d.IsAbsolute() {
			return d
		}
	}
	tracer().Debugf("cannot compute font-size from %v, using parent's", v)
	return css.JustDimen(c.parentFontSize)
}

// computeFontWeight maps keywords to numeric weights. 'bolder' and
// 'lighter' follow the table of CSS Fonts Level 4, section 2.2.1.
func (c *computer) computeFontWeight(v css.Value) css.Value {
	k, ok := v.(css.Keyword)
	if !ok {
		return v
	}
	pw := c.parentWeight
	switch k {
	case "normal":
		return css.Number(400)
	case "bold":
		return css.Number(700)
	case "bolder":
		switch {
		case pw < 350:
			return css.Number(400)
		case pw < 550:
			return css.Number(700)
		}
		return css.Number(900)
	case "lighter":
		switch {
		case pw < 550:
			return css.Number(100)
		case pw < 750:
			return css.Number(400)
		}
		return css.Number(700)
	}
	return initialFontWeight
}
