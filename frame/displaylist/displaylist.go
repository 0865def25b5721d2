package displaylist

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/cssbox/dom/style"
	"github.com/npillmayer/cssbox/frame/boxtree"
	"github.com/npillmayer/cssbox/frame/layout"
	"github.com/npillmayer/cssbox/frame/textmetrics"
	"github.com/npillmayer/cssbox/tree"
)

// Command is a paint command. Its concrete type is either SolidColor or Text.
type Command interface {
	Bounds() layout.Rect
	String() string
}

// SolidColor fills a rectangle with a color.
type SolidColor struct {
	Color color.RGBA
	Rect  layout.Rect
}

// Bounds returns the rectangle to fill.
func (c SolidColor) Bounds() layout.Rect { return c.Rect }

func (c SolidColor) String() string {
	return fmt.Sprintf("solid %s %v", hex(c.Color), c.Rect)
}

// Text paints a run of text, with the top left corner of its line box at
// the rectangle's origin.
type Text struct {
	Text  string
	Color color.RGBA
	Font  textmetrics.FontStyle
	Rect  layout.Rect
}

// Bounds returns the line box of the text.
func (c Text) Bounds() layout.Rect { return c.Rect }

func (c Text) String() string {
	return fmt.Sprintf("text %q %s %gpx %v", c.Text, hex(c.Color), c.Font.Size, c.Rect)
}

// List is a display list, in painting order.
type List []Command

func (l List) String() string {
	var sb strings.Builder
	for _, c := range l {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Build creates the display list for a layout tree. Boxes with
// 'visibility' other than 'visible' are not painted, but their children
// may still be.
func Build(root *layout.Box) List {
	if root == nil {
		return nil
	}
	var list List
	err := tree.Walk(&root.Node, func(n *tree.Node[*layout.Box], depth int) error {
		list = appendBox(list, n.Payload)
		return nil
	})
	if err != nil {
		tracer().Errorf("display list: %v", err)
	}
	tracer().Debugf("display list has %d commands", len(list))
	return list
}

func appendBox(list List, b *layout.Box) List {
	switch b.Kind() {
	case boxtree.AnonymousBlock:
		return list
	case boxtree.TextRun:
		cs := b.Source().NearestStyles()
		if cs == nil || !visible(cs) {
			return list
		}
		return append(list, Text{
			Text:  b.Source().Text(),
			Color: cs.Color("color"),
			Font:  textmetrics.FromStyle(cs),
			Rect:  b.Content,
		})
	}
	cs := b.Styles()
	if cs == nil || !visible(cs) {
		return list
	}
	list = appendBackground(list, b, cs)
	return appendBorders(list, b, cs)
}

func appendBackground(list List, b *layout.Box, cs *style.ComputedStyle) List {
	bg := cs.Color("background-color")
	if bg.A == 0 {
		return list
	}
	return append(list, SolidColor{Color: bg, Rect: b.BorderBox()})
}

// appendBorders emits the left, right, top and bottom border, in this order.
func appendBorders(list List, b *layout.Box, cs *style.ComputedStyle) List {
	bb := b.BorderBox()
	sides := []struct {
		name  string
		width float64
		rect  layout.Rect
	}{
		{"left", b.Border.Left, layout.Rect{X: bb.X, Y: bb.Y, Width: b.Border.Left, Height: bb.Height}},
		{"right", b.Border.Right, layout.Rect{X: bb.Right() - b.Border.Right, Y: bb.Y, Width: b.Border.Right, Height: bb.Height}},
		{"top", b.Border.Top, layout.Rect{X: bb.X, Y: bb.Y, Width: bb.Width, Height: b.Border.Top}},
		{"bottom", b.Border.Bottom, layout.Rect{X: bb.X, Y: bb.Bottom() - b.Border.Bottom, Width: bb.Width, Height: b.Border.Bottom}},
	}
	for _, side := range sides {
		if side.width <= 0 {
			continue
		}
		switch cs.Keyword("border-" + side.name + "-style") {
		case "none", "hidden", "":
			continue
		}
		c := cs.Color("border-" + side.name + "-color")
		if c.A == 0 {
			continue
		}
		list = append(list, SolidColor{Color: c, Rect: side.rect})
	}
	return list
}

func visible(cs *style.ComputedStyle) bool {
	v := cs.Keyword("visibility")
	return v == "" || v == "visible"
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
