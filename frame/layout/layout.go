package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/cssbox/dom/style"
	"github.com/npillmayer/cssbox/dom/style/css"
	"github.com/npillmayer/cssbox/frame/boxtree"
	"github.com/npillmayer/cssbox/frame/textmetrics"
	"github.com/npillmayer/cssbox/tree"
)

// ErrMissingStyle is returned if a block or inline box has no computed style.
var ErrMissingStyle = errors.New("box has no computed style")

// containingBlock is the rectangle a box is laid out in. The height of a
// containing block is known only for boxes with a definite height.
type containingBlock struct {
	X, Y     float64
	Width    float64
	Height   float64
	Definite bool // is Height known?
}

type engine struct {
	measurer textmetrics.Measurer
}

// Layout computes the geometry of a box tree within a viewport. Text runs
// are measured with m; if m is nil, textmetrics.Default() is used.
//
// Layout either returns a complete layout tree or an error, never a
// partially laid out tree. A block or inline box without computed style
// results in ErrMissingStyle.
func Layout(root *boxtree.Box, viewport Viewport, m textmetrics.Measurer) (*Box, error) {
	if root == nil {
		return nil, tree.ErrEmptyTree
	}
	if m == nil {
		m = textmetrics.Default()
	}
	e := engine{measurer: m}
	cb := containingBlock{
		Width:    viewport.Width,
		Height:   viewport.Height,
		Definite: viewport.Height > 0,
	}
	lroot := newBox(root)
	var err error
	if root.Kind.IsBlockLevel() {
		err = e.layoutBlock(lroot, cb, 0)
	} else {
		_, _, err = e.layoutInlineLevel(lroot, cb, 0, 0)
	}
	if err != nil {
		tracer().Errorf("layout failed: %v", err)
		return nil, err
	}
	return lroot, nil
}

// --- Block layout ----------------------------------------------------------

// layoutBlock lays out a block-level box, with the top of its margin box at
// y. Width and position are computed first, then the children, then the
// height.
func (e engine) layoutBlock(b *Box, cb containingBlock, y float64) error {
	cs := b.Styles()
	if b.Kind() == boxtree.AnonymousBlock {
		b.Content = Rect{X: cb.X, Y: y, Width: math.Max(0, cb.Width)}
	} else {
		if cs == nil {
			return fmt.Errorf("layout of %v: %w", b.source, ErrMissingStyle)
		}
		e.calculateBlockWidth(b, cs, cb)
		e.calculateBlockPosition(b, cs, cb, y)
	}
	inner := containingBlock{X: b.Content.X, Y: b.Content.Y, Width: b.Content.Width}
	if cs != nil {
		inner.Height, inner.Definite = definiteHeight(cs.Dimen("height"), cb)
	}
	contentHeight, err := e.layoutChildren(b, inner)
	if err != nil {
		return err
	}
	b.Content.Height = contentHeight
	if cs != nil {
		if h, ok := explicitHeight(cs.Dimen("height"), cb); ok {
			b.Content.Height = h
		}
	}
	b.Content.Height = math.Max(0, b.Content.Height)
	return nil
}

// calculateBlockWidth solves the equation of CSS 2.1, section 10.3.3:
//
//     margin-left + border-left-width + padding-left + width +
//     padding-right + border-right-width + margin-right = width of containing block
func (e engine) calculateBlockWidth(b *Box, cs *style.ComputedStyle, cb containingBlock) {
	cbw := cb.Width
	width := cs.Dimen("width")
	ml, mr := cs.Dimen("margin-left"), cs.Dimen("margin-right")
	b.Border.Left = px(cs.Dimen("border-left-width"), cbw)
	b.Border.Right = px(cs.Dimen("border-right-width"), cbw)
	b.Padding.Left = px(cs.Dimen("padding-left"), cbw)
	b.Padding.Right = px(cs.Dimen("padding-right"), cbw)
	autoW, autoML, autoMR := width.IsAuto(), ml.IsAuto(), mr.IsAuto()
	w, marginL, marginR := px(width, cbw), px(ml, cbw), px(mr, cbw)
	total := marginL + b.Border.Left + b.Padding.Left + w + b.Padding.Right + b.Border.Right + marginR
	// if the box is too wide, auto margins are treated as 0
	if !autoW && total > cbw {
		autoML, autoMR = false, false
	}
	underflow := cbw - total
	switch {
	case !autoW && !autoML && !autoMR: // over-constrained
		marginR += underflow
	case !autoW && !autoML && autoMR:
		marginR = underflow
	case !autoW && autoML && !autoMR:
		marginL = underflow
	case !autoW && autoML && autoMR: // centered
		marginL, marginR = underflow/2, underflow/2
	case autoW:
		if underflow >= 0 {
			w = underflow
		} else {
			w = 0
			marginR += underflow
		}
	}
	tracer().Debugf("width of %v: %g + %g + %g + %g + %g + %g + %g = %g", b.source,
		marginL, b.Border.Left, b.Padding.Left, w, b.Padding.Right, b.Border.Right, marginR, cbw)
	b.Content.Width = w
	b.Margin.Left, b.Margin.Right = marginL, marginR
}

// calculateBlockPosition resolves the vertical edges and places the content
// box below y. Margins do not collapse.
func (e engine) calculateBlockPosition(b *Box, cs *style.ComputedStyle, cb containingBlock, y float64) {
	cbw := cb.Width
	b.Margin.Top = px(cs.Dimen("margin-top"), cbw)
	b.Margin.Bottom = px(cs.Dimen("margin-bottom"), cbw)
	b.Border.Top = px(cs.Dimen("border-top-width"), cbw)
	b.Border.Bottom = px(cs.Dimen("border-bottom-width"), cbw)
	b.Padding.Top = px(cs.Dimen("padding-top"), cbw)
	b.Padding.Bottom = px(cs.Dimen("padding-bottom"), cbw)
	b.Content.X = cb.X + b.Margin.Left + b.Border.Left + b.Padding.Left
	b.Content.Y = y + b.Margin.Top + b.Border.Top + b.Padding.Top
}

// layoutChildren lays out the children of a block container and returns the
// height they occupy. Block-level children are stacked vertically, inline-level
// children are placed on a single line.
func (e engine) layoutChildren(b *Box, cb containingBlock) (float64, error) {
	children := b.source.ChildBoxes()
	if len(children) == 0 {
		return 0, nil
	}
	if !children[0].Kind.IsBlockLevel() {
		return e.layoutLine(b, children, cb)
	}
	cursor := cb.Y
	for _, ch := range children {
		lb := newBox(ch)
		b.AddChild(&lb.Node)
		if ch.Kind.IsBlockLevel() {
			if err := e.layoutBlock(lb, cb, cursor); err != nil {
				return 0, err
			}
			cursor = lb.MarginBox().Bottom()
			continue
		}
		_, h, err := e.layoutInlineLevel(lb, cb, cb.X, cursor)
		if err != nil {
			return 0, err
		}
		cursor += h
	}
	return cursor - cb.Y, nil
}

// --- Inline layout ---------------------------------------------------------

// layoutLine places inline-level boxes left to right on a single line box
// at the top of the containing block and returns the line's height.
func (e engine) layoutLine(parent *Box, boxes []*boxtree.Box, cb containingBlock) (float64, error) {
	x, lineHeight := cb.X, 0.0
	for _, ch := range boxes {
		lb := newBox(ch)
		parent.AddChild(&lb.Node)
		w, h, err := e.layoutInlineLevel(lb, cb, x, cb.Y)
		if err != nil {
			return 0, err
		}
		x += w
		lineHeight = math.Max(lineHeight, h)
	}
	return lineHeight, nil
}

// layoutInlineLevel lays out a box at position (x,y) of a line. It returns
// the horizontal advance and the height the box contributes to the line.
func (e engine) layoutInlineLevel(b *Box, cb containingBlock, x, y float64) (float64, float64, error) {
	switch b.Kind() {
	case boxtree.TextRun:
		fs := textmetrics.FontStyle{Size: 16, Weight: 400}
		if cs := b.source.NearestStyles(); cs != nil {
			fs = textmetrics.FromStyle(cs)
		}
		w, lh := e.measurer.Measure(b.source.Text(), fs)
		b.Content = Rect{X: x, Y: y, Width: w, Height: lh}
		return w, lh, nil
	case boxtree.InlineBox:
		return e.layoutInlineBox(b, cb, x, y)
	}
	// block-level box inside an inline box
	lcb := cb
	lcb.X = x
	if err := e.layoutBlock(b, lcb, y); err != nil {
		return 0, 0, err
	}
	mb := b.MarginBox()
	return mb.Width, mb.Height, nil
}

// layoutInlineBox lays out an inline box with its children. Horizontal
// margins, borders and paddings take space on the line; vertical margins
// are zero and vertical borders and paddings do not affect the line height.
func (e engine) layoutInlineBox(b *Box, cb containingBlock, x, y float64) (float64, float64, error) {
	cs := b.Styles()
	if cs == nil {
		return 0, 0, fmt.Errorf("layout of %v: %w", b.source, ErrMissingStyle)
	}
	cbw := cb.Width
	b.Margin.Left = px(cs.Dimen("margin-left"), cbw)
	b.Margin.Right = px(cs.Dimen("margin-right"), cbw)
	b.Border = EdgeSizes{
		Left:   px(cs.Dimen("border-left-width"), cbw),
		Right:  px(cs.Dimen("border-right-width"), cbw),
		Top:    px(cs.Dimen("border-top-width"), cbw),
		Bottom: px(cs.Dimen("border-bottom-width"), cbw),
	}
	b.Padding = EdgeSizes{
		Left:   px(cs.Dimen("padding-left"), cbw),
		Right:  px(cs.Dimen("padding-right"), cbw),
		Top:    px(cs.Dimen("padding-top"), cbw),
		Bottom: px(cs.Dimen("padding-bottom"), cbw),
	}
	b.Content.X = x + b.Margin.Left + b.Border.Left + b.Padding.Left
	b.Content.Y = y
	cx, height := b.Content.X, 0.0
	for _, ch := range b.source.ChildBoxes() {
		lb := newBox(ch)
		b.AddChild(&lb.Node)
		w, h, err := e.layoutInlineLevel(lb, cb, cx, y)
		if err != nil {
			return 0, 0, err
		}
		cx += w
		height = math.Max(height, h)
	}
	b.Content.Width = cx - b.Content.X
	b.Content.Height = height
	return b.MarginBox().Width, height, nil
}

// --- Helpers ---------------------------------------------------------------

// px resolves a dimension against a reference length. 'auto' resolves to 0.
func px(d css.DimenT, ref float64) float64 {
	return d.Resolve(ref)
}

// explicitHeight returns the used value of property 'height', if it is not
// 'auto'. Percentages refer to the height of the containing block; if that
// is not definite, they resolve to 0.
func explicitHeight(h css.DimenT, cb containingBlock) (float64, bool) {
	var x, p float64
	switch m := h.Match(); m {
	case m.Just(&x):
		return x, true
	case m.Percentage(&p):
		if cb.Definite {
			return cb.Height * p / 100, true
		}
		return 0, true
	}
	return 0, false
}

// definiteHeight returns the height a box provides to its children as a
// containing block, if it is known before layout of the children.
func definiteHeight(h css.DimenT, cb containingBlock) (float64, bool) {
	if h.IsAbsolute() || (h.IsPercent() && cb.Definite) {
		x, _ := explicitHeight(h, cb)
		return math.Max(0, x), true
	}
	return 0, false
}
