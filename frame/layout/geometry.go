package layout

import "fmt"

// Rect is a rectangle in absolute coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// ExpandedBy returns r grown by edge sizes e on every side.
func (r Rect) ExpandedBy(e EdgeSizes) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Left + e.Right,
		Height: r.Height + e.Top + e.Bottom,
	}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %g×%g)", r.X, r.Y, r.Width, r.Height)
}

// EdgeSizes are the widths of the four sides of padding, border or margin.
type EdgeSizes struct {
	Left, Right, Top, Bottom float64
}

// Horizontal returns the sum of left and right.
func (e EdgeSizes) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of top and bottom.
func (e EdgeSizes) Vertical() float64 {
	return e.Top + e.Bottom
}

// Dimensions follow the CSS box model: a content area surrounded by
// padding, border and margin.
type Dimensions struct {
	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// PaddingBox is the content area plus padding.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

// BorderBox is the content area plus padding and borders.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// MarginBox is the content area plus padding, borders and margin.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}

// Viewport is the initial containing block. A height of 0 denotes an
// unknown viewport height.
type Viewport struct {
	Width, Height float64
}
