package layout

import (
	"errors"
	"testing"

	"github.com/npillmayer/cssbox/dom/style"
	"github.com/npillmayer/cssbox/dom/style/css"
	"github.com/npillmayer/cssbox/frame/boxtree"
	"github.com/npillmayer/cssbox/frame/textmetrics"
	"github.com/npillmayer/cssbox/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// computed creates a computed style from CSS declarations, with all other
// properties set to their initial values.
func computed(t *testing.T, decls map[string]string) *style.ComputedStyle {
	t.Helper()
	reg := style.DefaultRegistry()
	specified := make(map[string]css.Value)
	for name, raw := range decls {
		kvs, err := reg.Parse(name, style.Property(raw))
		require.NoError(t, err, "declaration %s: %s", name, raw)
		for _, kv := range kvs {
			specified[kv.Key] = kv.Value
		}
	}
	return reg.Compute(specified, nil)
}

func block(t *testing.T, decls map[string]string, children ...*boxtree.Box) *boxtree.Box {
	decls["display"] = "block"
	b := boxtree.NewElementBox(boxtree.BlockBox, &html.Node{Type: html.ElementNode, Data: "div"},
		computed(t, decls))
	for _, ch := range children {
		b.AddChildBox(ch)
	}
	return b
}

func span(t *testing.T, decls map[string]string, children ...*boxtree.Box) *boxtree.Box {
	decls["display"] = "inline"
	b := boxtree.NewElementBox(boxtree.InlineBox, &html.Node{Type: html.ElementNode, Data: "span"},
		computed(t, decls))
	for _, ch := range children {
		b.AddChildBox(ch)
	}
	return b
}

func text(s string) *boxtree.Box {
	return boxtree.NewTextRun(&html.Node{Type: html.TextNode, Data: s}, s)
}

// tenPx measures every character as 10px wide, with a line height of 20px.
var tenPx = textmetrics.MeasureFunc(func(s string, fs textmetrics.FontStyle) (float64, float64) {
	return float64(len(s)) * 10, 20
})

// margin-left + border-left + padding-left + width + padding-right +
// border-right + margin-right must always add up to the containing block's width.
func assertWidthEquation(t *testing.T, b *Box, cbw float64) {
	t.Helper()
	assert.InDelta(t, cbw, b.MarginBox().Width, 1e-9, "width equation for %v", b)
}

func TestLayoutNil(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	_, err := Layout(nil, Viewport{Width: 800}, nil)
	assert.True(t, errors.Is(err, tree.ErrEmptyTree))
}

func TestWidthAuto(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	root := block(t, map[string]string{"margin-left": "10px", "padding": "5px", "border": "2px solid"})
	l, err := Layout(root, Viewport{Width: 800}, tenPx)
	require.NoError(t, err)
	assert.Equal(t, 800.0-10-10-4, l.Content.Width)
	assert.Equal(t, 17.0, l.Content.X)
	assert.Equal(t, 7.0, l.Content.Y)
	assertWidthEquation(t, l, 800)
	t.Logf("\n%s", Dump(l))
}

func TestWidthAutoWithAutoMargin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	root := block(t, map[string]string{"margin-left": "auto", "margin-right": "0", "border-width": "0"})
	l, err := Layout(root, Viewport{Width: 800}, tenPx)
	require.NoError(t, err)
	assert.Equal(t, 800.0, l.Content.Width+l.Margin.Left)
	assert.Equal(t, 0.0, l.Margin.Left)
}

func TestWidthOverConstrained(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	root := block(t, map[string]string{"width": "200px", "margin-left": "50px", "margin-right": "50px"})
	l, err := Layout(root, Viewport{Width: 800}, tenPx)
	require.NoError(t, err)
	assert.Equal(t, 200.0, l.Content.Width)
	assert.Equal(t, 50.0, l.Margin.Left)
	assert.Equal(t, 550.0, l.Margin.Right)
	assertWidthEquation(t, l, 800)
}

func TestWidthAutoMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	root := block(t, map[string]string{"width": "200px", "margin": "0 auto"})
	l, err := Layout(root, Viewport{Width: 800}, tenPx)
	require.NoError(t, err)
	assert.Equal(t, 300.0, l.Margin.Left)
	assert.Equal(t, 300.0, l.Margin.Right)
	assert.Equal(t, 300.0, l.Content.X)
	assertWidthEquation(t, l, 800)
	//
	root = block(t, map[string]string{"width": "200px", "margin-left": "auto"})
	l, err = Layout(root, Viewport{Width: 800}, tenPx)
	require.NoError(t, err)
	assert.Equal(t, 600.0, l.Margin.Left)
	assert.Equal(t, 0.0, l.Margin.Right)
	assertWidthEquation(t, l, 800)
	//
	root = block(t, map[string]string{"width": "1000px", "margin": "0 auto"})
	l, err = Layout(root, Viewport{Width: 800}, tenPx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, l.Margin.Left)
	assert.Equal(t, -200.0, l.Margin.Right)
	assertWidthEquation(t, l, 800)
}

func TestWidthNegativeRemainder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	root := block(t, map[string]string{"padding-left": "500px", "padding-right": "500px"})
	l, err := Layout(root, Viewport{Width: 800}, tenPx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, l.Content.Width)
	assert.Equal(t, -200.0, l.Margin.Right)
	assertWidthEquation(t, l, 800)
}

func TestWidthPercentages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	inner := block(t, map[string]string{"width": "50%", "padding-top": "10%"})
	root := block(t, map[string]string{"width": "400px"}, inner)
	l, err := Layout(root, Viewport{Width: 800}, tenPx)
	require.NoError(t, err)
	li := l.ChildBoxes()[0]
	assert.Equal(t, 200.0, li.Content.Width)
	assert.Equal(t, 40.0, li.Padding.Top) // percentages of the containing block's width
	assertWidthEquation(t, li, 400)
}

func TestBlockStacking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	a := block(t, map[string]string{"height": "50px", "margin-top": "10px"})
	b := block(t, map[string]string{"height": "30px", "margin-top": "10px"})
	root := block(t, map[string]string{"padding-top": "5px"}, a, b)
	l, err := Layout(root, Viewport{Width: 800, Height: 600}, tenPx)
	require.NoError(t, err)
	chs := l.ChildBoxes()
	require.Len(t, chs, 2)
	assert.Equal(t, 15.0, chs[0].Content.Y)
	assert.Equal(t, 75.0, chs[1].Content.Y) // margins do not collapse
	assert.Equal(t, 100.0, l.Content.Height)
	assert.Equal(t, 5.0, l.Content.Y)
	t.Logf("\n%s", Dump(l))
}

func TestExplicitHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	a := block(t, map[string]string{"height": "50px"})
	root := block(t, map[string]string{"height": "20px"}, a)
	l, err := Layout(root, Viewport{Width: 800}, tenPx)
	require.NoError(t, err)
	assert.Equal(t, 20.0, l.Content.Height) // content overflows
	assert.Equal(t, 50.0, l.ChildBoxes()[0].Content.Height)
}

func TestPercentageHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	inner := block(t, map[string]string{"height": "50%"})
	root := block(t, map[string]string{"height": "50%"}, inner)
	l, err := Layout(root, Viewport{Width: 800, Height: 600}, tenPx)
	require.NoError(t, err)
	assert.Equal(t, 300.0, l.Content.Height)
	assert.Equal(t, 150.0, l.ChildBoxes()[0].Content.Height)
	//
	inner = block(t, map[string]string{"height": "50%"})
	root = block(t, map[string]string{}, inner)
	l, err = Layout(root, Viewport{Width: 800, Height: 600}, tenPx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, l.ChildBoxes()[0].Content.Height) // containing block has auto height
	//
	root = block(t, map[string]string{"height": "50%"})
	l, err = Layout(root, Viewport{Width: 800}, tenPx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, l.Content.Height) // viewport height unknown
}

func TestInlineLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	s := span(t, map[string]string{"padding-left": "5px", "margin-right": "3px"}, text("xy"))
	root := block(t, map[string]string{}, text("abcd"), s, text("z"))
	l, err := Layout(root, Viewport{Width: 800}, tenPx)
	require.NoError(t, err)
	chs := l.ChildBoxes()
	require.Len(t, chs, 3)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 40, Height: 20}, chs[0].Content)
	assert.Equal(t, 45.0, chs[1].Content.X)
	assert.Equal(t, 20.0, chs[1].Content.Width)
	assert.Equal(t, 68.0, chs[2].Content.X)
	assert.Equal(t, 20.0, l.Content.Height)
	t.Logf("\n%s", Dump(l))
}

func TestInlineRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	root := span(t, map[string]string{}, text("abc"))
	l, err := Layout(root, Viewport{Width: 800}, tenPx)
	require.NoError(t, err)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 30, Height: 20}, l.Content)
}

func TestAnonymousBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	anon := boxtree.NewAnonymousBlock()
	anon.AddChildBox(text("hello"))
	p := block(t, map[string]string{"height": "10px"})
	root := block(t, map[string]string{"padding": "4px"}, anon, p)
	l, err := Layout(root, Viewport{Width: 200}, tenPx)
	require.NoError(t, err)
	la := l.ChildBoxes()[0]
	assert.Equal(t, Rect{X: 4, Y: 4, Width: 192, Height: 20}, la.Content)
	assert.Equal(t, 24.0, l.ChildBoxes()[1].Content.Y)
	assert.Equal(t, 30.0, l.Content.Height)
}

func TestMissingStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	bad := boxtree.NewElementBox(boxtree.BlockBox, &html.Node{Type: html.ElementNode, Data: "p"}, nil)
	root := block(t, map[string]string{}, bad)
	l, err := Layout(root, Viewport{Width: 800}, tenPx)
	assert.True(t, errors.Is(err, ErrMissingStyle))
	assert.Nil(t, l)
}

func TestDefaultMeasurerUsed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	root := block(t, map[string]string{}, text("abc"))
	l, err := Layout(root, Viewport{Width: 800}, nil)
	require.NoError(t, err)
	assert.Greater(t, l.Content.Height, 0.0)
	assert.Greater(t, l.ChildBoxes()[0].Content.Width, 0.0)
}
