package displaylist

import (
	"image/color"
	"testing"

	"github.com/npillmayer/cssbox/dom/style"
	"github.com/npillmayer/cssbox/dom/style/css"
	"github.com/npillmayer/cssbox/frame/boxtree"
	"github.com/npillmayer/cssbox/frame/layout"
	"github.com/npillmayer/cssbox/frame/textmetrics"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func styled(t *testing.T, decls map[string]string, parent *style.ComputedStyle) *style.ComputedStyle {
	t.Helper()
	reg := style.DefaultRegistry()
	specified := make(map[string]css.Value)
	for name, raw := range decls {
		kvs, err := reg.Parse(name, style.Property(raw))
		require.NoError(t, err)
		for _, kv := range kvs {
			specified[kv.Key] = kv.Value
		}
	}
	return reg.Compute(specified, parent)
}

var tenPx = textmetrics.MeasureFunc(func(s string, fs textmetrics.FontStyle) (float64, float64) {
	return float64(len(s)) * 10, 20
})

func div(cs *style.ComputedStyle, children ...*boxtree.Box) *boxtree.Box {
	b := boxtree.NewElementBox(boxtree.BlockBox, &html.Node{Type: html.ElementNode, Data: "div"}, cs)
	for _, ch := range children {
		b.AddChildBox(ch)
	}
	return b
}

func TestBackgroundAndBorders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	cs := styled(t, map[string]string{
		"display":          "block",
		"width":            "100px",
		"height":           "50px",
		"background-color": "red",
		"border":           "2px solid blue",
	}, nil)
	l, err := layout.Layout(div(cs), layout.Viewport{Width: 800}, tenPx)
	require.NoError(t, err)
	list := Build(l)
	t.Logf("\n%s", list)
	require.Len(t, list, 5)
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	assert.Equal(t, SolidColor{Color: red, Rect: layout.Rect{X: 0, Y: 0, Width: 104, Height: 54}}, list[0])
	assert.Equal(t, SolidColor{Color: blue, Rect: layout.Rect{X: 0, Y: 0, Width: 2, Height: 54}}, list[1])
	assert.Equal(t, SolidColor{Color: blue, Rect: layout.Rect{X: 102, Y: 0, Width: 2, Height: 54}}, list[2])
	assert.Equal(t, SolidColor{Color: blue, Rect: layout.Rect{X: 0, Y: 0, Width: 104, Height: 2}}, list[3])
	assert.Equal(t, SolidColor{Color: blue, Rect: layout.Rect{X: 0, Y: 52, Width: 104, Height: 2}}, list[4])
}

func TestBordersUseCurrentColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	cs := styled(t, map[string]string{
		"display":    "block",
		"color":      "#00ff00",
		"border-top": "1px solid",
	}, nil)
	l, err := layout.Layout(div(cs), layout.Viewport{Width: 800}, tenPx)
	require.NoError(t, err)
	list := Build(l)
	require.Len(t, list, 1)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, list[0].(SolidColor).Color)
}

func TestTextAndVisibility(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	hidden := styled(t, map[string]string{
		"display":          "block",
		"visibility":       "hidden",
		"background-color": "red",
		"color":            "blue",
	}, nil)
	visible := styled(t, map[string]string{"display": "block", "visibility": "visible"}, hidden)
	hiddenText := boxtree.NewTextRun(&html.Node{Type: html.TextNode, Data: "no"}, "no")
	shownText := boxtree.NewTextRun(&html.Node{Type: html.TextNode, Data: "yes"}, "yes")
	root := div(hidden, div(hidden, hiddenText), div(visible, shownText))
	l, err := layout.Layout(root, layout.Viewport{Width: 800}, tenPx)
	require.NoError(t, err)
	list := Build(l)
	t.Logf("\n%s", list)
	require.Len(t, list, 1)
	txt, ok := list[0].(Text)
	require.True(t, ok)
	assert.Equal(t, "yes", txt.Text)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, txt.Color) // inherited
	assert.Equal(t, layout.Rect{X: 0, Y: 20, Width: 30, Height: 20}, txt.Bounds())
	assert.Equal(t, 16.0, txt.Font.Size)
}

func TestBuildNil(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.layout")
	defer teardown()
	//
	assert.Empty(t, Build(nil))
}
