package cssbox

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/cssbox/dom/style/cssom"
	"github.com/npillmayer/cssbox/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cssbox/frame/boxtree"
	"github.com/npillmayer/cssbox/frame/displaylist"
	"github.com/npillmayer/cssbox/frame/layout"
	"github.com/npillmayer/cssbox/frame/textmetrics"
	"github.com/npillmayer/cssbox/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var tenPx = textmetrics.MeasureFunc(func(s string, fs textmetrics.FontStyle) (float64, float64) {
	return float64(len(s)) * 10, 20
})

const page = `<html><head><style>
	div.box { width: 200px; margin: 0 auto; height: 10px; background: #336699 }
	#x { color: red } .y { color: blue } p { color: green; margin: 0 }
	p { border-bottom: 1px solid }
</style></head><body>
<div class="box"></div>
<p id="x" class="y">Hello <b>World</b></p>
<p style="padding-left: 4px">second</p>
</body></html>`

// snapshot is a flat, comparable representation of a layout box.
type snapshot struct {
	Depth  int
	Box    string
	Dims   layout.Dimensions
	Styles string
}

func flatten(t *testing.T, root *layout.Box) []snapshot {
	t.Helper()
	var snaps []snapshot
	err := tree.Walk(&root.Node, func(n *tree.Node[*layout.Box], depth int) error {
		b := n.Payload
		snaps = append(snaps, snapshot{
			Depth:  depth,
			Box:    b.Source().String(),
			Dims:   b.Dimensions,
			Styles: b.Styles().String(),
		})
		return nil
	})
	require.NoError(t, err)
	return snaps
}

// find returns the first layout box generated by an element with a given tag.
func find(root *layout.Box, tag string) *layout.Box {
	var found *layout.Box
	tree.Walk(&root.Node, func(n *tree.Node[*layout.Box], depth int) error {
		if found != nil {
			return nil
		}
		if dn := n.Payload.Source().DOMNode(); dn != nil && dn.Type == html.ElementNode && dn.Data == tag {
			found = n.Payload
		}
		return nil
	})
	return found
}

func TestRenderHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox")
	defer teardown()
	//
	root, err := RenderHTML(strings.NewReader(page), WithViewport(800, 600), WithMeasurer(tenPx))
	require.NoError(t, err)
	t.Logf("\n%s", layout.Dump(root))
	assert.Equal(t, 800.0, root.Content.Width)
	body := find(root, "body")
	require.NotNil(t, body)
	assert.Equal(t, 8.0, body.Content.X)
	assert.Equal(t, 784.0, body.Content.Width)
	div := find(root, "div")
	require.NotNil(t, div)
	assert.Equal(t, 300.0, div.Content.X) // centered within the body
	assert.Equal(t, 200.0, div.Content.Width)
	p := find(root, "p")
	require.NotNil(t, p)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, p.Styles().Color("color"))
	assert.Equal(t, div.MarginBox().Bottom(), p.MarginBox().Y)
	assert.Nil(t, find(root, "head"))
}

func TestPipelineResult(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox")
	defer teardown()
	//
	p, err := NewPipeline(WithMeasurer(tenPx))
	require.NoError(t, err)
	res, err := p.RunHTML(strings.NewReader(page))
	require.NoError(t, err)
	require.NotNil(t, res.Styled)
	require.NotNil(t, res.Boxes)
	assert.Equal(t, "html", res.DOM().NodeName())
	t.Logf("\n%s", boxtree.Dump(res.Boxes))
	var backgrounds int
	for _, c := range res.DisplayList {
		if sc, ok := c.(displaylist.SolidColor); ok && sc.Color == (color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}) {
			backgrounds++
			assert.Equal(t, 200.0, sc.Rect.Width)
		}
	}
	assert.Equal(t, 1, backgrounds)
	text, err := res.DOM().TextContent()
	require.NoError(t, err)
	assert.Contains(t, text, "Hello World")
}

func TestDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox")
	defer teardown()
	//
	first, err := RenderHTML(strings.NewReader(page), WithMeasurer(tenPx))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := RenderHTML(strings.NewReader(page), WithMeasurer(tenPx))
		require.NoError(t, err)
		if diff := cmp.Diff(flatten(t, first), flatten(t, again)); diff != "" {
			t.Fatalf("layout differs in run %d (-first +again):\n%s", i, diff)
		}
	}
}

func TestIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	p, err := NewPipeline(WithMeasurer(tenPx))
	require.NoError(t, err)
	sheets := p.Stylesheets(doc)
	r1, err := p.Run(doc, sheets)
	require.NoError(t, err)
	r2, err := p.Run(doc, sheets)
	require.NoError(t, err)
	assert.NotSame(t, r1.Layout, r2.Layout, "every run builds fresh trees")
	if diff := cmp.Diff(flatten(t, r1.Layout), flatten(t, r2.Layout)); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
	assert.Equal(t, r1.DisplayList.String(), r2.DisplayList.String())
}

func TestRenderWithExplicitSheets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<div><span>ab</span></div>`))
	require.NoError(t, err)
	sheet, err := douceuradapter.Parse(`html, body, div { display: block } span { padding: 0 5px }`, cssom.Author)
	require.NoError(t, err)
	root, err := Render(doc, []cssom.StyleSheet{sheet}, WithMeasurer(tenPx), WithViewport(400, 0))
	require.NoError(t, err)
	span := find(root, "span")
	require.NotNil(t, span)
	assert.Equal(t, 5.0, span.Content.X)
	assert.Equal(t, 20.0, span.Content.Width)
	assert.Equal(t, 20.0, root.Content.Height)
}

func TestWithoutUserAgentStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox")
	defer teardown()
	//
	p, err := NewPipeline(WithoutUserAgentStyles(), WithoutInlineStyles(), WithMeasurer(tenPx))
	require.NoError(t, err)
	res, err := p.RunHTML(strings.NewReader(`<p style="display:block">text</p>`))
	require.NoError(t, err)
	// without default styles, everything is inline
	assert.Equal(t, boxtree.InlineBox, res.Layout.Kind())
	assert.Nil(t, find(res.Layout, "p").Source().ChildBoxes()[0].Styles())
	assert.Equal(t, boxtree.InlineBox, find(res.Layout, "p").Kind())
}

func TestErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox")
	defer teardown()
	//
	_, err := Render(&html.Node{Type: html.DocumentNode}, nil)
	assert.True(t, errors.Is(err, ErrNoRootElement))
	_, err = Render(nil, nil)
	assert.True(t, errors.Is(err, ErrNoRootElement))
	_, err = RenderHTML(strings.NewReader(`<html style="display: none"><p>x</p></html>`))
	assert.True(t, errors.Is(err, ErrNoRootElement))
	_, err = RenderHTML(strings.NewReader(`<p>x</p>`), WithViewport(-1, 0))
	assert.True(t, errors.Is(err, ErrInvalidOption))
	_, err = NewPipeline(WithMeasurer(nil))
	assert.True(t, errors.Is(err, ErrInvalidOption))
	_, err = NewPipeline(WithRegistry(nil))
	assert.True(t, errors.Is(err, ErrInvalidOption))
}
