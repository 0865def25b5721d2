package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/cssbox/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specified(t *testing.T, decls ...string) map[string]css.Value {
	t.Helper()
	r := DefaultRegistry()
	m := make(map[string]css.Value)
	for i := 0; i+1 < len(decls); i += 2 {
		kvs, err := r.Parse(decls[i], Property(decls[i+1]))
		require.NoError(t, err, decls[i])
		for _, kv := range kvs {
			m[kv.Key] = kv.Value
		}
	}
	return m
}

func TestComputeInitialAndInherited(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	r := DefaultRegistry()
	root := r.Compute(specified(t, "color", "red", "margin-left", "10px"), nil)
	assert.Equal(t, len(r.Properties()), root.Len(), "every property has a computed value")
	assert.Equal(t, 16.0, root.FontSize())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, root.Color("color"))
	assert.Equal(t, css.InlineMode|css.InnerInlineMode, root.Display())
	child := r.Compute(nil, root)
	assert.Equal(t, root.Color("color"), child.Color("color"), "color is inherited")
	assert.Equal(t, 0.0, child.Dimen("margin-left").Px(), "margins are not inherited")
	assert.True(t, child.Dimen("width").IsAuto())
}

func TestComputeInheritAndInitialKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	r := DefaultRegistry()
	root := r.Compute(specified(t, "color", "blue", "margin-top", "7px"), nil)
	child := r.Compute(specified(t, "margin-top", "inherit", "color", "initial"), root)
	assert.Equal(t, 7.0, child.Dimen("margin-top").Px())
	assert.Equal(t, color.RGBA{A: 255}, child.Color("color"))
	orphan := r.Compute(specified(t, "margin-top", "inherit"), nil)
	assert.Equal(t, 0.0, orphan.Dimen("margin-top").Px(), "inherit without parent uses initial value")
}

func TestComputeFontRelative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	r := DefaultRegistry()
	root := r.Compute(specified(t, "font-size", "20px"), nil)
	child := r.Compute(specified(t, "font-size", "2em", "margin-left", "1em",
		"padding-top", "1ex", "line-height", "150%"), root)
	assert.Equal(t, 40.0, child.FontSize(), "font-size em is relative to parent")
	assert.Equal(t, 40.0, child.Dimen("margin-left").Px(), "em is relative to own font-size")
	assert.Equal(t, 20.0, child.Dimen("padding-top").Px())
	assert.Equal(t, 60.0, child.Dimen("line-height").Px())
	pct := r.Compute(specified(t, "font-size", "50%"), root)
	assert.Equal(t, 10.0, pct.FontSize())
	kw := r.Compute(specified(t, "font-size", "x-large"), root)
	assert.Equal(t, 24.0, kw.FontSize())
	abs := r.Compute(specified(t, "width", "1in", "height", "12pt"), root)
	assert.Equal(t, 96.0, abs.Dimen("width").Px())
	assert.Equal(t, 16.0, abs.Dimen("height").Px())
	assert.True(t, r.Compute(specified(t, "width", "50%"), root).Dimen("width").IsPercent())
}

func TestComputeBordersAndCurrentColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	r := DefaultRegistry()
	cs := r.Compute(specified(t, "color", "green", "border-left", "4px solid",
		"border-right-width", "thick"), nil)
	assert.Equal(t, 4.0, cs.Dimen("border-left-width").Px())
	assert.Equal(t, 0.0, cs.Dimen("border-right-width").Px(), "border without style has no width")
	assert.Equal(t, 0.0, cs.Dimen("border-top-width").Px())
	assert.Equal(t, cs.Color("color"), cs.Color("border-left-color"), "currentcolor takes color")
}

func TestComputeInheritedBorderWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	r := DefaultRegistry()
	parent := r.Compute(specified(t, "border-top", "5px solid"), nil)
	require.Equal(t, 5.0, parent.Dimen("border-top-width").Px())
	child := r.Compute(specified(t, "border-top-width", "inherit"), parent)
	assert.Equal(t, 0.0, child.Dimen("border-top-width").Px(), "inherited width of a border without style")
	styled := r.Compute(specified(t, "border-top-width", "inherit", "border-top-style", "dashed"), parent)
	assert.Equal(t, 5.0, styled.Dimen("border-top-width").Px())
	child = r.Compute(specified(t, "font-size", "inherit", "font-weight", "inherit"), parent)
	assert.Equal(t, parent.FontSize(), child.FontSize())
	w, _ := child.Number("font-weight")
	assert.Equal(t, 400.0, w)
}

func TestComputeFontWeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	r := DefaultRegistry()
	root := r.Compute(specified(t, "font-weight", "bold"), nil)
	w, ok := root.Number("font-weight")
	require.True(t, ok)
	assert.Equal(t, 700.0, w)
	child := r.Compute(specified(t, "font-weight", "bolder"), root)
	w, _ = child.Number("font-weight")
	assert.Equal(t, 900.0, w)
	light := r.Compute(specified(t, "font-weight", "lighter"), root)
	w, _ = light.Number("font-weight")
	assert.Equal(t, 400.0, w)
}

func TestComputedStyleImmutable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	m := map[string]css.Value{"color": css.Black}
	cs := NewComputedStyle(m)
	m["color"] = css.RGB(1, 2, 3)
	assert.Equal(t, color.RGBA{A: 255}, cs.Color("color"))
	assert.Equal(t, []string{"color"}, cs.Keys())
	assert.True(t, cs.Equal(NewComputedStyle(map[string]css.Value{"color": css.Black})))
	assert.Equal(t, "{\n  color: #000000\n}", cs.String())
}
