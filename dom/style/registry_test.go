package style

import (
	"testing"

	"github.com/npillmayer/cssbox/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	r := DefaultRegistry()
	def, ok := r.Lookup("color")
	require.True(t, ok)
	assert.True(t, def.Inherited)
	assert.Equal(t, css.Black, def.Initial)
	def, ok = r.Lookup("margin-left")
	require.True(t, ok)
	assert.False(t, def.Inherited)
	_, ok = r.Lookup("margin")
	assert.False(t, ok, "shorthands have no definition")
	assert.True(t, r.IsShorthand("margin"))
	assert.Equal(t, []string{"margin-top", "margin-right", "margin-bottom", "margin-left"}, r.Expand("margin"))
	props := r.Properties()
	require.NotEmpty(t, props)
	assert.Equal(t, "font-size", props[0])
	assert.Equal(t, "color", props[1])
}

func TestRegistryParseLonghand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	r := DefaultRegistry()
	kvs, err := r.Parse("width", "50%")
	require.NoError(t, err)
	require.Len(t, kvs, 1)
	assert.Equal(t, css.Percentage(50), kvs[0].Value)
	kvs, err = r.Parse("border-left-width", "thick")
	require.NoError(t, err)
	assert.Equal(t, css.JustDimen(5), kvs[0].Value)
	kvs, err = r.Parse("font-family", `"Times New Roman", Georgia, serif`)
	require.NoError(t, err)
	assert.Equal(t, css.Keyword("Times New Roman, georgia, serif"), kvs[0].Value)
	kvs, err = r.Parse("COLOR", "inherit")
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{{"color", css.Inherit}}, kvs)
}

func TestRegistryParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	r := DefaultRegistry()
	_, err := r.Parse("frobnicate", "1px")
	assert.ErrorIs(t, err, ErrUnknownProperty)
	for _, c := range []struct{ key, value string }{
		{"width", "-10px"},
		{"padding-top", "auto"},
		{"display", "flexbox"},
		{"color", "12px"},
		{"font-weight", "450"},
		{"margin", "1px 2px 3px 4px 5px"},
		{"border", "1px solid red blue"},
		{"background", "url(x.png) red"},
		{"height", ""},
		{"height", " \t "},
	} {
		_, err := r.Parse(c.key, Property(c.value))
		assert.ErrorIs(t, err, ErrInvalidValue, "%s: %s", c.key, c.value)
	}
}

func TestRegistryGlobalKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	assert.True(t, Property(" Initial ").IsInitial())
	assert.True(t, Property("INHERIT").IsInherit())
	assert.False(t, Property("inherited").IsInherit())
	assert.True(t, Property("  ").IsEmpty())
	assert.False(t, NullStyle.IsInitial())
	//
	r := DefaultRegistry()
	kvs, err := r.Parse("width", " INITIAL ")
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{{"width", css.Initial}}, kvs)
	kvs, err = r.Parse("border-top", "Inherit")
	require.NoError(t, err)
	require.Len(t, kvs, 3)
	for _, kv := range kvs {
		assert.Equal(t, css.Inherit, kv.Value, kv.Key)
	}
}

func TestRegistryShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	r := DefaultRegistry()
	kvs, err := r.Parse("margin", "1px auto")
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{
		{"margin-top", css.JustDimen(1)},
		{"margin-right", css.Auto()},
		{"margin-bottom", css.JustDimen(1)},
		{"margin-left", css.Auto()},
	}, kvs)
	kvs, err = r.Parse("padding", "1px 2px 3px")
	require.NoError(t, err)
	assert.Equal(t, css.JustDimen(2), kvs[3].Value)
	kvs, err = r.Parse("border-color", "rgb(255, 0, 0) blue")
	require.NoError(t, err)
	assert.Equal(t, "border-top-color", kvs[0].Key)
	assert.Equal(t, css.RGB(255, 0, 0), kvs[0].Value)
	kvs, err = r.Parse("border-top", "solid 2px")
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{
		{"border-top-width", css.JustDimen(2)},
		{"border-top-style", css.Keyword("solid")},
		{"border-top-color", css.CurrentColor},
	}, kvs)
	kvs, err = r.Parse("border", "red dashed")
	require.NoError(t, err)
	assert.Len(t, kvs, 12)
	kvs, err = r.Parse("margin", "initial")
	require.NoError(t, err)
	require.Len(t, kvs, 4)
	assert.Equal(t, css.Initial, kvs[2].Value)
	kvs, err = r.Parse("background", "#00f")
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{{"background-color", css.RGB(0, 0, 255)}}, kvs)
}
