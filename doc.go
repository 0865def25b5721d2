/*
Package cssbox is the styling and layout core of a browser engine.

Given a parsed HTML document and a list of stylesheets, cssbox resolves
the computed style of every node (the cascade), builds a box tree which
reflects the block and inline structure of the document, and computes the
position and size of every box. The result is a layout tree, ready to be
handed over to a painter, together with a display list of backgrounds,
borders and text.

A typical call is

    root, err := cssbox.RenderHTML(strings.NewReader(htmltext),
        cssbox.WithViewport(1024, 768))

Clients which want to inspect the intermediate trees (styled tree, box
tree) use a Pipeline.

Every run of the pipeline builds fresh trees. Stylesheets, the DOM and the
property registry are read-only inputs, and identical inputs always result
in identical layout trees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssbox

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox")
}
