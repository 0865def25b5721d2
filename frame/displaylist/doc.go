/*
Package displaylist turns a layout tree into a list of paint commands.

A display list is what an external painter needs to render a document:
backgrounds and borders as solid rectangles, and text runs with their
position, color and font. Commands are listed in painting order, i.e. a
parent's background and borders come before its children.

Rasterization is not a concern of this package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package displaylist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.layout'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.layout")
}
