/*
Package layout computes the geometry of a box tree.

Layout follows the CSS 2.1 visual formatting model for block formatting
contexts in normal flow. Widths are computed top-down: a block's width is
known before its children are laid out. Heights are computed bottom-up:
a block with 'height: auto' is as high as its children need.

Inline-level content is laid out on a single line box, left to right,
without line breaking.

All coordinates are absolute, in CSS pixels, with the viewport's top left
corner at (0,0).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.layout'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.layout")
}
