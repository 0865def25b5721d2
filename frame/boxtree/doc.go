/*
Package boxtree builds the box tree from a styled document.

Every element which is displayed generates a box: a block box for
block-level elements and an inline box otherwise. Text generates text runs.
Elements with 'display: none' generate no box at all, and neither do
their descendents.

Block containers must hold either block-level children only or
inline-level children only. Where a block box has children of both kinds,
every maximal run of inline-level children is wrapped into an anonymous
block box (CSS 2.1, section 9.2.1.1). Inline boxes are never regrouped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.boxtree'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.boxtree")
}
