/*
Package tree implements an all-purpose tree type.

Styling and layout of HTML/CSS involves a lot of operations on different trees:
the styled tree, the box tree and the layout tree. We implement all of them
on top of a generic node type, which every concrete node (sub-)type embeds.
Go has no subclassing, so every concrete node stores a reference to itself
as the node's payload. This way a generic node may always be turned back
into the concrete node.

Ownership is strictly top-down: a parent owns its children, while the
back-reference from a child to its parent is a non-owning lookup only.

Trees are built and traversed from a single goroutine. There is no locking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.tree'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.tree")
}
