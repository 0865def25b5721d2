/*
Package dom provides a read-only W3C-style view onto a styled document.

Styling and layout of HTML/CSS involves a lot of operations on different
trees. We implement the various trees on top of a general purpose tree
type (package tree), and this package wraps nodes of the styled tree into
nodes implementing the w3cdom.Node interface. Clients may use it to
inspect a document together with the computed styles of its nodes.

In a fully object oriented programming language we would subclass the
tree type for every type of tree in use (styled tree, box tree, layout
tree), but in Go we resort to composition, thus including a generic tree
node in every node (sub-)type. The downside of this approach is that we
will have to provide an adapter for every node sub-type to return the
sub-type from the generic type.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.dom")
}
