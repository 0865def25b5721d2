/*
Package styledtree is a straightforward default implementation of a styled document tree.

Overview

The cascade (package cssom) creates a styled tree from an HTML parse tree
and a list of stylesheets. Every element and text node of the document
gets a node in the styled tree, carrying the node's computed style.
Nodes not rendered at all (comments, doctypes) are left out.

The styled tree is a snapshot: it is built fresh for every styling run
and never updated afterwards.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.dom")
}
