/*
Package style implements the CSS property registry and computed styles.

The registry is an immutable table of the properties we support. For every
property it knows the initial value, whether the property is inherited by
default, and how to parse raw declaration values into typed values
(see package css). Shorthand properties like 'margin' or 'border' are
expanded into their longhands when parsed.

A ComputedStyle holds exactly one typed value per registered property. It
is created once per document node by the cascade and never changes
afterwards.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.style'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.style")
}
