/*
Package cssom provides functionality for CSS styling.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
This package implements the cascade: given an HTML parse tree and an
ordered list of stylesheets, it determines for every document node which
declarations apply and computes the node's style.

A good explanation of styling may be found in

   https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet, Rule and Selector. A concrete implementation based on
douceur and cascadia may be found in sub-package douceuradapter.

Cascade

Declarations are ordered by

   1. importance ('!important' declarations win over all others),
   2. origin (user agent < author < inline style attributes),
   3. specificity of the matching selector,
   4. source order (stylesheet, rule, declaration).

The value of the last declaration in this order is the specified value
of a property. Properties without specified value are inherited or set
to their initial values, as defined by the property registry
(package style).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cssbox.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.cssom")
}
