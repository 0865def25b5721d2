/*
Package css provides typed CSS values.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS property values resulting from the textual nature of CSS. Raw value
text is tokenized (see Tokenize) and turned into one of a small, closed set
of value types:

    DimenT        lengths, percentages and 'auto'
    Color         RGBA colors and 'currentcolor'
    Keyword       identifiers like 'solid' or 'italic'
    Number        unitless numbers (e.g., line-height factors)
    DisplayMode   the 'display' property

All values are immutable and are passed by value, so copying a value
never aliases another node's style.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.style'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.style")
}
