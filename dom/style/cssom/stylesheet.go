package cssom

import (
	"github.com/npillmayer/cssbox/dom/style"
	"golang.org/x/net/html"
)

// Origin is the origin of a stylesheet. Origins are ordered by weight:
// declarations of a later origin win over those of an earlier one, within
// the same importance tier.
type Origin uint8

// Stylesheet origins.
const (
	UserAgent Origin = iota // default styles of the rendering engine
	Author                  // styles from the document
	Inline                  // 'style' attributes of elements
)

func (o Origin) String() string {
	switch o {
	case UserAgent:
		return "user-agent"
	case Author:
		return "author"
	case Inline:
		return "inline"
	}
	return "unknown-origin"
}

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of the styled node tree, we introduce an interface
// for CSS stylesheets. Clients for the styling engine will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	Origin() Origin // origin of all rules in this stylesheet
	Empty() bool    // does this stylesheet contain any rules?
	Rules() []Rule  // all the rules of a stylesheet, in source order
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selectors() []Selector       // the selectors of the rule's prelude
	Declarations() []Declaration // declarations in source order
	SourceOrder() int            // position within the stylesheet, unique and monotonic
}

// Declaration is a single property declaration of a rule, e.g.
//
//     margin-top: 15px !important
type Declaration struct {
	Property  string         // property key, e.g. "margin-top"
	Value     style.Property // raw property value, e.g. "15px"
	Important bool           // is property marked as important?
}

// Selector is an opaque compiled selector.
type Selector interface {
	Match(n *html.Node) bool  // does the selector match an element?
	Specificity() Specificity // specificity of the selector
	String() string           // the selector's source text
}
