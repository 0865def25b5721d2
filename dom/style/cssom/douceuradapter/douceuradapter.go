/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

CSS text is parsed with douceur, selectors are compiled and matched with
cascadia.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cssbox/dom/style"
	"github.com/npillmayer/cssbox/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'cssbox.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	origin cssom.Origin
	rules  []*Rule
}

// Parse parses CSS text into a stylesheet of the given origin.
func Parse(text string, origin cssom.Origin) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing stylesheet: %w", err)
	}
	return Wrap(sheet, origin), nil
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
//
// Selectors are compiled with cascadia. Selectors which fail to compile are
// dropped, as are rules without any valid selector. At-rules are not
// supported and will be skipped.
func Wrap(sheet *css.Stylesheet, origin cssom.Origin) *CSSStyles {
	styles := &CSSStyles{origin: origin}
	if sheet == nil {
		return styles
	}
	for _, r := range sheet.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Infof("skipping unsupported at-rule %s", r.Name)
			continue
		}
		var sels []cssom.Selector
		for _, s := range r.Selectors {
			sel, err := cascadia.Parse(s)
			if err != nil {
				tracer().Infof("dropping selector %q: %v", s, err)
				continue
			}
			sels = append(sels, selector{sel: sel, text: s})
		}
		if len(sels) == 0 {
			tracer().Infof("dropping rule %q without valid selector", r.Prelude)
			continue
		}
		styles.rules = append(styles.rules, &Rule{
			selectors:    sels,
			declarations: convertDeclarations(r.Declarations),
			order:        len(styles.rules),
		})
	}
	return styles
}

func convertDeclarations(decls []*css.Declaration) []cssom.Declaration {
	converted := make([]cssom.Declaration, 0, len(decls))
	for _, d := range decls {
		converted = append(converted, cssom.Declaration{
			Property:  strings.ToLower(strings.TrimSpace(d.Property)),
			Value:     style.Property(d.Value),
			Important: d.Important,
		})
	}
	return converted
}

// Origin returns the origin of the rules of this stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Origin() cssom.Origin {
	return sheet.origin
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.rules) == 0
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.rules))
	for i, r := range sheet.rules {
		rules[i] = r
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	selectors    []cssom.Selector
	declarations []cssom.Declaration
	order        int
}

// Selectors returns the compiled selectors of the rule's prelude.
func (r *Rule) Selectors() []cssom.Selector {
	return r.selectors
}

// Declarations returns the property declarations of the rule.
func (r *Rule) Declarations() []cssom.Declaration {
	return r.declarations
}

// SourceOrder returns the position of the rule within its stylesheet.
func (r *Rule) SourceOrder() int {
	return r.order
}

var _ cssom.Rule = &Rule{}

// selector adapts a cascadia selector to cssom.Selector.
type selector struct {
	sel  cascadia.Sel
	text string
}

func (s selector) Match(n *html.Node) bool {
	return s.sel.Match(n)
}

func (s selector) Specificity() cssom.Specificity {
	spec := s.sel.Specificity()
	return cssom.Specificity{A: int(spec[0]), B: int(spec[1]), C: int(spec[2])}
}

func (s selector) String() string {
	return s.text
}

// nodeSelector matches exactly one DOM node. It is used for the rules
// created from 'style' attributes.
type nodeSelector struct {
	node *html.Node
}

func (s nodeSelector) Match(n *html.Node) bool {
	return n == s.node
}

func (s nodeSelector) Specificity() cssom.Specificity {
	return cssom.Specificity{}
}

func (s nodeSelector) String() string {
	return fmt.Sprintf("<%s style>", s.node.Data)
}

// --- Document styles -------------------------------------------------------

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as author style sheets, in document order. Style elements
// which cannot be parsed are skipped.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	sheets := extractStyles(head)
	sheets = append(sheets, extractStyles(body)...)
	return sheets
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var sheets []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		c, err := Parse(ch.FirstChild.Data, cssom.Author)
		if err != nil {
			tracer().Infof("skipping <style> element: %v", err)
			continue
		}
		sheets = append(sheets, c)
	}
	return sheets
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}

// InlineStyles collects the 'style' attributes of all elements of a
// document into a stylesheet of origin Inline. Every rule of the result
// matches exactly one element. Attributes which cannot be parsed are
// skipped.
func InlineStyles(htmldoc *html.Node) *CSSStyles {
	styles := &CSSStyles{origin: cssom.Inline}
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if attr.Namespace != "" || attr.Key != "style" {
					continue
				}
				decls, err := parser.ParseDeclarations(terminated(attr.Val))
				if err != nil {
					tracer().Infof("skipping style attribute of <%s>: %v", n.Data, err)
					continue
				}
				styles.rules = append(styles.rules, &Rule{
					selectors:    []cssom.Selector{nodeSelector{node: n}},
					declarations: convertDeclarations(decls),
					order:        len(styles.rules),
				})
			}
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	if htmldoc != nil {
		collect(htmldoc)
	}
	return styles
}

//go:embed useragent.css
var userAgentCSS string

var (
	uaOnce   sync.Once
	uaStyles *CSSStyles
)

// terminated makes sure a declaration list ends with ';'. douceur stores
// the value of a declaration only when it sees the terminator, and it
// rejects empty declarations, so ';;' must not occur either.
func terminated(decls string) string {
	d := strings.TrimSpace(decls)
	if d == "" || strings.HasSuffix(d, ";") {
		return d
	}
	return d + ";"
}

// UserAgentStyles returns the default stylesheet of origin UserAgent.
// It is parsed once and shared; stylesheets are read-only.
func UserAgentStyles() *CSSStyles {
	uaOnce.Do(func() {
		sheet, err := Parse(userAgentCSS, cssom.UserAgent)
		if err != nil {
			tracer().Errorf("cannot parse user-agent stylesheet: %v", err)
			sheet = &CSSStyles{origin: cssom.UserAgent}
		}
		uaStyles = sheet
	})
	return uaStyles
}
