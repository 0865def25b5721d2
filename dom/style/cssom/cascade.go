package cssom

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/cssbox/dom/style"
	"github.com/npillmayer/cssbox/dom/style/css"
	"github.com/npillmayer/cssbox/dom/styledtree"
	"github.com/npillmayer/cssbox/tree"
	"golang.org/x/net/html"
)

// ErrNotAnElement is returned if styling is started at a node which is
// neither an element nor a document containing an element.
var ErrNotAnElement = errors.New("styling root is not an element")

// Resolver computes styles for document nodes by applying the cascade.
// Stylesheets are pre-processed once, when the resolver is created:
// declarations with unknown properties or invalid values are dropped
// and shorthands are expanded into longhands.
//
// A resolver is read-only after creation. Resolving styles for the same
// node and parent style will always produce the same computed style.
type Resolver struct {
	registry *style.Registry
	rules    []compiledRule
}

type compiledRule struct {
	selectors []Selector
	origin    Origin
	sheet     int // position of the stylesheet in the list
	order     int // source order of the rule within its stylesheet
	decls     []compiledDecl
}

type compiledDecl struct {
	index     int // position within the rule
	important bool
	values    []style.KeyValue // more than one for shorthands
}

// NewResolver creates a resolver for a list of stylesheets. The order of
// sheets is significant: it is the source order of stylesheets for the
// cascade. If registry is nil, style.DefaultRegistry() is used.
func NewResolver(registry *style.Registry, sheets []StyleSheet) *Resolver {
	if registry == nil {
		registry = style.DefaultRegistry()
	}
	r := &Resolver{registry: registry}
	for i, sheet := range sheets {
		if sheet == nil || sheet.Empty() {
			continue
		}
		for _, rule := range sheet.Rules() {
			cr := compiledRule{
				selectors: rule.Selectors(),
				origin:    sheet.Origin(),
				sheet:     i,
				order:     rule.SourceOrder(),
			}
			for j, decl := range rule.Declarations() {
				kvs, err := registry.Parse(decl.Property, decl.Value)
				if err != nil {
					if errors.Is(err, style.ErrUnknownProperty) {
						tracer().Debugf("ignoring declaration: %v", err)
					} else {
						tracer().Infof("dropping declaration: %v", err)
					}
					continue
				}
				cr.decls = append(cr.decls, compiledDecl{index: j, important: decl.Important, values: kvs})
			}
			if len(cr.selectors) == 0 || len(cr.decls) == 0 {
				continue
			}
			r.rules = append(r.rules, cr)
		}
	}
	tracer().Debugf("resolver set up with %d rules", len(r.rules))
	return r
}

// Registry returns the property registry of the resolver.
func (r *Resolver) Registry() *style.Registry {
	return r.registry
}

// Resolve computes the style of a DOM node, given the computed style of its
// parent (nil for the root).
//
// Rules from all stylesheets whose selectors match node contribute their
// declarations. These are sorted by precedence (see PrecedenceKey) and
// applied in order, the last one winning. Properties without a winning
// declaration are inherited or set to their initial values. Text nodes
// match no rules.
func (r *Resolver) Resolve(node *html.Node, parent *style.ComputedStyle) *style.ComputedStyle {
	return r.registry.Compute(r.Specified(node), parent)
}

type matchedDecl struct {
	key   PrecedenceKey
	value style.KeyValue
}

// Specified returns the winning declared values for a node, i.e. the result
// of the cascade before inheritance and value computation.
func (r *Resolver) Specified(node *html.Node) map[string]css.Value {
	if node == nil || node.Type != html.ElementNode {
		return map[string]css.Value{}
	}
	var decls []matchedDecl
	for _, rule := range r.rules {
		ok, spec := MatchWithSpecificity(rule.selectors, node)
		if !ok {
			continue
		}
		for _, d := range rule.decls {
			key := PrecedenceKey{
				Important:   d.important,
				Origin:      rule.origin,
				Specificity: spec,
				Sheet:       rule.sheet,
				Rule:        rule.order,
				Decl:        d.index,
			}
			for _, kv := range d.values {
				decls = append(decls, matchedDecl{key: key, value: kv})
			}
		}
	}
	sort.SliceStable(decls, func(i, j int) bool {
		return decls[i].key.Less(decls[j].key)
	})
	specified := make(map[string]css.Value, len(decls))
	for _, d := range decls {
		specified[d.value.Key] = d.value.Value
	}
	return specified
}

// StyleDocument creates a styled tree for a DOM tree. If root is a document
// node, styling starts at its first element child. Every element and text
// node gets a styled node; comments and other nodes are skipped.
//
// Parents are styled before their children. A DOM node encountered twice
// aborts styling with tree.ErrCycle.
func (r *Resolver) StyleDocument(root *html.Node) (*styledtree.StyNode, error) {
	if root == nil {
		return nil, tree.ErrEmptyTree
	}
	if root.Type == html.DocumentNode {
		ch := root.FirstChild
		for ch != nil && ch.Type != html.ElementNode {
			ch = ch.NextSibling
		}
		root = ch
	}
	if root == nil || root.Type != html.ElementNode {
		return nil, ErrNotAnElement
	}
	guard := tree.NewGuard[*html.Node]()
	guard.Visit(root)
	return r.styleNode(root, nil, guard)
}

func (r *Resolver) styleNode(n *html.Node, parent *style.ComputedStyle, guard *tree.Guard[*html.Node]) (*styledtree.StyNode, error) {
	cs := r.Resolve(n, parent)
	sn := styledtree.NewNodeForHTMLNode(n, cs)
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := guard.Visit(ch); err != nil {
			tracer().Errorf("DOM node <%s> reached twice while styling", ch.Data)
			return nil, fmt.Errorf("styling <%s>: %w", n.Data, err)
		}
		if ch.Type != html.ElementNode && ch.Type != html.TextNode {
			continue
		}
		chsn, err := r.styleNode(ch, cs, guard)
		if err != nil {
			return nil, err
		}
		sn.AddChildNode(chsn)
	}
	return sn, nil
}
