package styledtree

import (
	"fmt"

	"github.com/npillmayer/cssbox/dom/style"
	"github.com/npillmayer/cssbox/tree"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	htmlNode            *html.Node
	computedStyles      *style.ComputedStyle
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(html *html.Node, styles *style.ComputedStyle) *StyNode {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.htmlNode = html
	sn.computedStyles = styles
	return sn
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// Styles returns the computed style of a styled node.
func (sn *StyNode) Styles() *style.ComputedStyle {
	return sn.computedStyles
}

// ParentNode returns the styled parent node, or nil for the root.
func (sn *StyNode) ParentNode() *StyNode {
	return Node(sn.Parent())
}

// AddChildNode appends a styled child node.
func (sn *StyNode) AddChildNode(ch *StyNode) *StyNode {
	sn.AddChild(&ch.Node)
	return sn
}

// ChildNodes returns all styled children.
func (sn *StyNode) ChildNodes() []*StyNode {
	chs := sn.Children(true)
	nodes := make([]*StyNode, len(chs))
	for i, ch := range chs {
		nodes[i] = ch.Payload
	}
	return nodes
}

func (sn *StyNode) String() string {
	if sn == nil || sn.htmlNode == nil {
		return "<styled:nil>"
	}
	if sn.htmlNode.Type == html.TextNode {
		return fmt.Sprintf("<styled:#text %q>", abbrev(sn.htmlNode.Data, 16))
	}
	return fmt.Sprintf("<styled:%s>", sn.htmlNode.Data)
}

func abbrev(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// --- Style lookup ----------------------------------------------------------

// Lookup maps DOM nodes to their computed styles. It is built from a styled
// tree and used by later pipeline stages, which operate on DOM nodes.
type Lookup map[*html.Node]*style.ComputedStyle

// StyleOf returns the computed style for a DOM node.
func (l Lookup) StyleOf(n *html.Node) (*style.ComputedStyle, bool) {
	cs, ok := l[n]
	return cs, ok && cs != nil
}

// NewLookup collects the computed styles of all nodes in a styled tree.
func NewLookup(root *StyNode) (Lookup, error) {
	if root == nil {
		return nil, tree.ErrEmptyTree
	}
	l := make(Lookup)
	err := tree.Walk(&root.Node, func(n *tree.Node[*StyNode], depth int) error {
		sn := n.Payload
		l[sn.htmlNode] = sn.computedStyles
		return nil
	})
	if err != nil {
		tracer().Errorf("cannot build style lookup: %v", err)
		return nil, err
	}
	return l, nil
}
