package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cssbox/dom/style"
	"github.com/npillmayer/cssbox/dom/styledtree"
	"github.com/npillmayer/cssbox/dom/w3cdom"
	"github.com/npillmayer/cssbox/tree"
	"golang.org/x/net/html"
)

// ErrNotAStyledNode is returned if a tree node does not carry a styled node.
var ErrNotAStyledNode = errors.New("tree node is not a styled node")

// W3CNode is a read-only view onto a node of the styled tree. It implements
// w3cdom.Node.
type W3CNode struct {
	stylednode *styledtree.StyNode
}

var _ w3cdom.Node = &W3CNode{}

// NewRONode wraps a styled node into a read-only W3C node.
func NewRONode(sn *styledtree.StyNode) *W3CNode {
	if sn == nil {
		return nil
	}
	return &W3CNode{stylednode: sn}
}

// NodeFromTreeNode returns the W3C node for a generic tree node of the
// styled tree.
func NodeFromTreeNode(tn *tree.Node[*styledtree.StyNode]) (*W3CNode, error) {
	sn := styledtree.Node(tn)
	if sn == nil {
		return nil, ErrNotAStyledNode
	}
	return NewRONode(sn), nil
}

// HTMLNode returns the underlying HTML node.
func (w *W3CNode) HTMLNode() *html.Node {
	if w == nil || w.stylednode == nil {
		return nil
	}
	return w.stylednode.HTMLNode()
}

// StyledNode returns the underlying styled node.
func (w *W3CNode) StyledNode() *styledtree.StyNode {
	if w == nil {
		return nil
	}
	return w.stylednode
}

// IsRoot returns true if w is the root of its styled tree.
func (w *W3CNode) IsRoot() bool {
	return w != nil && w.stylednode != nil && w.stylednode.ParentNode() == nil
}

// NodeType returns the type of the underlying HTML node.
func (w *W3CNode) NodeType() html.NodeType {
	if h := w.HTMLNode(); h != nil {
		return h.Type
	}
	return html.ErrorNode
}

// NodeName returns the tag name for elements and "#text", "#document" or
// "#comment" for other node types.
func (w *W3CNode) NodeName() string {
	h := w.HTMLNode()
	if h == nil {
		return ""
	}
	switch h.Type {
	case html.ElementNode:
		return h.Data
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	}
	return "<undefined>"
}

// NodeValue returns the text for text and comment nodes, "" otherwise.
func (w *W3CNode) NodeValue() string {
	h := w.HTMLNode()
	if h == nil || (h.Type != html.TextNode && h.Type != html.CommentNode) {
		return ""
	}
	return h.Data
}

// HasAttributes checks for the existence of attributes.
func (w *W3CNode) HasAttributes() bool {
	h := w.HTMLNode()
	return h != nil && len(h.Attr) > 0
}

// ParentNode returns the parent node, or nil for the root.
func (w *W3CNode) ParentNode() w3cdom.Node {
	if w == nil || w.stylednode == nil {
		return nil
	}
	if p := w.stylednode.ParentNode(); p != nil {
		return NewRONode(p)
	}
	return nil
}

// HasChildNodes checks for the existence of sub-nodes.
func (w *W3CNode) HasChildNodes() bool {
	return w != nil && w.stylednode != nil && w.stylednode.ChildCount() > 0
}

// ChildNodes returns all child nodes.
func (w *W3CNode) ChildNodes() w3cdom.NodeList {
	if w == nil || w.stylednode == nil {
		return &nodeList{}
	}
	chs := w.stylednode.ChildNodes()
	l := &nodeList{nodes: make([]*W3CNode, len(chs))}
	for i, ch := range chs {
		l.nodes[i] = NewRONode(ch)
	}
	return l
}

// Children returns the element child nodes.
func (w *W3CNode) Children() w3cdom.NodeList {
	l := &nodeList{}
	if w == nil || w.stylednode == nil {
		return l
	}
	for _, ch := range w.stylednode.ChildNodes() {
		if NodeIsElement(&ch.Node) {
			l.nodes = append(l.nodes, NewRONode(ch))
		}
	}
	return l
}

// FirstChild returns the first child node, or nil.
func (w *W3CNode) FirstChild() w3cdom.Node {
	if w == nil || w.stylednode == nil {
		return nil
	}
	if ch, ok := w.stylednode.Child(0); ok && ch != nil {
		return NewRONode(ch.Payload)
	}
	return nil
}

// NextSibling returns the next sibling, or nil for the last child.
func (w *W3CNode) NextSibling() w3cdom.Node {
	if w == nil || w.stylednode == nil {
		return nil
	}
	p := w.stylednode.Parent()
	if p == nil {
		return nil
	}
	i := p.IndexOfChild(&w.stylednode.Node)
	if i < 0 {
		return nil
	}
	if ch, ok := p.Child(i + 1); ok && ch != nil {
		return NewRONode(ch.Payload)
	}
	return nil
}

// Attributes returns the attributes of an element.
func (w *W3CNode) Attributes() w3cdom.NamedNodeMap {
	h := w.HTMLNode()
	if h == nil {
		return attributes(nil)
	}
	return attributes(h.Attr)
}

// ComputedStyles returns the computed styles of the node.
func (w *W3CNode) ComputedStyles() w3cdom.ComputedStyles {
	if w == nil || w.stylednode == nil {
		return computedStyles{}
	}
	return computedStyles{cs: w.stylednode.Styles()}
}

// TextContent returns the text of this node and all its descendents.
func (w *W3CNode) TextContent() (string, error) {
	texts, err := Select(w, NodeIsText)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, t := range texts {
		sb.WriteString(t.NodeValue())
	}
	return sb.String(), nil
}

func (w *W3CNode) String() string {
	if w == nil {
		return "<DOM nil>"
	}
	return fmt.Sprintf("<DOM %s>", w.NodeName())
}

// --- Node lists and attributes ---------------------------------------------

type nodeList struct {
	nodes []*W3CNode
}

func (l *nodeList) Length() int {
	return len(l.nodes)
}

func (l *nodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(l.nodes) {
		return nil
	}
	return l.nodes[i]
}

func (l *nodeList) String() string {
	names := make([]string, len(l.nodes))
	for i, n := range l.nodes {
		names[i] = n.NodeName()
	}
	return "[" + strings.Join(names, " ") + "]"
}

type attr struct {
	a html.Attribute
}

func (a attr) Namespace() string { return a.a.Namespace }
func (a attr) Key() string { return a.a.Key }
func (a attr) Value() string { return a.a.Val }

type attributes []html.Attribute

func (as attributes) Length() int {
	return len(as)
}

func (as attributes) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(as) {
		return nil
	}
	return attr{as[i]}
}

func (as attributes) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range as {
		if a.Key == key {
			return attr{a}
		}
	}
	return nil
}

type computedStyles struct {
	cs *style.ComputedStyle
}

func (c computedStyles) GetPropertyValue(key string) string {
	return c.cs.Keyword(key)
}

func (c computedStyles) Styles() *style.ComputedStyle {
	return c.cs
}
