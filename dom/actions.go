package dom

import (
	"github.com/npillmayer/cssbox/dom/styledtree"
	"github.com/npillmayer/cssbox/tree"
	"golang.org/x/net/html"
)

// NodeIsText is a predicate to match text-nodes of a styled tree.
func NodeIsText(n *tree.Node[*styledtree.StyNode]) bool {
	sn := styledtree.Node(n)
	return sn != nil && sn.HTMLNode() != nil && sn.HTMLNode().Type == html.TextNode
}

// NodeIsElement is a predicate to match element-nodes of a styled tree.
func NodeIsElement(n *tree.Node[*styledtree.StyNode]) bool {
	sn := styledtree.Node(n)
	return sn != nil && sn.HTMLNode() != nil && sn.HTMLNode().Type == html.ElementNode
}

// Select collects all nodes below (and including) w which match a predicate,
// in document order.
func Select(w *W3CNode, predicate func(*tree.Node[*styledtree.StyNode]) bool) ([]*W3CNode, error) {
	if w == nil || w.stylednode == nil {
		return nil, tree.ErrEmptyTree
	}
	var selected []*W3CNode
	err := tree.Walk(&w.stylednode.Node, func(n *tree.Node[*styledtree.StyNode], depth int) error {
		if predicate(n) {
			selected = append(selected, NewRONode(n.Payload))
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("select: %v", err)
		return nil, err
	}
	return selected, nil
}
