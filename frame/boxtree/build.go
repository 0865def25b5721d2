package boxtree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cssbox/dom/style"
	"github.com/npillmayer/cssbox/frame/textmetrics"
	"github.com/npillmayer/cssbox/maybe"
	"github.com/npillmayer/cssbox/tree"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// ErrMissingStyle is returned if an element to be displayed has no computed
// style. This is a fatal error: styling has to precede box generation.
var ErrMissingStyle = errors.New("element has no computed style")

// StyleLookup provides the computed styles for DOM nodes
// (see styledtree.Lookup).
type StyleLookup interface {
	StyleOf(n *html.Node) (*style.ComputedStyle, bool)
}

// Build creates the box tree for a DOM (sub-)tree. If node is a document
// node, box generation starts at its first element child.
//
// Build returns Nothing if node does not generate a box, e.g. for elements
// with 'display: none'. Errors are fatal: a missing style for an element
// results in ErrMissingStyle, a DOM node encountered twice in tree.ErrCycle.
func Build(node *html.Node, lookup StyleLookup) (maybe.Maybe[*Box], error) {
	if node != nil && node.Type == html.DocumentNode {
		for ch := node.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.ElementNode {
				node = ch
				break
			}
		}
	}
	guard := tree.NewGuard[*html.Node]()
	return build(node, lookup, guard)
}

func build(n *html.Node, lookup StyleLookup, guard *tree.Guard[*html.Node]) (maybe.Maybe[*Box], error) {
	if n == nil {
		return maybe.Nothing[*Box](), nil
	}
	if err := guard.Visit(n); err != nil {
		tracer().Errorf("DOM node <%s> reached twice during box generation", n.Data)
		return maybe.Nothing[*Box](), fmt.Errorf("box for <%s>: %w", n.Data, err)
	}
	switch n.Type {
	case html.TextNode:
		return textRun(n, lookup), nil
	case html.ElementNode:
	default:
		return maybe.Nothing[*Box](), nil
	}
	cs, ok := lookup.StyleOf(n)
	if !ok {
		tracer().Errorf("no style for element <%s>", n.Data)
		return maybe.Nothing[*Box](), fmt.Errorf("box for <%s>: %w", n.Data, ErrMissingStyle)
	}
	display := cs.Display()
	if display.IsNone() {
		tracer().Debugf("<%s> has display: none, skipping subtree", n.Data)
		return maybe.Nothing[*Box](), nil
	}
	kind := InlineBox
	if display.IsBlockLevel() {
		kind = BlockBox
	}
	box := NewElementBox(kind, n, cs)
	var children []*Box
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		m, err := build(ch, lookup, guard)
		if err != nil {
			return maybe.Nothing[*Box](), err
		}
		if b, ok := m.Get(); ok {
			children = append(children, b)
		}
	}
	children = dropCollapsibleSpaces(children)
	if kind == BlockBox {
		children = wrapInlineRuns(children)
	}
	for _, ch := range children {
		box.AddChildBox(ch)
	}
	return maybe.Just(box), nil
}

// textRun creates a text run for a text node. Unless white space is to be
// preserved, it is collapsed. White space only text collapses to a single
// space; the parent decides whether to keep it (see dropCollapsibleSpaces).
func textRun(n *html.Node, lookup StyleLookup) maybe.Maybe[*Box] {
	text := n.Data
	preserve := false
	if cs, ok := lookup.StyleOf(n); ok {
		switch cs.Keyword("white-space") {
		case "pre", "pre-wrap":
			preserve = true
		}
	}
	if !preserve {
		if strings.TrimSpace(text) == "" {
			if text == "" {
				return maybe.Nothing[*Box]()
			}
			b := NewTextRun(n, " ")
			b.collapsible = true
			return maybe.Just(b)
		}
		text = textmetrics.CollapseWhiteSpace(text)
	}
	if text == "" {
		return maybe.Nothing[*Box]()
	}
	return maybe.Just(NewTextRun(n, text))
}

// dropCollapsibleSpaces removes text runs of collapsed white space, unless
// they separate two inline-level boxes. Spaces at the start or end of a
// container, next to block-level boxes, or next to text already ending or
// starting with a space go away.
func dropCollapsibleSpaces(boxes []*Box) []*Box {
	kept := boxes[:0:0]
	for i, b := range boxes {
		if !b.collapsible {
			kept = append(kept, b)
			continue
		}
		if len(kept) == 0 || i+1 == len(boxes) {
			continue
		}
		prev, next := kept[len(kept)-1], boxes[i+1]
		if !isInlineLevel(prev) || !isInlineLevel(next) || next.collapsible {
			continue
		}
		if prev.Kind == TextRun && strings.HasSuffix(prev.text, " ") {
			continue
		}
		if next.Kind == TextRun && strings.HasPrefix(next.text, " ") {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

func isInlineLevel(b *Box) bool {
	return !b.Kind.IsBlockLevel()
}

// wrapInlineRuns wraps every maximal run of inline-level boxes into an
// anonymous block, if boxes contains block-level boxes as well. Otherwise
// boxes is returned unchanged.
func wrapInlineRuns(boxes []*Box) []*Box {
	blocks, inlines := 0, 0
	for _, b := range boxes {
		if isInlineLevel(b) {
			inlines++
		} else {
			blocks++
		}
	}
	if blocks == 0 || inlines == 0 {
		return boxes
	}
	wrapped := make([]*Box, 0, blocks+inlines)
	var anon *Box
	for _, b := range boxes {
		if !isInlineLevel(b) {
			anon = nil
			wrapped = append(wrapped, b)
			continue
		}
		if anon == nil {
			anon = NewAnonymousBlock()
			wrapped = append(wrapped, anon)
		}
		anon.AddChildBox(b)
	}
	return wrapped
}

// --- Debugging -------------------------------------------------------------

// Dump returns a printable representation of a box tree.
func Dump(root *Box) string {
	if root == nil {
		return "<empty box tree>\n"
	}
	printer := tp.New()
	dumpBox(printer, root)
	return printer.String()
}

func dumpBox(printer tp.Tree, b *Box) {
	chs := b.ChildBoxes()
	if len(chs) == 0 {
		printer.AddNode(b.String())
		return
	}
	branch := printer.AddBranch(b.String())
	for _, ch := range chs {
		dumpBox(branch, ch)
	}
}
