package boxtree

import (
	"fmt"

	"github.com/npillmayer/cssbox/dom/style"
	"github.com/npillmayer/cssbox/tree"
	"golang.org/x/net/html"
)

// Kind is the type of a box.
type Kind uint8

// Box kinds. The set is closed.
const (
	BlockBox       Kind = iota // block-level box of an element
	InlineBox                  // inline-level box of an element
	AnonymousBlock             // block wrapping a run of inline-level boxes
	TextRun                    // text content, always a leaf
)

func (k Kind) String() string {
	switch k {
	case BlockBox:
		return "block"
	case InlineBox:
		return "inline"
	case AnonymousBlock:
		return "anonymous"
	case TextRun:
		return "text"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsBlockLevel is true for block boxes and anonymous blocks.
func (k Kind) IsBlockLevel() bool {
	return k == BlockBox || k == AnonymousBlock
}

// Box is a node of the box tree.
type Box struct {
	tree.Node[*Box] // we build on top of general purpose tree
	Kind            Kind
	domNode         *html.Node
	styles          *style.ComputedStyle
	text            string
	collapsible     bool // white space only text run
}

func newBox(kind Kind, n *html.Node, cs *style.ComputedStyle) *Box {
	b := &Box{Kind: kind, domNode: n, styles: cs}
	b.Payload = b // Payload will always reference the box itself
	return b
}

// NewAnonymousBlock creates an anonymous block box. Anonymous boxes have no
// DOM node and no style.
func NewAnonymousBlock() *Box {
	return newBox(AnonymousBlock, nil, nil)
}

// NewTextRun creates a text run for a DOM text node.
func NewTextRun(n *html.Node, text string) *Box {
	b := newBox(TextRun, n, nil)
	b.text = text
	return b
}

// NewElementBox creates a block or inline box for an element.
func NewElementBox(kind Kind, n *html.Node, cs *style.ComputedStyle) *Box {
	return newBox(kind, n, cs)
}

// DOMNode returns the DOM node which generated this box, or nil for
// anonymous boxes.
func (b *Box) DOMNode() *html.Node {
	return b.domNode
}

// Styles returns the computed style of the box. Anonymous boxes and text
// runs have no style of their own.
func (b *Box) Styles() *style.ComputedStyle {
	return b.styles
}

// Text returns the (white space collapsed) text of a text run.
func (b *Box) Text() string {
	return b.text
}

// ParentBox returns the parent box, or nil for the root.
func (b *Box) ParentBox() *Box {
	if p := b.Parent(); p != nil {
		return p.Payload
	}
	return nil
}

// ChildBoxes returns the children of a box.
func (b *Box) ChildBoxes() []*Box {
	chs := b.Children(true)
	boxes := make([]*Box, len(chs))
	for i, ch := range chs {
		boxes[i] = ch.Payload
	}
	return boxes
}

// AddChildBox appends a child box.
func (b *Box) AddChildBox(ch *Box) *Box {
	b.AddChild(&ch.Node)
	return b
}

// NearestStyles returns the computed style of the box or, for boxes without
// style, of the nearest ancestor box which has one.
func (b *Box) NearestStyles() *style.ComputedStyle {
	for box := b; box != nil; box = box.ParentBox() {
		if box.styles != nil {
			return box.styles
		}
	}
	return nil
}

func (b *Box) String() string {
	if b == nil {
		return "<box:nil>"
	}
	switch b.Kind {
	case TextRun:
		return fmt.Sprintf("<text %q>", b.text)
	case AnonymousBlock:
		return "<anon>"
	}
	name := "?"
	if b.domNode != nil {
		name = b.domNode.Data
	}
	return fmt.Sprintf("<%s %s>", b.Kind, name)
}
