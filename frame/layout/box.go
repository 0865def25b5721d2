package layout

import (
	"fmt"

	"github.com/npillmayer/cssbox/dom/style"
	"github.com/npillmayer/cssbox/frame/boxtree"
	"github.com/npillmayer/cssbox/tree"
	tp "github.com/xlab/treeprint"
)

// Box is a node of the layout tree. It carries the final geometry of a box
// of the box tree.
type Box struct {
	tree.Node[*Box] // we build on top of general purpose tree
	Dimensions
	source *boxtree.Box
}

func newBox(source *boxtree.Box) *Box {
	b := &Box{source: source}
	b.Payload = b // Payload will always reference the box itself
	return b
}

// Source returns the box tree node this layout box has been created for.
func (b *Box) Source() *boxtree.Box {
	return b.source
}

// Kind returns the kind of the source box.
func (b *Box) Kind() boxtree.Kind {
	return b.source.Kind
}

// Styles returns the computed style of the source box; nil for anonymous
// blocks and text runs.
func (b *Box) Styles() *style.ComputedStyle {
	return b.source.Styles()
}

// ChildBoxes returns the child layout boxes.
func (b *Box) ChildBoxes() []*Box {
	chs := b.Children(true)
	boxes := make([]*Box, len(chs))
	for i, ch := range chs {
		boxes[i] = ch.Payload
	}
	return boxes
}

func (b *Box) String() string {
	if b == nil {
		return "<layout:nil>"
	}
	return fmt.Sprintf("%v %v", b.source, b.Content)
}

// Dump returns a printable representation of a layout tree, listing the
// content and margin box of every box.
func Dump(root *Box) string {
	if root == nil {
		return "<empty layout tree>\n"
	}
	printer := tp.New()
	dumpBox(printer, root)
	return printer.String()
}

func dumpBox(printer tp.Tree, b *Box) {
	label := fmt.Sprintf("%v content=%v margin=%v", b.source, b.Content, b.MarginBox())
	chs := b.ChildBoxes()
	if len(chs) == 0 {
		printer.AddNode(label)
		return
	}
	branch := printer.AddBranch(label)
	for _, ch := range chs {
		dumpBox(branch, ch)
	}
}
