package cssbox

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/cssbox/dom"
	"github.com/npillmayer/cssbox/dom/style"
	"github.com/npillmayer/cssbox/dom/style/cssom"
	"github.com/npillmayer/cssbox/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cssbox/dom/styledtree"
	"github.com/npillmayer/cssbox/frame/boxtree"
	"github.com/npillmayer/cssbox/frame/displaylist"
	"github.com/npillmayer/cssbox/frame/layout"
	"github.com/npillmayer/cssbox/frame/textmetrics"
	"golang.org/x/net/html"
)

// ErrNoRootElement is returned if a document has no root element, or if
// the root element does not generate a box.
var ErrNoRootElement = errors.New("document has no root element to lay out")

// ErrInvalidOption is returned for invalid pipeline options.
var ErrInvalidOption = errors.New("invalid option")

// Pipeline runs styling, box tree construction and layout of documents.
// A pipeline holds configuration only and may be re-used for any number
// of documents.
type Pipeline struct {
	viewport    layout.Viewport
	measurer    textmetrics.Measurer
	registry    *style.Registry
	noUserAgent bool
	noInline    bool
}

// NewPipeline creates a pipeline, configured by options.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		viewport: layout.Viewport{Width: 800, Height: 600},
		measurer: textmetrics.Default(),
		registry: style.DefaultRegistry(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Result holds the trees produced by a pipeline run.
type Result struct {
	Styled      *styledtree.StyNode // styled tree, one node per element and text node
	Boxes       *boxtree.Box        // box tree
	Layout      *layout.Box         // layout tree with final geometry
	DisplayList displaylist.List    // paint commands for the layout tree
}

// DOM returns a W3C view onto the styled document.
func (r *Result) DOM() *dom.W3CNode {
	if r == nil {
		return nil
	}
	return dom.NewRONode(r.Styled)
}

// Stylesheets collects the stylesheets for a document in cascade order:
// the user agent stylesheet, the contents of <style> elements and the
// stylesheet of 'style' attributes.
func (p *Pipeline) Stylesheets(doc *html.Node) []cssom.StyleSheet {
	var sheets []cssom.StyleSheet
	if !p.noUserAgent {
		sheets = append(sheets, douceuradapter.UserAgentStyles())
	}
	for _, s := range douceuradapter.ExtractStyleElements(doc) {
		sheets = append(sheets, s)
	}
	if !p.noInline {
		if inline := douceuradapter.InlineStyles(doc); !inline.Empty() {
			sheets = append(sheets, inline)
		}
	}
	tracer().Debugf("collected %d stylesheets", len(sheets))
	return sheets
}

// Run styles doc with sheets, builds the box tree and lays it out. It
// returns either a complete result or an error, never a partial result.
func (p *Pipeline) Run(doc *html.Node, sheets []cssom.StyleSheet) (*Result, error) {
	root := rootElement(doc)
	if root == nil {
		tracer().Errorf("no root element")
		return nil, ErrNoRootElement
	}
	resolver := cssom.NewResolver(p.registry, sheets)
	styled, err := resolver.StyleDocument(root)
	if err != nil {
		return nil, fmt.Errorf("styling: %w", err)
	}
	lookup, err := styledtree.NewLookup(styled)
	if err != nil {
		return nil, fmt.Errorf("styling: %w", err)
	}
	mbox, err := boxtree.Build(root, lookup)
	if err != nil {
		return nil, fmt.Errorf("box tree: %w", err)
	}
	boxes, ok := mbox.Get()
	if !ok {
		tracer().Errorf("root element <%s> generates no box", root.Data)
		return nil, fmt.Errorf("<%s> is not displayed: %w", root.Data, ErrNoRootElement)
	}
	tracer().Debugf("box tree:\n%s", boxtree.Dump(boxes))
	laidOut, err := layout.Layout(boxes, p.viewport, p.measurer)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return &Result{
		Styled:      styled,
		Boxes:       boxes,
		Layout:      laidOut,
		DisplayList: displaylist.Build(laidOut),
	}, nil
}

// RunHTML parses an HTML document, collects its stylesheets and runs the
// pipeline.
func (p *Pipeline) RunHTML(r io.Reader) (*Result, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return p.Run(doc, p.Stylesheets(doc))
}

// Render styles and lays out a document with a given list of stylesheets.
// No stylesheets are added; clients wanting default styles include
// douceuradapter.UserAgentStyles() themselves.
func Render(doc *html.Node, sheets []cssom.StyleSheet, opts ...Option) (*layout.Box, error) {
	p, err := NewPipeline(opts...)
	if err != nil {
		return nil, err
	}
	res, err := p.Run(doc, sheets)
	if err != nil {
		return nil, err
	}
	return res.Layout, nil
}

// RenderHTML parses an HTML document and lays it out, using the user agent
// stylesheet, <style> elements and 'style' attributes.
func RenderHTML(r io.Reader, opts ...Option) (*layout.Box, error) {
	p, err := NewPipeline(opts...)
	if err != nil {
		return nil, err
	}
	res, err := p.RunHTML(r)
	if err != nil {
		return nil, err
	}
	return res.Layout, nil
}

func rootElement(doc *html.Node) *html.Node {
	if doc == nil {
		return nil
	}
	if doc.Type == html.ElementNode {
		return doc
	}
	if doc.Type != html.DocumentNode {
		return nil
	}
	for ch := doc.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			return ch
		}
	}
	return nil
}
