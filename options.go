package cssbox

import (
	"fmt"

	"github.com/npillmayer/cssbox/dom/style"
	"github.com/npillmayer/cssbox/frame/layout"
	"github.com/npillmayer/cssbox/frame/textmetrics"
)

// Option is a functional option for configuring a Pipeline.
type Option func(*Pipeline) error

// WithViewport sets the size of the viewport, i.e. the initial containing
// block. Default is 800×600. A height of 0 denotes an unknown viewport
// height; percentage heights of top level boxes will then resolve to 0.
func WithViewport(width, height float64) Option {
	return func(p *Pipeline) error {
		if width < 0 || height < 0 {
			return fmt.Errorf("viewport %g×%g: %w", width, height, ErrInvalidOption)
		}
		p.viewport = layout.Viewport{Width: width, Height: height}
		return nil
	}
}

// WithMeasurer sets the text measurer. Default is textmetrics.Default().
func WithMeasurer(m textmetrics.Measurer) Option {
	return func(p *Pipeline) error {
		if m == nil {
			return fmt.Errorf("nil measurer: %w", ErrInvalidOption)
		}
		p.measurer = m
		return nil
	}
}

// WithRegistry sets the property registry. Default is style.DefaultRegistry().
func WithRegistry(r *style.Registry) Option {
	return func(p *Pipeline) error {
		if r == nil {
			return fmt.Errorf("nil registry: %w", ErrInvalidOption)
		}
		p.registry = r
		return nil
	}
}

// WithoutUserAgentStyles switches off the user agent default stylesheet
// when collecting the stylesheets of a document.
func WithoutUserAgentStyles() Option {
	return func(p *Pipeline) error {
		p.noUserAgent = true
		return nil
	}
}

// WithoutInlineStyles makes collecting the stylesheets of a document
// ignore 'style' attributes.
func WithoutInlineStyles() Option {
	return func(p *Pipeline) error {
		p.noInline = true
		return nil
	}
}
