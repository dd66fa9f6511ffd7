package sdftext

import "github.com/gogpu/sdftext/outline"

// Option configures a Pipeline during creation.
//
// Example:
//
//	// Default outline generator (Go fonts, sfnt backend)
//	p := sdftext.New()
//
//	// Parse fonts with go-text instead
//	p := sdftext.New(sdftext.WithOutlineOptions(outline.WithBackend("gotext")))
type Option func(*pipelineOptions)

type pipelineOptions struct {
	source      outline.Source
	outlineOpts []outline.Option
}

// WithSource replaces the glyph outline source. Use this to plug in a remote
// outline service or a test double.
func WithSource(s outline.Source) Option {
	return func(o *pipelineOptions) {
		o.source = s
	}
}

// WithOutlineOptions configures the built-in outline generator.
// Ignored when WithSource is also given.
func WithOutlineOptions(opts ...outline.Option) Option {
	return func(o *pipelineOptions) {
		o.outlineOpts = append(o.outlineOpts, opts...)
	}
}
