// SPDX-License-Identifier: MIT

// Package wellset: functional configuration for WellSet construction.
//
// Defaults are explicit constants; there is no package-level mutable label.
// Option constructors panic only on nonsensical values (programmer error).
package wellset

import (
	"log/slog"

	"github.com/katalvlaran/platestat/well"
)

const (
	// DefaultLabel is the label of a set built without WithLabel.
	DefaultLabel = "WellSet"

	// DefaultDelimiter separates IDs in delimited lists ("A1,B2").
	DefaultDelimiter = well.DefaultDelimiter

	// treeDegree is the B-tree branching factor.
	treeDegree = 16
)

const (
	panicEmptyDelimiter = "wellset: WithDelimiter: delimiter must be non-empty"
	panicNilLogger      = "wellset: WithLogger: logger must be non-nil"
)

// Option configures a WellSet at construction.
type Option func(*options)

// options is the resolved configuration.
type options struct {
	label     string
	delimiter string
	logger    *slog.Logger
}

// WithLabel sets the display label, also used when ordering sets.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// WithDelimiter sets the separator for delimited ID lists.
// Panics if delimiter is empty.
func WithDelimiter(delimiter string) Option {
	if delimiter == "" {
		panic(panicEmptyDelimiter)
	}

	return func(o *options) { o.delimiter = delimiter }
}

// WithLogger sets the logger receiving rejected batch items.
// Panics if logger is nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = logger }
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		label:     DefaultLabel,
		delimiter: DefaultDelimiter,
		logger:    slog.Default(),
	}
}

// gatherOptions applies opts on top of base.
func gatherOptions(base options, opts ...Option) options {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}

	return base
}
