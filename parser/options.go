// SPDX-License-Identifier: MIT
// options.go — functional options for the parser package.
//
// Contract: option constructors validate and panic on meaningless
// input; LoadDataset and ParseTree themselves never panic.
package parser

import "github.com/katalvlaran/tedsearch/core"

// LoaderOption customizes LoadDataset by mutating a loaderConfig before
// the dataset file is read.
type LoaderOption func(cfg *loaderConfig)

// WithLabelDict shares an existing LabelDict across this load, so labels
// from this dataset interoperate with trees already built over dict
// (e.g. loading a query set against a previously loaded corpus).
// Panics on nil.
func WithLabelDict(dict *core.LabelDict) LoaderOption {
	if dict == nil {
		panic("parser: WithLabelDict(nil)")
	}

	return func(cfg *loaderConfig) {
		cfg.dict = dict
	}
}

// WithBlankLines controls whether empty lines are skipped (default) or
// rejected as malformed input.
func WithBlankLines(skip bool) LoaderOption {
	return func(cfg *loaderConfig) {
		cfg.skipBlankLines = skip
	}
}

// WithMaxLineLength overrides the maximum accepted line length. Panics
// if max <= 0.
func WithMaxLineLength(max int) LoaderOption {
	if max <= 0 {
		panic("parser: WithMaxLineLength(max<=0)")
	}

	return func(cfg *loaderConfig) {
		cfg.maxLineLength = max
	}
}
