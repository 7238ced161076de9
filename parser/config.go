// Package parser centralizes dataset-loader configuration behind
// functional options, the same shape the rest of tedsearch uses: a
// loaderConfig resolved once from defaults plus LoaderOption values
// applied in order.
package parser

import "github.com/katalvlaran/tedsearch/core"

// loaderConfig holds the configurable parameters for LoadDataset:
//   - dict:           label dictionary; a fresh one by default, never nil.
//   - skipBlankLines: if true, empty lines are skipped instead of parsed.
//   - maxLineLength:  upper bound on a single line's byte length.
//
// loaderConfig is not safe for concurrent mutation; each load should
// build its own config via newLoaderConfig.
type loaderConfig struct {
	dict           *core.LabelDict
	skipBlankLines bool
	maxLineLength  int
}

// newLoaderConfig returns a loaderConfig initialized with defaults, then
// applies each LoaderOption in order. Defaults: fresh LabelDict, blank
// lines skipped, DefaultMaxLineLength.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newLoaderConfig(opts ...LoaderOption) *loaderConfig {
	cfg := &loaderConfig{
		dict:           core.NewLabelDict(),
		skipBlankLines: true,
		maxLineLength:  DefaultMaxLineLength,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
