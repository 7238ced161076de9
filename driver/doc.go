// Package driver assembles indices/, search/, filters/, and verify/ into
// the end-to-end filter-verify pipeline of spec.md §4.8 (component C7):
// build every per-tree index once over a loaded dataset, then for each
// query tree narrow the corpus down with search/'s candidate-generation
// indices, reject candidates with filters/ in increasing cost order, and
// hand whatever survives to verify/.
//
// Configuration follows the same functional-options shape as
// parser.LoaderOption: a pipelineConfig resolved once from defaults plus
// PipelineOption values applied in order.
package driver
