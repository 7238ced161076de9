// Package indices derives the per-tree artifacts every filter and search
// index in tedsearch consumes: label/position streams for the SED kernels,
// an inverted label->postorder-position list, label-set records with
// four-way region vectors, and binary-branch histograms. Every builder in
// this package runs once per tree, after traversal.Walk, and produces an
// immutable value — none of these types are mutated once built.
//
// Scratch state needed only during a query (the "mapped"/"unmapped_region"
// bookkeeping of the structural filter) deliberately does not live here;
// it lives in the per-call regionScratch of filters/struct_filter.go.
package indices
