package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/indices"
)

func formatHistogram(h indices.Histograms) string {
	var b strings.Builder
	writeIntBuckets(&b, "degree", h.Degree)
	writeIntBuckets(&b, "leaf_distance", h.LeafDistance)
	writeLabelBuckets(&b, "label", h.Label)

	return b.String()
}

func writeIntBuckets(b *strings.Builder, name string, buckets map[int]int) {
	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "%s\t%d\t%d\n", name, k, buckets[k])
	}
}

func writeLabelBuckets(b *strings.Builder, name string, buckets map[core.LabelID]int) {
	keys := make([]core.LabelID, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		fmt.Fprintf(b, "%s\t%d\t%d\n", name, k, buckets[k])
	}
}
