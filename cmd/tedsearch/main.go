// Command tedsearch loads a bracket-notation tree dataset, builds the
// filter-verify pipeline over it, and reports every pair of trees within a
// given edit-distance threshold.
//
// Exit codes: 0 success, 1 parse/IO error, 2 invalid path.
package main

import "os"

func main() {
	os.Exit(Execute())
}
