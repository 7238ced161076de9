package sed_test

import (
	"fmt"

	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/sed"
)

// Example demonstrates the bounded kernel capping its answer once it
// proves the true distance exceeds k, specification scenario 3.
func Example() {
	a := []core.LabelID{1, 2, 3, 4, 5, 5, 6}
	b := []core.LabelID{1, 2, 3, 5, 6, 7, 6}

	fmt.Println(sed.BoundedDistance(a, b, 2))
	fmt.Println(sed.BoundedDistance(a, b, 4))

	// Output:
	// 2
	// 3
}
