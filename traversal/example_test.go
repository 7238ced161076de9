package traversal_test

import (
	"fmt"

	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/traversal"
)

// Example demonstrates the preorder/postorder streams Walk derives from a
// small tree, matching specification scenario 1.
func Example() {
	dict := core.NewLabelDict()
	tr := core.NewTree(dict)
	mk := func(s string) core.LabelID {
		return dict.Intern(s)
	}

	root, _ := tr.AddNode(core.NoNode, mk("1"))
	n2, _ := tr.AddNode(root, mk("2"))
	tr.AddNode(n2, mk("3"))
	tr.AddNode(n2, mk("4"))
	n5, _ := tr.AddNode(root, mk("5"))
	tr.AddNode(n5, mk("6"))
	n7, _ := tr.AddNode(root, mk("7"))
	tr.AddNode(n7, mk("8"))
	tr.AddNode(n7, mk("9"))

	res, err := traversal.Walk(tr)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, id := range res.PreorderLabels {
		s, _ := dict.Lookup(id)
		fmt.Print(s)
	}
	fmt.Println()

	// Output:
	// 123456789
}
