/*
Package matchdbg implements helpers to debug a matcher.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package matchdbg

import (
	"fmt"

	"github.com/npillmayer/match"
	tp "github.com/xlab/treeprint"
)

// Dump renders the case list of a matcher as a tree, one branch per case, in
// registration (= evaluation) order. Value-qualified cases show their
// prototype.
//
//	match
//	├── case #0: int
//	│   └── prototype 0
//	└── case #1: int
func Dump[T any](m match.Matcher[T]) string {
	tree := tp.New()
	tree.SetValue("match")
	for i, c := range m.Cases() {
		branch := tree.AddBranch(fmt.Sprintf("case #%d: %v", i, c.ParameterType))
		if c.Prototype.IsSome() {
			branch.AddNode(fmt.Sprintf("prototype %v", c.Prototype.WithDefault(nil)))
		}
	}
	return tree.String()
}
