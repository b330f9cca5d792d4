package match_test

import (
	"fmt"

	"github.com/npillmayer/match"
)

func ExampleMatcher_Apply() {
	b := match.New[string]()
	match.CaseValueOf(b, 0, func(int) string { return "zero" })
	match.CaseOf(b, func(n int) string { return fmt.Sprintf("nonzero:%d", n) })
	m := b.Build()

	s, _ := m.Apply(0)
	fmt.Println(s)
	s, _ = m.Apply(5)
	fmt.Println(s)
	_, err := m.Apply("x")
	fmt.Println(err)
	// Output:
	// zero
	// nonzero:5
	// match: no case applicable to x
}
