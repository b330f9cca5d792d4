/*
Package match implements a better switch for Go: a match-expression over
runtime values.

A matcher holds an ordered list of cases. Each case is either type-qualified
(“fire for any value of type S”) or value-qualified (“fire for a value equal
to this prototype”). Applying a value to a matcher evaluates cases strictly
in registration order and returns the result of the first applicable case.
A matcher therefore is an expression, not a statement: applying it yields a
value, and Matcher.Fn turns it into an ordinary function, so matchers compose
like functions do.

Matchers are created by a Builder. Registration is a build phase; the matcher
produced by Builder.Build is immutable and safe for concurrent use.

	b := match.New[string]()
	match.CaseValueOf(b, 0, func(int) string { return "zero" })
	match.CaseOf(b, func(n int) string { return fmt.Sprintf("nonzero:%d", n) })
	m := b.Build()

	s, err := m.Apply(5)    // "nonzero:5"
	s, err = m.Apply(0)     // "zero"
	s, err = m.Apply("x")   // err is a *MatchError

Cases may also be registered dynamically from opaque handler functions; the
parameter type is then recovered by package signature:

	b.Case(handler)              // handler is some func(S) T
	b.CaseValue(proto, handler)

Status

API is stable, but expect additions for guard predicates.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'match.core'.
func tracer() tracing.Trace {
	return tracing.Select("match.core")
}
