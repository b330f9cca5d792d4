package match

import (
	"reflect"

	"github.com/npillmayer/match/option"
	"github.com/npillmayer/match/result"
)

// Matcher is an ordered list of match cases together with the resolution
// algorithm: the first case applicable to a value fires, all later cases are
// ignored. Evaluation order always equals registration order.
//
// Matchers are produced by a Builder and immutable from then on. An immutable
// matcher is safe for concurrent use.
type Matcher[T any] struct {
	cases []caze[T]
}

// Apply applies a value to the matcher. Cases are checked in registration
// order; the result of the first applicable case's handler is returned.
//
// If no case is applicable, Apply returns a *MatchError carrying v.
// If the handler of the selected case panics, the panic is recovered and
// returned as a *HandlerError.
func (m Matcher[T]) Apply(v any) (T, error) {
	for i, c := range m.cases {
		if c.isApplicable(v) {
			tracer().Debugf("case #%d applies to %v", i, v)
			return c.apply(v)
		}
	}
	tracer().Debugf("none of %d cases applies to %v", len(m.cases), v)
	var none T
	return none, &MatchError{Value: v}
}

// Try applies a value to the matcher, wrapping the outcome in a Result.
func (m Matcher[T]) Try(v any) result.Result[T] {
	x, err := m.Apply(v)
	if err != nil {
		return result.Err[T](err)
	}
	return result.Ok(x)
}

// Fn returns the matcher as an ordinary single-argument function.
func (m Matcher[T]) Fn() func(any) (T, error) {
	return m.Apply
}

// Len returns the number of cases of the matcher.
func (m Matcher[T]) Len() int {
	return len(m.cases)
}

// CaseInfo is a read-only description of a registered case, in support of
// diagnostics (see package matchdbg). ParameterType is the declared parameter
// type of the case's handler; Prototype is present for value-qualified cases.
type CaseInfo struct {
	ParameterType reflect.Type
	Prototype     option.Option[any]
}

// Cases describes the registered cases, in registration order.
func (m Matcher[T]) Cases() []CaseInfo {
	infos := make([]CaseInfo, len(m.cases))
	for i, c := range m.cases {
		infos[i] = CaseInfo{
			ParameterType: c.paramType,
			Prototype:     c.prototype,
		}
	}
	return infos
}
