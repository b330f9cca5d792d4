package match

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/match/option"
	"github.com/npillmayer/match/signature"
)

// Builder collects match cases, one registration call per case, and finally
// produces an immutable Matcher. Registration is append-only: cases are never
// reordered or removed, and the order of registration is the order of
// evaluation.
//
// Builders are not safe for concurrent use; registration is a build phase
// and expected to run to completion before the matcher is applied.
type Builder[T any] struct {
	cases []caze[T]
}

// New creates an empty builder for a matcher with result type T.
func New[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Case registers a type-only case: it fires for any non-nil value whose
// runtime type is assignable to the handler's parameter type. handler must
// be a func(S) R with a single parameter and a single result assignable
// to T; the parameter type is recovered with signature.ParameterType.
//
// Case panics with a *CaseError if handler is nil or cannot be used as a
// match handler. It returns the builder to allow chaining.
func (b *Builder[T]) Case(handler any) *Builder[T] {
	b.cases = append(b.cases, newCaze[T](option.None[any](), handler))
	return b
}

// CaseValue registers a value-qualified case: it fires for a value of the
// handler's parameter type which equals prototype. Handler requirements and
// failure behaviour are those of Case.
func (b *Builder[T]) CaseValue(prototype any, handler any) *Builder[T] {
	b.cases = append(b.cases, newCaze[T](option.Some[any](prototype), handler))
	return b
}

// Len returns the number of cases registered so far.
func (b *Builder[T]) Len() int {
	return len(b.cases)
}

// Build produces an immutable matcher over the cases registered so far.
// The builder may be used further; matchers built earlier are unaffected.
func (b *Builder[T]) Build() Matcher[T] {
	cases := make([]caze[T], len(b.cases))
	copy(cases, b.cases)
	return Matcher[T]{cases: cases}
}

// CaseOf registers a type-only case with a statically typed handler. The
// parameter type is the type argument S, no reflective recovery from the
// handler takes place. Panics with a *CaseError if f is nil.
func CaseOf[S, T any](b *Builder[T], f func(S) T) *Builder[T] {
	b.cases = append(b.cases, typedCaze(option.None[any](), f))
	return b
}

// CaseValueOf registers a value-qualified case with a statically typed
// prototype and handler. Panics with a *CaseError if f is nil.
func CaseValueOf[S, T any](b *Builder[T], prototype S, f func(S) T) *Builder[T] {
	b.cases = append(b.cases, typedCaze(option.Some[any](prototype), f))
	return b
}

// newCaze constructs a case from an opaque handler. All validation happens
// here, at registration time, so that malformed handlers fail fast instead
// of at the first resolution attempt.
func newCaze[T any](proto option.Option[any], handler any) caze[T] {
	if handler == nil {
		panic(&CaseError{Reason: "handler is nil"})
	}
	paramType, err := signature.ParameterType(handler)
	if err != nil {
		panic(&CaseError{Reason: "cannot resolve parameter type of handler", cause: err})
	}
	fn := reflect.ValueOf(handler)
	if fn.IsNil() {
		panic(&CaseError{Reason: "handler is nil"})
	}
	tT := reflect.TypeOf((*T)(nil)).Elem()
	if fn.Type().NumOut() != 1 || !fn.Type().Out(0).AssignableTo(tT) {
		panic(&CaseError{
			Reason: fmt.Sprintf("handler must return a single %v, has signature %v", tT, fn.Type()),
		})
	}
	return caze[T]{
		prototype: proto,
		paramType: paramType,
		invoke: func(v any) T {
			var arg reflect.Value
			if v == nil {
				arg = reflect.Zero(paramType)
			} else {
				arg = reflect.ValueOf(v)
			}
			out := fn.Call([]reflect.Value{arg})[0]
			x := reflect.New(tT).Elem()
			x.Set(out)
			t, _ := x.Interface().(T)
			return t
		},
	}
}

// typedCaze constructs a case from a statically typed handler. The type
// argument S acts as an explicit type tag; no reflection on f is needed,
// neither here nor at apply time.
func typedCaze[S, T any](proto option.Option[any], f func(S) T) caze[T] {
	if f == nil {
		panic(&CaseError{Reason: "handler is nil"})
	}
	return caze[T]{
		prototype: proto,
		paramType: reflect.TypeOf((*S)(nil)).Elem(),
		invoke: func(v any) T {
			var arg S
			if v != nil {
				if s, ok := v.(S); ok {
					arg = s
				} else {
					// Assignable but not identical to S, e.g. a named type
					// over S's underlying type. Assign the slow way.
					reflect.ValueOf(&arg).Elem().Set(reflect.ValueOf(v))
				}
			}
			return f(arg)
		},
	}
}
