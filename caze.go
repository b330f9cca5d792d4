package match

import (
	"reflect"

	"github.com/npillmayer/match/option"
)

// caze is one registered match case: an optional prototype, a handler
// adapted to a uniform shape, and the handler's declared parameter type.
// The parameter type is resolved once at registration and never re-derived,
// in particular not from the prototype (a prototype of a subtype must not
// widen or narrow the declared compatibility type).
//
// A caze is immutable.
type caze[T any] struct {
	prototype option.Option[any]
	invoke    func(any) T
	paramType reflect.Type
}

// isApplicable decides whether this case fires for value v.
//
// Type compatibility is checked first: v is compatible if it is nil or if
// its runtime type is assignable to the case's parameter type. An
// incompatible v never fires the case, regardless of any prototype equality,
// because invoking the handler on it would be unsafe.
//
// For a compatible v, a present prototype must equal v. An absent prototype
// makes the case a catch-all for its type, but explicitly excludes nil:
// a type-only case applicable to nil would shadow a later case registered
// with a nil prototype, which is never what the caller meant.
func (c caze[T]) isApplicable(v any) bool {
	isCompatible := v == nil || reflect.TypeOf(v).AssignableTo(c.paramType)
	if !isCompatible {
		return false
	}
	// Not the option-matching switch idiom here: comparing matchers would
	// compare the wrapped prototype, which may be non-comparable.
	if c.prototype.IsSome() {
		return equal(c.prototype.WithDefault(nil), v)
	}
	return v != nil
}

// apply invokes the case's handler on v. By contract apply is only called
// after isApplicable(v) returned true for the same v. A panicking handler is
// surfaced as a *HandlerError.
func (c caze[T]) apply(v any) (x T, err error) {
	done := false
	defer func() {
		if done {
			return
		}
		// recover() alone is not enough: panic(nil) makes it return nil,
		// which must still count as a handler failure.
		r := recover()
		var none T
		x = none
		err = &HandlerError{Recovered: r}
	}()
	x = c.invoke(v)
	done = true
	return x, nil
}

// Equaler lets prototype types bring their own equality contract, analogous
// to overriding equals in languages that have it. If a prototype implements
// Equaler, its Equals method decides value-qualified matches.
type Equaler interface {
	Equals(other any) bool
}

// equal is the prototype equality contract: the Equaler hook if the
// prototype provides one, == where both runtime types support it, and deep
// equality for the rest (slices, maps and friends).
func equal(proto, v any) bool {
	if proto == nil {
		return v == nil
	}
	if eq, ok := proto.(Equaler); ok {
		return eq.Equals(v)
	}
	if v != nil && reflect.TypeOf(proto).Comparable() && reflect.TypeOf(v).Comparable() {
		return proto == v
	}
	return reflect.DeepEqual(proto, v)
}
