package result

import (
	"github.com/npillmayer/match/option"
)

/*
A Result[T] is the outcome of a computation that may fail: Ok(x) or Err(e).
Results are matched with the same switch idiom as Options:

	var v int
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
		// success, v bound
	case m.Err(&e):
		// failure, e bound
	}
*/

// Result is the outcome of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	ToOption() option.Option[T]
}

type result[T any] struct {
	value T
	err   error
}

// Ok creates a successful Result holding x.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err creates a failed Result holding err.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// ToOption drops the error information: Ok(x) becomes Some(x), any Err
// becomes None.
func (r result[T]) ToOption() option.Option[T] {
	if r.err != nil {
		return option.None[T]()
	}
	return option.Some(r.value)
}

// AndThen chains a result-producing function onto x, short-circuiting on Err.
func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	var v T
	var e error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&e):
	}
	return Err[S](e)
}

// --- Matching --------------------------------------------------------------

// Matcher destructures a Result in a switch statement; see the package
// comment for the idiom.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (m matcher[T]) Ok(v *T) Matcher[T] {
	if m.r.err == nil {
		*v = m.r.value
		return m
	}
	return nil
}

func (m matcher[T]) Err(err *error) Matcher[T] {
	if m.r.err != nil {
		*err = m.r.err
		return m
	}
	return nil
}
