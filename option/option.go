package option

/*
An Option[T] is a value of type T that may be absent. It is the generic
successor of the pre-generics option types scattered over earlier modules
(and of package maybe in the fp module): Some(x) carries a value, None()
carries nothing.

Options are matched with a switch over a Matcher, binding the value through
a pointer:

	var v int
	switch m := x.Match(); m {
	case m.Some(&v):
		// x was Some(v)
	case m.None():
		// x was None
	}
*/

// Option is a value of type T that may be absent.
type Option[T any] interface {
	Match() Matcher[T]
	IsSome() bool
	WithDefault(T) T
	Map(func(T) T) Option[T]
}

type option[T any] struct {
	value T
	tag   bool
}

// Some creates an Option holding x.
func Some[T any](x T) Option[T] {
	return option[T]{value: x, tag: true}
}

// None creates an absent Option.
func None[T any]() Option[T] {
	return option[T]{tag: false}
}

func (o option[T]) Match() Matcher[T] {
	return matcher[T]{o: o}
}

func (o option[T]) IsSome() bool {
	return o.tag
}

func (o option[T]) WithDefault(def T) T {
	if o.tag {
		return o.value
	}
	return def
}

func (o option[T]) Map(f func(T) T) Option[T] {
	if o.tag {
		return Some(f(o.value))
	}
	return o
}

// Map applies f to the value of x, if present.
func Map[T, S any](f func(T) S, x Option[T]) Option[S] {
	var v T
	switch m := x.Match(); m {
	case m.Some(&v):
		return Some(f(v))
	case m.None():
	}
	return None[S]()
}

// AndThen chains an option-producing function onto x.
func AndThen[T, S any](f func(T) Option[S], x Option[T]) Option[S] {
	var v T
	switch m := x.Match(); m {
	case m.Some(&v):
		return f(v)
	case m.None():
	}
	return None[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher destructures an Option in a switch statement; see the package
// comment for the idiom.
type Matcher[T any] interface {
	Some(*T) Matcher[T]
	None() Matcher[T]
}

type matcher[T any] struct {
	o option[T]
}

func (m matcher[T]) Some(v *T) Matcher[T] {
	if m.o.tag {
		*v = m.o.value
		return m
	}
	return nil
}

func (m matcher[T]) None() Matcher[T] {
	if !m.o.tag {
		return m
	}
	return nil
}
