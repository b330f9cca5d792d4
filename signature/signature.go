package signature

import (
	"errors"
	"reflect"
)

// Possible failures of ParameterType.
var (
	ErrNilCallable = errors.New("callable is nil")
	ErrNotAFunc    = errors.New("callable is not a function")
	ErrArity       = errors.New("callable must take exactly one argument")
	ErrVariadic    = errors.New("variadic callables are not supported")
)

// ParameterType returns the declared parameter type of a single-argument
// callable. The descriptor is usable for assignability tests against the
// runtime types of arbitrary values.
//
// ParameterType is a pure function: it inspects the callable's type only and
// never invokes it.
func ParameterType(callable any) (reflect.Type, error) {
	if callable == nil {
		return nil, ErrNilCallable
	}
	t := reflect.TypeOf(callable)
	if t.Kind() != reflect.Func {
		return nil, ErrNotAFunc
	}
	if t.IsVariadic() {
		return nil, ErrVariadic
	}
	if t.NumIn() != 1 {
		return nil, ErrArity
	}
	tracer().Debugf("parameter type of %v is %v", t, t.In(0))
	return t.In(0), nil
}
