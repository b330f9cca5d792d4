/*
Package signature recovers type information from opaque callables.

A matcher dispatching on the parameter type of a handler needs that type at
registration time, but a handler passed around as `any` carries no static
type information. ParameterType gives it back, for single-argument callables.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package signature

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'match.signature'.
func tracer() tracing.Trace {
	return tracing.Select("match.signature")
}
