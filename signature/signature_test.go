package signature_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/npillmayer/match/signature"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "match.signature")
	defer teardown()
	//
	pt, err := signature.ParameterType(func(int) string { return "" })
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(0), pt)

	pt, err = signature.ParameterType(func(s fmt.Stringer) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, reflect.Interface, pt.Kind())
}

func TestParameterTypeNoResults(t *testing.T) {
	// The lookup concerns parameters only; result shapes are the caller's
	// business.
	pt, err := signature.ParameterType(func(float64) {})
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(1.0), pt)
}

func TestParameterTypeFailures(t *testing.T) {
	_, err := signature.ParameterType(nil)
	assert.ErrorIs(t, err, signature.ErrNilCallable)

	_, err = signature.ParameterType(42)
	assert.ErrorIs(t, err, signature.ErrNotAFunc)

	_, err = signature.ParameterType(func() int { return 0 })
	assert.ErrorIs(t, err, signature.ErrArity)

	_, err = signature.ParameterType(func(int, int) int { return 0 })
	assert.ErrorIs(t, err, signature.ErrArity)

	_, err = signature.ParameterType(func(...int) int { return 0 })
	assert.ErrorIs(t, err, signature.ErrVariadic)
}
