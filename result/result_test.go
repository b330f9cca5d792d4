package result_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/npillmayer/match/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultWithDefault(t *testing.T) {
	if Ok(7).WithDefault(100) != 7 {
		t.Error("expected Ok(7) to keep its value, doesn't")
	}
	if Err[int](errors.New("not ok")).WithDefault(100) != 100 {
		t.Error("expected Err to default to 100, doesn't")
	}
}

func TestResultToOption(t *testing.T) {
	if !Ok(7).ToOption().IsSome() {
		t.Error("expected Ok(7) to become Some, doesn't")
	}
	if Err[int](errors.New("not ok")).ToOption().IsSome() {
		t.Error("expected Err to become None, doesn't")
	}
}

func TestResultAndThen(t *testing.T) {
	atoi := func(s string) Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Err[int](err)
		}
		return Ok(n)
	}

	r := AndThen(atoi, Ok("42"))
	var n int
	var e error
	switch m := r.Match(); m {
	case m.Ok(&n):
		t.Logf("Ok(%d)", n)
	case m.Err(&e):
		t.Errorf("expected Ok(\"42\") |> andThen(atoi) to be Ok, is Err: %v", e)
	}
	if n != 42 {
		t.Errorf("expected n to be 42, is %d", n)
	}

	r = AndThen(atoi, Err[string](errors.New("upstream")))
	switch m := r.Match(); m {
	case m.Ok(&n):
		t.Error("expected Err |> andThen(atoi) to stay Err, doesn't")
	case m.Err(&e):
		t.Logf("Err: %v", e)
	}
}
