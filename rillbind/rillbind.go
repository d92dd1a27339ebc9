// Package rillbind exposes errfunc's throwing shapes as the callback types
// of github.com/destel/rill, so fallible bodies drop straight into rill
// pipelines.
//
// The adapters here perform no error handling of their own: rill already
// carries errors in its Try containers. The one exception is Guard, which
// re-enters the error-carrying world from a callback that was already
// converted with Unchecked (and therefore panics).
package rillbind

import (
	"fmt"

	"github.com/destel/rill"

	"github.com/Pure-Company/errfunc"
)

// PanicError is the generic runtime failure Guard produces for recovered
// panic values that are not one of the pass-through error kinds.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("rillbind: recovered panic: %v", e.Value)
}

// Transform exposes a throwing function as rill's transform callback type.
func Transform[T, R any](f errfunc.Func[T, R]) func(T) (R, error) { return f }

// Check exposes a throwing predicate as rill's filter callback type.
func Check[T any](p errfunc.Predicate[T]) func(T) (bool, error) { return p }

// Each exposes a throwing consumer as rill's ForEach callback type.
func Each[T any](c errfunc.Consumer[T]) func(T) error { return c }

// Map binds a throwing function straight to rill.Map with concurrency n.
func Map[T, R any](in <-chan rill.Try[T], n int, f errfunc.Func[T, R]) <-chan rill.Try[R] {
	return rill.Map(in, n, f)
}

// Filter binds a throwing predicate straight to rill.Filter with
// concurrency n.
func Filter[T any](in <-chan rill.Try[T], n int, p errfunc.Predicate[T]) <-chan rill.Try[T] {
	return rill.Filter(in, n, p)
}

// ForEach binds a throwing consumer straight to rill.ForEach with
// concurrency n.
func ForEach[T any](in <-chan rill.Try[T], n int, c errfunc.Consumer[T]) error {
	return rill.ForEach(in, n, c)
}

// Guard adapts an unchecked (panicking) function back into rill's
// error-returning callback shape. Recovered *errfunc.WrappedError panics
// pass through as their original cause; recovered plain error panics pass
// through as-is. Any other panic value becomes a *PanicError.
func Guard[T, R any](fn func(T) R) func(T) (R, error) {
	return func(t T) (r R, err error) {
		defer func() {
			if v := recover(); v != nil {
				err = recovered(v)
			}
		}()
		return fn(t), nil
	}
}

// GuardValue is Guard for zero-argument producers.
func GuardValue[R any](fn func() R) func() (R, error) {
	return func() (r R, err error) {
		defer func() {
			if v := recover(); v != nil {
				err = recovered(v)
			}
		}()
		return fn(), nil
	}
}

func recovered(v any) error {
	switch e := v.(type) {
	case *errfunc.WrappedError:
		return e.Unwrap()
	case error:
		return e
	default:
		return &PanicError{Value: v}
	}
}
