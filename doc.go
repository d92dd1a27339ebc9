/*
Package errfunc adapts error-returning function values to the plain callback
shapes the rest of an API expects.

# Overview

Errfunc provides a generic "throwing" shape for every common callback arity
(function, bi-function, supplier, consumer, predicate, runnable) together
with conversion methods that strip the error result according to one of
three policies: panic with a classified error (Unchecked), lift the result
into a comma-ok pair (Lifted), or substitute a default value (Ignored).
A fourth convenience (Staged) turns the call into a completed
single-result channel carrying the original, unclassified error.

# Key Benefits

  - One generic shape per arity: no per-type adapter explosion
  - Identity on success: converted callbacks behave exactly like the body
  - Pluggable classification: type-dispatched rules decide what to panic with
  - Composable: AndThen, Compose, And, Or, Negate before any conversion
  - Ready-made rules for pgx, pq and encoding/xml error types

# Quick Example

A fallible body where the caller wants a plain func:

	parse := errfunc.Func[string, int](strconv.Atoi)

	// Panic with a *WrappedError carrying the original cause.
	atoi := parse.Unchecked()
	n := atoi("42")

	// Or make absence explicit - comma-ok, never panics.
	maybe := parse.Lifted()
	n, ok := maybe("not a number") // 0, false

	// Or fall back to a default.
	lenient := parse.IgnoredOr(-1)
	n = lenient("junk") // -1

# Core Concepts

Conversion policies: every shape exposes the same four conversions:

	f.Unchecked()          // success: identity; failure: panic(mapped error)
	f.Lifted()             // success: (v, true); failure: (zero, false)
	f.Ignored()            // success: identity; failure: zero value
	f.IgnoredOr(fallback)  // success: identity; failure: fallback
	f.Staged()             // completed channel; failure keeps the original error

Classification: Unchecked routes the caught error through a MapperFunc.
The default wraps it into a *WrappedError that preserves the message
verbatim, keeps the original as its Unwrap cause and captures a stack.
Custom rules dispatch on the error's dynamic type:

	m := errfunc.ForErrors(
	    errfunc.ForError(func(e *fs.PathError) error { ... }),
	    errfunc.ForError(func(e *net.OpError) error { ... }),
	)
	open := errfunc.Func[string, *os.File](os.Open).Unchecked(m)

Combinators: composition happens before conversion and re-raises the first
error unmodified; classification only ever happens at the conversion
boundary:

	validRange := nonNegative.And(belowLimit)
	pipeline := errfunc.AndThen(parse, validate)

# Available Shapes

Zero arguments:
  - Runnable: func() error
  - Supplier[R]: func() (R, error)

One argument:
  - Consumer[T]: func(T) error
  - Func[T, R]: func(T) (R, error)
  - Predicate[T]: func(T) (bool, error)

Two arguments:
  - BiConsumer[T, U], BiFunc[T, U, R], BiPredicate[T, U]

Operators are spelled with repeated parameters: a unary operator is
Func[T, T], a binary operator is BiFunc[T, T, T].

# Void Shapes and Lifted

There is no value to make optional on Runnable, Consumer and BiConsumer,
so Lifted on those shapes degenerates to Ignored. This asymmetry is kept
on purpose; callers who need a success signal should use the shape's
error result directly.

# Integration

The rillbind subpackage exposes the throwing shapes as the callback types
of github.com/destel/rill and guards panicking (unchecked) functions back
into rill's error-carrying streams.

# Package Import

	import "github.com/Pure-Company/errfunc"
*/
package errfunc
