package errfunc

// ============================================================================
// Conversion Skeleton
// ============================================================================

// resolve is the one control-flow skeleton behind every conversion. The
// rethrow flag separates the policies: Unchecked sets it and panics with the
// mapped error; Lifted and Ignored clear it and substitute def. Keeping the
// failure branch in one place is what lets every shape share identical
// semantics.
func resolve[R any](v R, err error, rethrow bool, m MapperFunc, def R) R {
	if err == nil {
		return v
	}
	if rethrow {
		panic(m(err))
	}
	return def
}

// ============================================================================
// Runnable
// ============================================================================

// Runnable is a zero-argument, void computation that may fail.
//
// Example:
//
//	sync := errfunc.Runnable(file.Sync)
//	deferred := sync.Ignored() // best-effort, never panics
type Runnable func() error

// Unchecked returns a plain func. On failure it panics with the mapped
// error (default: *WrappedError).
func (r Runnable) Unchecked(mapper ...MapperFunc) func() {
	m := pick(mapper)
	return func() {
		resolve(struct{}{}, r(), true, m, struct{}{})
	}
}

// Lifted degenerates to Ignored: there is no value to make optional on a
// void shape.
func (r Runnable) Lifted() func() {
	return r.Ignored()
}

// Ignored returns a plain func that swallows the failure.
func (r Runnable) Ignored() func() {
	return func() {
		_ = r()
	}
}

// Staged returns a func producing a completed single-result channel: nil on
// success, the original error otherwise. The classifier is bypassed.
func (r Runnable) Staged() func() <-chan error {
	return func() <-chan error {
		ch := make(chan error, 1)
		ch <- r()
		close(ch)
		return ch
	}
}

// AndThen runs r, then next. The first failure short-circuits and is
// returned unmodified.
func (r Runnable) AndThen(next Runnable) Runnable {
	return func() error {
		if err := r(); err != nil {
			return err
		}
		return next()
	}
}

// AsSupplier adapts the runnable into a supplier of struct{}. No error
// handling happens here; the failure still surfaces at the conversion
// boundary.
func (r Runnable) AsSupplier() Supplier[struct{}] {
	return func() (struct{}, error) {
		return struct{}{}, r()
	}
}

// ============================================================================
// Supplier
// ============================================================================

// Supplier is a zero-argument computation producing a value or failing.
//
// Example:
//
//	hostname := errfunc.Supplier[string](os.Hostname)
//	name := hostname.IgnoredOr("localhost")
type Supplier[R any] func() (R, error)

// Unchecked returns a plain producer. On failure it panics with the mapped
// error (default: *WrappedError). On success it is the body itself.
func (s Supplier[R]) Unchecked(mapper ...MapperFunc) func() R {
	m := pick(mapper)
	return func() R {
		v, err := s()
		var zero R
		return resolve(v, err, true, m, zero)
	}
}

// Lifted returns a comma-ok producer: (v, true) on success, (zero, false)
// on failure. It never panics.
func (s Supplier[R]) Lifted() func() (R, bool) {
	return func() (R, bool) {
		v, err := s()
		var zero R
		return resolve(v, err, false, nil, zero), err == nil
	}
}

// Ignored returns a producer yielding the zero value on failure.
func (s Supplier[R]) Ignored() func() R {
	var zero R
	return s.IgnoredOr(zero)
}

// IgnoredOr returns a producer yielding def on failure.
func (s Supplier[R]) IgnoredOr(def R) func() R {
	return func() R {
		v, err := s()
		return resolve(v, err, false, nil, def)
	}
}

// Staged returns a producer of a completed single-result channel. On
// failure the Result carries the original error; the classifier is
// bypassed.
func (s Supplier[R]) Staged() func() <-chan Result[R] {
	return func() <-chan Result[R] {
		ch := make(chan Result[R], 1)
		v, err := s()
		ch <- Result[R]{Value: v, Err: err}
		close(ch)
		return ch
	}
}

// AsRunnable discards the produced value.
func (s Supplier[R]) AsRunnable() Runnable {
	return func() error {
		_, err := s()
		return err
	}
}

// ============================================================================
// Consumer
// ============================================================================

// Consumer is a single-argument, void computation that may fail.
//
// Example:
//
//	remove := errfunc.Consumer[string](os.Remove)
//	cleanup := remove.Ignored()
type Consumer[T any] func(t T) error

// Unchecked returns a plain consumer. On failure it panics with the mapped
// error (default: *WrappedError).
func (c Consumer[T]) Unchecked(mapper ...MapperFunc) func(T) {
	m := pick(mapper)
	return func(t T) {
		resolve(struct{}{}, c(t), true, m, struct{}{})
	}
}

// Lifted degenerates to Ignored: there is no value to make optional on a
// void shape.
func (c Consumer[T]) Lifted() func(T) {
	return c.Ignored()
}

// Ignored returns a plain consumer that swallows the failure.
func (c Consumer[T]) Ignored() func(T) {
	return func(t T) {
		_ = c(t)
	}
}

// Staged returns a consumer producing a completed single-result channel:
// nil on success, the original error otherwise.
func (c Consumer[T]) Staged() func(T) <-chan error {
	return func(t T) <-chan error {
		ch := make(chan error, 1)
		ch <- c(t)
		close(ch)
		return ch
	}
}

// AndThen runs c, then next, on the same argument. The first failure
// short-circuits and is returned unmodified.
func (c Consumer[T]) AndThen(next Consumer[T]) Consumer[T] {
	return func(t T) error {
		if err := c(t); err != nil {
			return err
		}
		return next(t)
	}
}

// AsFunc adapts the consumer into a function returning struct{} - the
// "returns nothing useful" value.
func (c Consumer[T]) AsFunc() Func[T, struct{}] {
	return func(t T) (struct{}, error) {
		return struct{}{}, c(t)
	}
}

// ============================================================================
// BiConsumer
// ============================================================================

// BiConsumer is a two-argument, void computation that may fail.
type BiConsumer[T, U any] func(t T, u U) error

// Unchecked returns a plain consumer. On failure it panics with the mapped
// error (default: *WrappedError).
func (c BiConsumer[T, U]) Unchecked(mapper ...MapperFunc) func(T, U) {
	m := pick(mapper)
	return func(t T, u U) {
		resolve(struct{}{}, c(t, u), true, m, struct{}{})
	}
}

// Lifted degenerates to Ignored: there is no value to make optional on a
// void shape.
func (c BiConsumer[T, U]) Lifted() func(T, U) {
	return c.Ignored()
}

// Ignored returns a plain consumer that swallows the failure.
func (c BiConsumer[T, U]) Ignored() func(T, U) {
	return func(t T, u U) {
		_ = c(t, u)
	}
}

// Staged returns a consumer producing a completed single-result channel.
func (c BiConsumer[T, U]) Staged() func(T, U) <-chan error {
	return func(t T, u U) <-chan error {
		ch := make(chan error, 1)
		ch <- c(t, u)
		close(ch)
		return ch
	}
}

// AndThen runs c, then next, on the same arguments. The first failure
// short-circuits and is returned unmodified.
func (c BiConsumer[T, U]) AndThen(next BiConsumer[T, U]) BiConsumer[T, U] {
	return func(t T, u U) error {
		if err := c(t, u); err != nil {
			return err
		}
		return next(t, u)
	}
}

// AsBiFunc adapts the consumer into a bi-function returning struct{}.
func (c BiConsumer[T, U]) AsBiFunc() BiFunc[T, U, struct{}] {
	return func(t T, u U) (struct{}, error) {
		return struct{}{}, c(t, u)
	}
}

// ============================================================================
// Func
// ============================================================================

// Func is a single-argument computation producing a value or failing. A
// unary operator is Func[T, T].
//
// Example:
//
//	parse := errfunc.Func[string, int](strconv.Atoi)
//	n, ok := parse.Lifted()("42") // 42, true
type Func[T, R any] func(t T) (R, error)

// Unchecked returns a plain function. On failure it panics with the mapped
// error (default: *WrappedError). On success it is the body itself.
func (f Func[T, R]) Unchecked(mapper ...MapperFunc) func(T) R {
	m := pick(mapper)
	return func(t T) R {
		v, err := f(t)
		var zero R
		return resolve(v, err, true, m, zero)
	}
}

// Lifted returns a comma-ok function: (v, true) on success, (zero, false)
// on failure. It never panics.
func (f Func[T, R]) Lifted() func(T) (R, bool) {
	return func(t T) (R, bool) {
		v, err := f(t)
		var zero R
		return resolve(v, err, false, nil, zero), err == nil
	}
}

// Ignored returns a function yielding the zero value on failure.
func (f Func[T, R]) Ignored() func(T) R {
	var zero R
	return f.IgnoredOr(zero)
}

// IgnoredOr returns a function yielding def on failure.
func (f Func[T, R]) IgnoredOr(def R) func(T) R {
	return func(t T) R {
		v, err := f(t)
		return resolve(v, err, false, nil, def)
	}
}

// Staged returns a function producing a completed single-result channel.
// On failure the Result carries the original error; the classifier is
// bypassed.
func (f Func[T, R]) Staged() func(T) <-chan Result[R] {
	return func(t T) <-chan Result[R] {
		ch := make(chan Result[R], 1)
		v, err := f(t)
		ch <- Result[R]{Value: v, Err: err}
		close(ch)
		return ch
	}
}

// AsConsumer discards the produced value.
func (f Func[T, R]) AsConsumer() Consumer[T] {
	return func(t T) error {
		_, err := f(t)
		return err
	}
}

// ============================================================================
// BiFunc
// ============================================================================

// BiFunc is a two-argument computation producing a value or failing. A
// binary operator is BiFunc[T, T, T].
type BiFunc[T, U, R any] func(t T, u U) (R, error)

// Unchecked returns a plain function. On failure it panics with the mapped
// error (default: *WrappedError).
func (f BiFunc[T, U, R]) Unchecked(mapper ...MapperFunc) func(T, U) R {
	m := pick(mapper)
	return func(t T, u U) R {
		v, err := f(t, u)
		var zero R
		return resolve(v, err, true, m, zero)
	}
}

// Lifted returns a comma-ok function: (v, true) on success, (zero, false)
// on failure.
func (f BiFunc[T, U, R]) Lifted() func(T, U) (R, bool) {
	return func(t T, u U) (R, bool) {
		v, err := f(t, u)
		var zero R
		return resolve(v, err, false, nil, zero), err == nil
	}
}

// Ignored returns a function yielding the zero value on failure.
func (f BiFunc[T, U, R]) Ignored() func(T, U) R {
	var zero R
	return f.IgnoredOr(zero)
}

// IgnoredOr returns a function yielding def on failure.
func (f BiFunc[T, U, R]) IgnoredOr(def R) func(T, U) R {
	return func(t T, u U) R {
		v, err := f(t, u)
		return resolve(v, err, false, nil, def)
	}
}

// Staged returns a function producing a completed single-result channel.
func (f BiFunc[T, U, R]) Staged() func(T, U) <-chan Result[R] {
	return func(t T, u U) <-chan Result[R] {
		ch := make(chan Result[R], 1)
		v, err := f(t, u)
		ch <- Result[R]{Value: v, Err: err}
		close(ch)
		return ch
	}
}

// AsBiConsumer discards the produced value.
func (f BiFunc[T, U, R]) AsBiConsumer() BiConsumer[T, U] {
	return func(t T, u U) error {
		_, err := f(t, u)
		return err
	}
}

// ============================================================================
// Predicate
// ============================================================================

// Predicate is a single-argument test that may fail.
//
// Example:
//
//	exists := errfunc.Predicate[string](func(path string) (bool, error) {
//	    _, err := os.Stat(path)
//	    if errors.Is(err, fs.ErrNotExist) {
//	        return false, nil
//	    }
//	    return err == nil, err
//	})
type Predicate[T any] func(t T) (bool, error)

// Unchecked returns a plain test. On failure it panics with the mapped
// error (default: *WrappedError).
func (p Predicate[T]) Unchecked(mapper ...MapperFunc) func(T) bool {
	m := pick(mapper)
	return func(t T) bool {
		ok, err := p(t)
		return resolve(ok, err, true, m, false)
	}
}

// Lifted returns the verdict plus a comma-ok validity flag: the second
// result is false exactly when the test failed.
func (p Predicate[T]) Lifted() func(T) (bool, bool) {
	return func(t T) (bool, bool) {
		ok, err := p(t)
		return resolve(ok, err, false, nil, false), err == nil
	}
}

// Ignored returns a test yielding false on failure.
func (p Predicate[T]) Ignored() func(T) bool {
	return p.IgnoredOr(false)
}

// IgnoredOr returns a test yielding def on failure.
func (p Predicate[T]) IgnoredOr(def bool) func(T) bool {
	return func(t T) bool {
		ok, err := p(t)
		return resolve(ok, err, false, nil, def)
	}
}

// Staged returns a test producing a completed single-result channel.
func (p Predicate[T]) Staged() func(T) <-chan Result[bool] {
	return func(t T) <-chan Result[bool] {
		ch := make(chan Result[bool], 1)
		ok, err := p(t)
		ch <- Result[bool]{Value: ok, Err: err}
		close(ch)
		return ch
	}
}

// And short-circuits like &&: other runs only when p holds. The first
// failure is returned unmodified.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(t T) (bool, error) {
		ok, err := p(t)
		if err != nil || !ok {
			return false, err
		}
		return other(t)
	}
}

// Or short-circuits like ||: other runs only when p does not hold. The
// first failure is returned unmodified.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(t T) (bool, error) {
		ok, err := p(t)
		if err != nil || ok {
			return ok, err
		}
		return other(t)
	}
}

// Negate inverts the verdict; failures pass through unmodified.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(t T) (bool, error) {
		ok, err := p(t)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

// AsFunc exposes the test as a bool-valued function.
func (p Predicate[T]) AsFunc() Func[T, bool] {
	return func(t T) (bool, error) {
		return p(t)
	}
}

// ============================================================================
// BiPredicate
// ============================================================================

// BiPredicate is a two-argument test that may fail.
type BiPredicate[T, U any] func(t T, u U) (bool, error)

// Unchecked returns a plain test. On failure it panics with the mapped
// error (default: *WrappedError).
func (p BiPredicate[T, U]) Unchecked(mapper ...MapperFunc) func(T, U) bool {
	m := pick(mapper)
	return func(t T, u U) bool {
		ok, err := p(t, u)
		return resolve(ok, err, true, m, false)
	}
}

// Lifted returns the verdict plus a comma-ok validity flag.
func (p BiPredicate[T, U]) Lifted() func(T, U) (bool, bool) {
	return func(t T, u U) (bool, bool) {
		ok, err := p(t, u)
		return resolve(ok, err, false, nil, false), err == nil
	}
}

// Ignored returns a test yielding false on failure.
func (p BiPredicate[T, U]) Ignored() func(T, U) bool {
	return p.IgnoredOr(false)
}

// IgnoredOr returns a test yielding def on failure.
func (p BiPredicate[T, U]) IgnoredOr(def bool) func(T, U) bool {
	return func(t T, u U) bool {
		ok, err := p(t, u)
		return resolve(ok, err, false, nil, def)
	}
}

// Staged returns a test producing a completed single-result channel.
func (p BiPredicate[T, U]) Staged() func(T, U) <-chan Result[bool] {
	return func(t T, u U) <-chan Result[bool] {
		ch := make(chan Result[bool], 1)
		ok, err := p(t, u)
		ch <- Result[bool]{Value: ok, Err: err}
		close(ch)
		return ch
	}
}

// And short-circuits like &&; the first failure is returned unmodified.
func (p BiPredicate[T, U]) And(other BiPredicate[T, U]) BiPredicate[T, U] {
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		if err != nil || !ok {
			return false, err
		}
		return other(t, u)
	}
}

// Or short-circuits like ||; the first failure is returned unmodified.
func (p BiPredicate[T, U]) Or(other BiPredicate[T, U]) BiPredicate[T, U] {
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		if err != nil || ok {
			return ok, err
		}
		return other(t, u)
	}
}

// Negate inverts the verdict; failures pass through unmodified.
func (p BiPredicate[T, U]) Negate() BiPredicate[T, U] {
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

// AsBiFunc exposes the test as a bool-valued bi-function.
func (p BiPredicate[T, U]) AsBiFunc() BiFunc[T, U, bool] {
	return func(t T, u U) (bool, error) {
		return p(t, u)
	}
}

// ============================================================================
// Package-Level Conversion Helpers
// ============================================================================
//
// These mirror the conversion methods for call sites that start from a
// closure literal, where the method form would force an explicit type
// conversion:
//
//	atoi := errfunc.UncheckedFunc(strconv.Atoi)

// UncheckedRunnable converts r; see Runnable.Unchecked.
func UncheckedRunnable(r Runnable, mapper ...MapperFunc) func() {
	return r.Unchecked(mapper...)
}

// UncheckedSupplier converts s; see Supplier.Unchecked.
func UncheckedSupplier[R any](s Supplier[R], mapper ...MapperFunc) func() R {
	return s.Unchecked(mapper...)
}

// UncheckedConsumer converts c; see Consumer.Unchecked.
func UncheckedConsumer[T any](c Consumer[T], mapper ...MapperFunc) func(T) {
	return c.Unchecked(mapper...)
}

// UncheckedBiConsumer converts c; see BiConsumer.Unchecked.
func UncheckedBiConsumer[T, U any](c BiConsumer[T, U], mapper ...MapperFunc) func(T, U) {
	return c.Unchecked(mapper...)
}

// UncheckedFunc converts f; see Func.Unchecked.
func UncheckedFunc[T, R any](f Func[T, R], mapper ...MapperFunc) func(T) R {
	return f.Unchecked(mapper...)
}

// UncheckedBiFunc converts f; see BiFunc.Unchecked.
func UncheckedBiFunc[T, U, R any](f BiFunc[T, U, R], mapper ...MapperFunc) func(T, U) R {
	return f.Unchecked(mapper...)
}

// UncheckedPredicate converts p; see Predicate.Unchecked.
func UncheckedPredicate[T any](p Predicate[T], mapper ...MapperFunc) func(T) bool {
	return p.Unchecked(mapper...)
}

// UncheckedBiPredicate converts p; see BiPredicate.Unchecked.
func UncheckedBiPredicate[T, U any](p BiPredicate[T, U], mapper ...MapperFunc) func(T, U) bool {
	return p.Unchecked(mapper...)
}

// LiftedRunnable converts r; see Runnable.Lifted.
func LiftedRunnable(r Runnable) func() { return r.Lifted() }

// LiftedSupplier converts s; see Supplier.Lifted.
func LiftedSupplier[R any](s Supplier[R]) func() (R, bool) { return s.Lifted() }

// LiftedConsumer converts c; see Consumer.Lifted.
func LiftedConsumer[T any](c Consumer[T]) func(T) { return c.Lifted() }

// LiftedBiConsumer converts c; see BiConsumer.Lifted.
func LiftedBiConsumer[T, U any](c BiConsumer[T, U]) func(T, U) { return c.Lifted() }

// LiftedFunc converts f; see Func.Lifted.
func LiftedFunc[T, R any](f Func[T, R]) func(T) (R, bool) { return f.Lifted() }

// LiftedBiFunc converts f; see BiFunc.Lifted.
func LiftedBiFunc[T, U, R any](f BiFunc[T, U, R]) func(T, U) (R, bool) { return f.Lifted() }

// LiftedPredicate converts p; see Predicate.Lifted.
func LiftedPredicate[T any](p Predicate[T]) func(T) (bool, bool) { return p.Lifted() }

// LiftedBiPredicate converts p; see BiPredicate.Lifted.
func LiftedBiPredicate[T, U any](p BiPredicate[T, U]) func(T, U) (bool, bool) { return p.Lifted() }

// IgnoredRunnable converts r; see Runnable.Ignored.
func IgnoredRunnable(r Runnable) func() { return r.Ignored() }

// IgnoredSupplier converts s; see Supplier.Ignored.
func IgnoredSupplier[R any](s Supplier[R]) func() R { return s.Ignored() }

// IgnoredConsumer converts c; see Consumer.Ignored.
func IgnoredConsumer[T any](c Consumer[T]) func(T) { return c.Ignored() }

// IgnoredBiConsumer converts c; see BiConsumer.Ignored.
func IgnoredBiConsumer[T, U any](c BiConsumer[T, U]) func(T, U) { return c.Ignored() }

// IgnoredFunc converts f; see Func.Ignored.
func IgnoredFunc[T, R any](f Func[T, R]) func(T) R { return f.Ignored() }

// IgnoredBiFunc converts f; see BiFunc.Ignored.
func IgnoredBiFunc[T, U, R any](f BiFunc[T, U, R]) func(T, U) R { return f.Ignored() }

// IgnoredPredicate converts p; see Predicate.Ignored.
func IgnoredPredicate[T any](p Predicate[T]) func(T) bool { return p.Ignored() }

// IgnoredBiPredicate converts p; see BiPredicate.Ignored.
func IgnoredBiPredicate[T, U any](p BiPredicate[T, U]) func(T, U) bool { return p.Ignored() }

// ============================================================================
// Composition Helpers
// ============================================================================

// AndThen feeds f's result into after. The first failure short-circuits
// and is returned unmodified; classification only happens at a conversion
// boundary.
func AndThen[T, R, V any](f Func[T, R], after Func[R, V]) Func[T, V] {
	return func(t T) (V, error) {
		r, err := f(t)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}
}

// Compose runs before first, then f - AndThen with the arguments flipped.
func Compose[V, T, R any](f Func[T, R], before Func[V, T]) Func[V, R] {
	return AndThen(before, f)
}

// AndThenBi feeds f's result into after.
func AndThenBi[T, U, R, V any](f BiFunc[T, U, R], after Func[R, V]) BiFunc[T, U, V] {
	return func(t T, u U) (V, error) {
		r, err := f(t, u)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}
}

// MapSupplier feeds s's result into after.
func MapSupplier[R, V any](s Supplier[R], after Func[R, V]) Supplier[V] {
	return func() (V, error) {
		r, err := s()
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}
}

// SupplierAsFunc exposes a supplier as a function that ignores its
// argument.
func SupplierAsFunc[T, R any](s Supplier[R]) Func[T, R] {
	return func(T) (R, error) {
		return s()
	}
}

// FuncAsSupplier binds arg, exposing the function as a supplier.
func FuncAsSupplier[T, R any](f Func[T, R], arg T) Supplier[R] {
	return func() (R, error) {
		return f(arg)
	}
}

// ============================================================================
// Failing Factories
// ============================================================================
//
// Failing shapes raise a fresh error from errSupplier on every invocation.
// They exist for composition and tests:
//
//	boom := errfunc.FailingFunc[string, int](func() error {
//	    return errors.New("boom")
//	})

// FailingRunnable returns a runnable that always fails.
func FailingRunnable(errSupplier func() error) Runnable {
	return func() error {
		return errSupplier()
	}
}

// FailingSupplier returns a supplier that always fails.
func FailingSupplier[R any](errSupplier func() error) Supplier[R] {
	return func() (R, error) {
		var zero R
		return zero, errSupplier()
	}
}

// FailingConsumer returns a consumer that always fails.
func FailingConsumer[T any](errSupplier func() error) Consumer[T] {
	return func(T) error {
		return errSupplier()
	}
}

// FailingBiConsumer returns a bi-consumer that always fails.
func FailingBiConsumer[T, U any](errSupplier func() error) BiConsumer[T, U] {
	return func(T, U) error {
		return errSupplier()
	}
}

// FailingFunc returns a function that always fails.
func FailingFunc[T, R any](errSupplier func() error) Func[T, R] {
	return func(T) (R, error) {
		var zero R
		return zero, errSupplier()
	}
}

// FailingBiFunc returns a bi-function that always fails.
func FailingBiFunc[T, U, R any](errSupplier func() error) BiFunc[T, U, R] {
	return func(T, U) (R, error) {
		var zero R
		return zero, errSupplier()
	}
}

// FailingPredicate returns a predicate that always fails.
func FailingPredicate[T any](errSupplier func() error) Predicate[T] {
	return func(T) (bool, error) {
		return false, errSupplier()
	}
}

// FailingBiPredicate returns a bi-predicate that always fails.
func FailingBiPredicate[T, U any](errSupplier func() error) BiPredicate[T, U] {
	return func(T, U) (bool, error) {
		return false, errSupplier()
	}
}

// ============================================================================
// Helper Constructors
// ============================================================================

// NewRunnable creates a Runnable from a function.
func NewRunnable(fn func() error) Runnable { return fn }

// NewSupplier creates a Supplier from a function.
func NewSupplier[R any](fn func() (R, error)) Supplier[R] { return fn }

// NewConsumer creates a Consumer from a function.
func NewConsumer[T any](fn func(T) error) Consumer[T] { return fn }

// NewBiConsumer creates a BiConsumer from a function.
func NewBiConsumer[T, U any](fn func(T, U) error) BiConsumer[T, U] { return fn }

// NewFunc creates a Func from a function.
func NewFunc[T, R any](fn func(T) (R, error)) Func[T, R] { return fn }

// NewBiFunc creates a BiFunc from a function.
func NewBiFunc[T, U, R any](fn func(T, U) (R, error)) BiFunc[T, U, R] { return fn }

// NewPredicate creates a Predicate from a function.
func NewPredicate[T any](fn func(T) (bool, error)) Predicate[T] { return fn }

// NewBiPredicate creates a BiPredicate from a function.
func NewBiPredicate[T, U any](fn func(T, U) (bool, error)) BiPredicate[T, U] { return fn }
