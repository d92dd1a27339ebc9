package errfunc

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sort"

	pkgerrors "github.com/pkg/errors"
)

// ============================================================================
// Classification
// ============================================================================

// MapperFunc translates a caught error into the error that Unchecked panics
// with. A MapperFunc is total: it must accept any error, never return nil
// and never fail itself.
//
// Example:
//
//	m := errfunc.MapperFunc(func(err error) error {
//	    return fmt.Errorf("storage: %w", err)
//	})
//	load := errfunc.Func[string, []byte](os.ReadFile).Unchecked(m)
type MapperFunc func(err error) error

// DefaultMapper is the fallback classification: wrap into a *WrappedError.
func DefaultMapper(err error) error {
	return Wrap(err)
}

// pick selects the caller-supplied mapper, if any. All conversion methods
// accept the mapper as an optional trailing argument.
func pick(mappers []MapperFunc) MapperFunc {
	if len(mappers) > 0 && mappers[0] != nil {
		return mappers[0]
	}
	return DefaultMapper
}

// LowestPriority is the sentinel priority of rules built without an
// explicit one. Ordered composition sorts ascending, so such rules are
// tried last.
const LowestPriority = math.MaxInt

// Rule is a single classification rule: a dynamic-type match paired with a
// translation function and an ordering priority. Build rules with ForError,
// ForErrorWithPriority or RuleAs, then compose them with ForErrors or
// ForOrderedErrors.
type Rule struct {
	match    func(err error) (error, bool)
	priority int
}

// Priority reports the rule's ordering priority. Lower sorts first.
func (r Rule) Priority() int { return r.priority }

// WithPriority returns a copy of the rule with the given priority.
func (r Rule) WithPriority(priority int) Rule {
	r.priority = priority
	return r
}

// Apply classifies err with this rule alone: the translated error when the
// rule matches, the default wrap otherwise. The result is never nil.
func (r Rule) Apply(err error) error {
	if mapped, ok := r.match(err); ok {
		return mapped
	}
	return Wrap(err)
}

// ForError builds a rule that fires when the caught error's dynamic type is
// E. Matching is a direct type assertion: a concrete E matches exactly that
// type, an interface E matches any implementation. The rule does not walk
// wrapped causes; use RuleAs for that.
//
// fn's result is returned unmodified - chain the cause yourself if you
// want one:
//
//	rule := errfunc.ForError(func(e *fs.PathError) error {
//	    return errfunc.WrapMessage("cannot open "+e.Path, e)
//	})
func ForError[E error](fn func(e E) error) Rule {
	return ForErrorWithPriority(fn, LowestPriority)
}

// ForErrorWithPriority is ForError with an explicit ordering priority for
// use with ForOrderedErrors. Lower sorts first.
func ForErrorWithPriority[E error](fn func(e E) error, priority int) Rule {
	return Rule{
		match: func(err error) (error, bool) {
			e, ok := err.(E)
			if !ok {
				return nil, false
			}
			return fn(e), true
		},
		priority: priority,
	}
}

// RuleAs builds a rule that matches through the error's Unwrap chain via
// errors.As, for bodies that return pre-wrapped errors.
func RuleAs[E error](fn func(e E) error) Rule {
	return Rule{
		match: func(err error) (error, bool) {
			var e E
			if !errors.As(err, &e) {
				return nil, false
			}
			return fn(e), true
		},
		priority: LowestPriority,
	}
}

// ForErrors composes rules into a single mapper. Rules are tried strictly
// in declaration order, first match wins and priorities are ignored. With
// no rules, or when nothing matches, the default wrap fires.
func ForErrors(rules ...Rule) MapperFunc {
	return func(err error) error {
		for _, r := range rules {
			if mapped, ok := r.match(err); ok {
				return mapped
			}
		}
		return Wrap(err)
	}
}

// ForOrderedErrors composes rules into a single mapper tried by ascending
// priority; ties keep input order. First match wins, default wrap on no
// match.
func ForOrderedErrors(rules []Rule) MapperFunc {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].priority < ordered[j].priority
	})
	return ForErrors(ordered...)
}

// ============================================================================
// WrappedError
// ============================================================================

// WrappedError is the error the default mapper produces. It reuses the
// original message verbatim, keeps the original error as its Unwrap cause
// and records the stack at wrap time.
type WrappedError struct {
	msg   string
	cause error
	stack pkgerrors.StackTrace
}

// Wrap builds a WrappedError around err.
func Wrap(err error) *WrappedError {
	return &WrappedError{msg: err.Error(), cause: err, stack: callers()}
}

// WrapMessage builds a WrappedError with an explicit message. Ready-made
// rules use it to surface formatted driver messages while keeping the
// original error reachable through Unwrap.
func WrapMessage(msg string, cause error) *WrappedError {
	return &WrappedError{msg: msg, cause: cause, stack: callers()}
}

// Error implements the error interface.
func (e *WrappedError) Error() string { return e.msg }

// Unwrap exposes the original error to errors.Is and errors.As.
func (e *WrappedError) Unwrap() error { return e.cause }

// Cause exposes the original error to github.com/pkg/errors helpers.
func (e *WrappedError) Cause() error { return e.cause }

// Stack renders the stack recorded when the error was wrapped.
func (e *WrappedError) Stack() string {
	return fmt.Sprintf("%+v", e.stack)
}

// Format renders the message for %v/%s and appends the stack for %+v.
func (e *WrappedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		fmt.Fprint(s, e.msg)
		if s.Flag('+') {
			e.stack.Format(s, verb)
		}
	case 's':
		fmt.Fprint(s, e.msg)
	case 'q':
		fmt.Fprintf(s, "%q", e.msg)
	}
}

func callers() pkgerrors.StackTrace {
	const depth = 32

	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])

	st := make(pkgerrors.StackTrace, n)
	for i := 0; i < n; i++ {
		st[i] = pkgerrors.Frame(pcs[i])
	}
	return st
}

// ============================================================================
// Result
// ============================================================================

// Result pairs a value with the error that produced it. Staged conversions
// deliver exactly one Result on their channel.
type Result[R any] struct {
	Value R
	Err   error
}

// Ok reports whether the result carries a value rather than an error.
func (r Result[R]) Ok() bool { return r.Err == nil }
