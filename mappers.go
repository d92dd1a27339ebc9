package errfunc

import (
	"encoding/xml"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ============================================================================
// Ready-Made Rules
// ============================================================================
//
// Rules for the driver error types a fallible body is most likely to
// surface. Each produces a *WrappedError whose message carries the
// driver's diagnostic fields and whose Unwrap cause is the original error.
// All are built at LowestPriority; adjust with Rule.WithPriority when
// composing with ForOrderedErrors.

// ForPgError classifies pgx server errors. The message carries the
// severity, the SQLSTATE code and the server message.
func ForPgError() Rule {
	return ForError(func(e *pgconn.PgError) error {
		msg := fmt.Sprintf("%s (SQLSTATE %s): %s", e.Severity, e.Code, e.Message)
		return WrapMessage(msg, e)
	})
}

// ForPQError classifies lib/pq server errors. The message carries the
// severity, the error code and the server message.
func ForPQError() Rule {
	return ForError(func(e *pq.Error) error {
		msg := fmt.Sprintf("%s (code %s): %s", e.Severity, string(e.Code), e.Message)
		return WrapMessage(msg, e)
	})
}

// ForXMLSyntaxError classifies encoding/xml syntax errors with the line
// number in the message.
func ForXMLSyntaxError() Rule {
	return ForError(func(e *xml.SyntaxError) error {
		msg := fmt.Sprintf("malformed XML on line %d: %s", e.Line, e.Msg)
		return WrapMessage(msg, e)
	})
}

// ForXMLTagPathError classifies encoding/xml tag-path conflicts, chaining
// both conflicting field/tag pairs into the message.
func ForXMLTagPathError() Rule {
	return ForError(func(e *xml.TagPathError) error {
		msg := fmt.Sprintf("conflicting XML tags on %s: %s %q clashes with %s %q",
			e.Struct, e.Field1, e.Tag1, e.Field2, e.Tag2)
		return WrapMessage(msg, e)
	})
}
