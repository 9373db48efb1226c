/*Package sasaerr contains the error-kind type shared across the sasa core.

Every failure the core returns carries one of a small fixed set of kinds so
callers can branch on "what went wrong" without parsing strings.
*/
package sasaerr

import "fmt"

// Kind identifies the category of a core error.
type Kind int

const (
	// InvalidInput means the atom set itself is malformed: empty, a
	// non-positive radius, or an unparseable source record.
	InvalidInput Kind = iota
	// InvalidParam means a Params field is out of its accepted range.
	InvalidParam
	// OutOfMemory means an allocation failed while building the grid or
	// neighbor list. grid.New and neighbor.Build do not return it.
	OutOfMemory
	// Cancelled means a caller-supplied context was cancelled mid-compute.
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case InvalidParam:
		return "InvalidParam"
	case OutOfMemory:
		return "OutOfMemory"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by every core-facing function.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Msg) }

// New creates an *Error of the given kind with a formatted message.
func New(k Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, a...)}
}

// Is reports whether err is a *Error of kind k. It is the idiomatic way for
// a caller to branch on error kind without a type assertion.
func Is(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}
