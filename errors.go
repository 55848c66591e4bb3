package tyrouter

import "fmt"

// ConstructionError is a single defect discovered while building a Route
// or a Router — never while matching. It mirrors the teacher's HTTPError
// in shape (a message plus a piece of structured context) but describes a
// build-time problem instead of a request outcome.
type ConstructionError struct {
	// RouteIndex is the position of the offending route within the slice
	// passed to Create, or -1 when the error was raised by a RouteN
	// constructor before any slice existed.
	RouteIndex int
	Message    string
}

func (e *ConstructionError) Error() string {
	if e.RouteIndex < 0 {
		return e.Message
	}
	return fmt.Sprintf("route %d: %s", e.RouteIndex, e.Message)
}

func newConstructionError(format string, args ...any) *ConstructionError {
	return &ConstructionError{RouteIndex: -1, Message: fmt.Sprintf(format, args...)}
}
