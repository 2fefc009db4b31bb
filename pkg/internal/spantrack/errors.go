package spantrack

import "fmt"

// StackMisuseError reports an exit or close that referenced a span which is
// not at the top of its context's stack. The engine never silently corrects
// the stack, since doing so would corrupt field inheritance for unrelated
// spans; the stack is left exactly as it was.
type StackMisuseError struct {
	Op     string // "exit" or "close"
	SpanID string // the span the caller referenced
	TopID  string // the span actually at the top, empty if the stack is empty
}

func (e *StackMisuseError) Error() string {
	if e.TopID == "" {
		return fmt.Sprintf("span stack misuse: %s of span %s on an empty stack", e.Op, e.SpanID)
	}
	return fmt.Sprintf("span stack misuse: %s of span %s but top of stack is %s", e.Op, e.SpanID, e.TopID)
}
