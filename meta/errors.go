package meta

import "fmt"

// ValidationError is the single error kind raised by this package. The
// message text is stable and part of the contract: callers and test
// suites match on it, so changing a message is a breaking change.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func errorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// previewLimit bounds how much of an offending value is echoed back in an
// error message, so adversarial or very long input stays readable.
const previewLimit = 40

// preview truncates s to previewLimit characters, appending an ellipsis
// when anything was cut.
func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLimit {
		return s
	}
	return string(runes[:previewLimit]) + "…"
}
