// Where: internal/compose/errors.go
// What: Error category for engine failures.
// Why: Coarse classification only; the engine's own diagnostic is preserved.
package compose

import "fmt"

// ComposeError marks a fatal container-engine failure for the current
// operation. It wraps the underlying error verbatim and is never
// retried by this tool.
type ComposeError struct {
	Op      string
	Project string
	Err     error
}

func (e *ComposeError) Error() string {
	if e.Project != "" {
		return fmt.Sprintf("compose %s (%s): %v", e.Op, e.Project, e.Err)
	}
	return fmt.Sprintf("compose %s: %v", e.Op, e.Err)
}

func (e *ComposeError) Unwrap() error {
	return e.Err
}
