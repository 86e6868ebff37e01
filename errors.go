package vaccinate

import (
	"fmt"
	"strings"
)

// ResolutionError reports that the host module facility failed to produce
// a value for a named dependency reference. When several module
// directories were searched, Attempts lists every candidate path in order
// and Err carries the failure from the last attempt.
type ResolutionError struct {
	Name     string
	Attempts []string
	Err      error
}

func (e *ResolutionError) Error() string {
	if len(e.Attempts) > 1 {
		return fmt.Sprintf("vaccinate: resolve %s (tried %s): %v", e.Name, strings.Join(e.Attempts, ", "), e.Err)
	}
	return fmt.Sprintf("vaccinate: resolve %s: %v", e.Name, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// MissingDeclarationError reports that a target does not expose a
// dependency declaration under the configured property.
type MissingDeclarationError struct {
	Property string
	Target   string
}

func (e *MissingDeclarationError) Error() string {
	return fmt.Sprintf("vaccinate: %s declares no dependencies under %q", e.Target, e.Property)
}

// CycleError reports a circular dependency chain: Name was referenced
// again while its own resolution was still in progress.
type CycleError struct {
	Name string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("vaccinate: circular dependency on %s", e.Name)
}
