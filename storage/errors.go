package storage

import "fmt"

// LoadError reports a fatal data-load failure: the source file is missing or
// unreadable, or a required column is absent. The pipeline cannot run
// without the full table, so callers should surface this and stop.
type LoadError struct {
	Source string // path or DSN description
	Column string // offending column, when the failure is a schema mismatch
	Err    error
}

func (e *LoadError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("load %s: missing required column %q", e.Source, e.Column)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
