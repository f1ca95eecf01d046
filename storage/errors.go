package storage

import "fmt"

// LoadError reports why the launch dataset could not be loaded.
// Load failures are fatal at startup.
type LoadError struct {
	Source string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Source, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadErr(source, reason string, err error) *LoadError {
	return &LoadError{Source: source, Reason: reason, Err: err}
}
