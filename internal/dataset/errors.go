package dataset

import "fmt"

// LoadError reports that the dataset could not be read.
// It is fatal for the invocation; no partial results are returned alongside it.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
