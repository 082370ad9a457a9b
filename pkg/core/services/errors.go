package services

import "fmt"

// DataLoadError reports that one of the roster's input collections could not be read
type DataLoadError struct {
	Collection string
	Err        error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Collection, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}
