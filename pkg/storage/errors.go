package storage

import (
	"fmt"
)

type InvalidDestinationNameError struct {
	Name      string
	Extension string
}

func (e *InvalidDestinationNameError) Error() string {
	return fmt.Sprintf("invalid destination file name %q: extension %q required", e.Name, e.Extension)
}

type InvalidSourceNameError struct {
	Name      string
	Extension string
}

func (e *InvalidSourceNameError) Error() string {
	return fmt.Sprintf("invalid source file name %q: extension %q required", e.Name, e.Extension)
}

type SourceNotFoundError struct {
	Name string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source file %q not found", e.Name)
}
