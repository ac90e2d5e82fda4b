package app

import "fmt"

// MissingElementError reports a page element the app cannot run without.
type MissingElementError struct {
	ID string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("element #%s not found", e.ID)
}

func errMissing(id string) error {
	return &MissingElementError{ID: id}
}
