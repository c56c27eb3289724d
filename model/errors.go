package model

import (
	"errors"
	"fmt"
)

// MassAssignmentError is returned by Fill when a key that is not fillable is
// supplied to a totally guarded model. Keys rejected by a partially guarded
// model are silently skipped instead.
type MassAssignmentError struct {
	Model string
	Key   string
}

// Error implements the error interface.
func (e *MassAssignmentError) Error() string {
	return fmt.Sprintf("add %q to the fillable attributes to allow mass assignment on %s", e.Key, e.Model)
}

// IsMassAssignment returns true if the error is a *MassAssignmentError.
func IsMassAssignment(err error) bool {
	var maErr *MassAssignmentError
	return errors.As(err, &maErr)
}
