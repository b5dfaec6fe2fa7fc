package booking

import (
	"errors"

	"skillbridge/models"
)

// IsSlotConflict reports whether err is, or wraps, a double-booking rejection.
func IsSlotConflict(err error) bool {
	var conflict *models.SlotConflictError
	return errors.As(err, &conflict)
}

// IsValidation reports whether err is, or wraps, a *models.ValidationError.
func IsValidation(err error) bool {
	var verr *models.ValidationError
	return errors.As(err, &verr)
}

// IsNotFound reports whether err is, or wraps, a *models.NotFoundError.
func IsNotFound(err error) bool {
	var nf *models.NotFoundError
	return errors.As(err, &nf)
}

// IsInvalidTransition reports whether err is, or wraps, a *models.InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var it *models.InvalidTransitionError
	return errors.As(err, &it)
}
