package booking

import "errors"

var (
	ErrValidation              = errors.New("invalid booking request")
	ErrNotFound                = errors.New("booking or inventory not found")
	ErrForbidden               = errors.New("booking belongs to another user")
	ErrSeatsUnavailable        = errors.New("not enough seats available")
	ErrRoomsUnavailable        = errors.New("not enough rooms available")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
