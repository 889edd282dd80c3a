package comment

import "errors"

var (
	ErrEmptyBody             = errors.New("comment body can't be empty")
	ErrEmptyParentID         = errors.New("comment parent id can't be empty")
	ErrUnknownParentType     = errors.New("unknown comment parent type")
	ErrParentNotFound        = errors.New("comment parent not found")
	ErrUnauthenticatedCaller = errors.New("caller is not authenticated")
	ErrStorageUnavailable    = errors.New("comment storage unavailable")
	ErrOperationTimedOut     = errors.New("comment operation timed out")

	ErrEmptyParentType     = errors.New("parent type can't be empty")
	ErrDuplicateParentType = errors.New("parent type already registered")
)
