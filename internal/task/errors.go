package task

import "errors"

var (
	ErrInvalidContent    = errors.New("content is required")
	ErrTaskNotFound      = errors.New("task not found")
	ErrEmptyPatch        = errors.New("nothing to update")
	ErrEmptyIDs          = errors.New("ids are required")
	ErrInvalidPriority   = errors.New("priority must be one of 1, 3, 5")
	ErrUnsupportedAction = errors.New("unsupported batch action")
)
