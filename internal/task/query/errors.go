package query

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid status filter")
	ErrInvalidDate     = errors.New("invalid date filter")
	ErrInvalidRange    = errors.New("invalid date range")
	ErrInvalidPriority = errors.New("invalid priority filter")
	ErrInvalidSort     = errors.New("invalid sort mode")
)
