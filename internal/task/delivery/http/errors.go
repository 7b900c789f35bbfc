package http

import (
	"errors"
	"net/http"

	"task-management/internal/task"
	"task-management/internal/task/query"
	pkgErrors "task-management/pkg/errors"
)

var (
	errMalformedBody     = errors.New("malformed body")
	errMalformedID       = errors.New("malformed id")
	errMalformedDeadline = errors.New("malformed deadline")
	errInvalidQueryParam = errors.New("malformed query")
)

var (
	errInvalidContent    = pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_CONTENT", "content must be a non-empty string")
	errInvalidPriority   = pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_PRIORITY", "priority must be 1, 3 or 5")
	errUnsupportedAction = pkgErrors.NewHTTPError(http.StatusBadRequest, "UNSUPPORTED_ACTION", "action must be complete, delete, setPriority or setStatus")
	errInvalidQuery      = pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_QUERY", "invalid query parameter")
	errInvalidID         = pkgErrors.NewHTTPError(http.StatusBadRequest, "INVALID_ID", "invalid task id")
	errTaskNotFound      = pkgErrors.NewHTTPError(http.StatusNotFound, "TASK_NOT_FOUND", "task not found")

	errGetTasksFailed = pkgErrors.NewHTTPError(http.StatusInternalServerError, "GET_TASKS_FAILED", "failed to load tasks")
	errGetTodayFailed = pkgErrors.NewHTTPError(http.StatusInternalServerError, "GET_TODAY_TASKS_FAILED", "failed to load today's tasks")
	errCreateFailed   = pkgErrors.NewHTTPError(http.StatusInternalServerError, "CREATE_TASK_FAILED", "failed to create task")
	errPatchFailed    = pkgErrors.NewHTTPError(http.StatusInternalServerError, "PATCH_TASK_FAILED", "failed to update task")
	errDeleteFailed   = pkgErrors.NewHTTPError(http.StatusInternalServerError, "DELETE_TASK_FAILED", "failed to delete task")
	errBatchFailed    = pkgErrors.NewHTTPError(http.StatusInternalServerError, "BATCH_FAILED", "failed to apply batch")
)

// mapError translates task errors into the wire taxonomy. Anything that is
// not a validation or ownership error is reported as failed, the code
// depending on the operation.
func (h *handler) mapError(err error, failed *pkgErrors.HTTPError) error {
	switch {
	case errors.Is(err, errMalformedBody),
		errors.Is(err, errMalformedDeadline),
		errors.Is(err, task.ErrEmptyPatch),
		errors.Is(err, task.ErrEmptyIDs):
		return pkgErrors.ErrInvalidBody
	case errors.Is(err, errMalformedID):
		return errInvalidID
	case errors.Is(err, errInvalidQueryParam),
		errors.Is(err, query.ErrInvalidStatus),
		errors.Is(err, query.ErrInvalidDate),
		errors.Is(err, query.ErrInvalidRange),
		errors.Is(err, query.ErrInvalidPriority),
		errors.Is(err, query.ErrInvalidSort):
		return errInvalidQuery
	case errors.Is(err, task.ErrInvalidContent):
		return errInvalidContent
	case errors.Is(err, task.ErrInvalidPriority):
		return errInvalidPriority
	case errors.Is(err, task.ErrUnsupportedAction):
		return errUnsupportedAction
	case errors.Is(err, task.ErrTaskNotFound):
		return errTaskNotFound
	default:
		return failed
	}
}
