package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-management/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Error sends the error envelope. HTTPError values keep their status and code,
// everything else becomes UNKNOWN_ERROR.
func Error(c *gin.Context, err error) {
	ErrorWithTranscription(c, err, "")
}

// ErrorWithTranscription sends the error envelope and echoes the recognized
// transcription so the caller does not lose it.
func ErrorWithTranscription(c *gin.Context, err error, transcription string) {
	he, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		he = pkgErrors.ErrUnknown
	}
	c.AbortWithStatusJSON(he.Status, ErrorResp{
		Error:         ErrorBody{Code: he.Code, Message: he.Message},
		Transcription: transcription,
	})
}

// InternalError sends 500 without leaking err.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResp{
		Error: ErrorBody{Code: pkgErrors.ErrUnknown.Code, Message: DefaultErrorMessage},
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	Error(c, pkgErrors.ErrUnauthorized)
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	Error(c, pkgErrors.ErrRateLimited)
}
