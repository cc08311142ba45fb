package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	Err        error  `json:"-"`
	Status     string `json:"status" example:"error"`
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message"`
}

func (e *Err) Error() string {
	return e.Message
}

// RenderErr aborts the request with the error envelope. Internal errors are
// logged with the request id first.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("internal server error",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(err.Err))
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func newErr(err error, statusCode int, message string) *Err {
	return &Err{
		Err:        err,
		Status:     statusError,
		StatusCode: statusCode,
		Message:    message,
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(err, http.StatusBadRequest, err.Error())
}

func ErrNotFound(entity, field string, value interface{}) *Err {
	return newErr(nil, http.StatusNotFound, fmt.Sprintf("%v with %v %v not found", entity, field, value))
}

func ErrResourceNotFound(err error, message string) *Err {
	return newErr(err, http.StatusNotFound, message)
}

func ErrPermissionDenied(err error) *Err {
	return newErr(err, http.StatusForbidden, "you don't have permission to perform this action")
}

func ErrUnauthorized(err error) *Err {
	return newErr(err, http.StatusUnauthorized, "missing or invalid access token")
}

func ErrWrongCredentials(err error) *Err {
	return newErr(err, http.StatusUnauthorized, "wrong username or password")
}

func ErrConflict(err error) *Err {
	return newErr(err, http.StatusConflict, err.Error())
}

// ErrInternalServerError keeps the wrapped chain for the log and hides it
// from the client.
func ErrInternalServerError(err error) *Err {
	return newErr(err, http.StatusInternalServerError, "internal server error")
}
