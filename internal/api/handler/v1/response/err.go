package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInternalServerError = "Something went wrong on our side."

// Err renders as {"error": {"<Title>": "<Message>"}}.
type Err struct {
	HTTPStatusCode int    `json:"-"`
	Title          string `json:"-"`
	Message        string `json:"-"`

	// Err is logged, never rendered.
	Err error `json:"-"`
}

func (e *Err) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return e.Message
}

func (e *Err) Body() gin.H {
	return gin.H{
		"error": gin.H{
			e.Title: e.Message,
		},
	}
}

// RenderErr aborts the request with e. Server-side failures are logged with
// the request id.
func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error(
			e.Message,
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(e.Err),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e.Body())
}

func newErr(status int, message string, err error) *Err {
	return &Err{
		HTTPStatusCode: status,
		Title:          http.StatusText(status),
		Message:        message,
		Err:            err,
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err.Error(), err)
}

func ErrPermissionDenied(message string) *Err {
	return newErr(http.StatusForbidden, message, nil)
}

func ErrNotFound(message string) *Err {
	return newErr(http.StatusNotFound, message, nil)
}

func ErrConflict(message string, err error) *Err {
	return newErr(http.StatusConflict, message, err)
}

func ErrServiceUnavailable(err error) *Err {
	return newErr(http.StatusServiceUnavailable, "The database is unreachable.", err)
}

func ErrInternalServerError(err error) *Err {
	return newErr(http.StatusInternalServerError, msgInternalServerError, err)
}
