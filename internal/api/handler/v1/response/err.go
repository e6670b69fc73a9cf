package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int `json:"-"`

	Msg    string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (e *Err) Error() string {
	return e.Msg
}

// ErrBadRequest surfaces malformed input. Validation failures carry the
// field-level errors reported by ozzo.
func ErrBadRequest(err error) *Err {
	e := &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		e.Msg = "validation failed"
		e.Fields = make(map[string]string, len(verrs))
		for field, ferr := range verrs {
			e.Fields[field] = ferr.Error()
		}
	}

	return e
}

func ErrNotFound(what, key string, value interface{}) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v not found (%v=%v)", what, key, value),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        err.Error(),
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        err.Error(),
	}
}

// ErrInternalServerError logs the wrapped cause and returns an opaque message,
// so store internals never leak to the client.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "something went wrong",
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}
