package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errUnspecified = errors.New("unspecified handler error")

type ErrorBody struct {
	Message  string `json:"message"`
	Code     string `json:"code,omitempty"`
	Field    string `json:"field,omitempty"`
	Expected string `json:"expected,omitempty"`
}

type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	Abort(c, status, err, ErrorBody{Message: msg}, detail)
}

// Abort is AbortWithError with a full error body, for errors the caller can act on.
func Abort(c *gin.Context, status int, err error, body ErrorBody, detail any) {
	if err == nil {
		err = errUnspecified
	}

	resp := Response{Status: status, Error: body, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
