package httperr

import (
	"github.com/gin-gonic/gin"
)

// Machine-readable error kinds carried in error.code
const (
	CodeValidation        = "validation_error"
	CodeDuplicate         = "duplicate_submission"
	CodeTransientConflict = "transient_conflict"
	CodeUnauthorized      = "unauthorized"
	CodeIdentityMismatch  = "identity_mismatch"
	CodeNotFound          = "not_found"
	CodeInternal          = "internal"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	resp.Error.Code = code
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, code, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
