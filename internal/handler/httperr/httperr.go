package httperr

import (
	"net/http"

	"mrbs/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps the error taxonomy to a status. Only client-safe text reaches
// the body; the raw error goes to c.Errors for the request log.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrAuthentication):
		return http.StatusUnauthorized, "Authentication required"
	case errs.Is(err, errs.ErrValidation):
		if reason, ok := errs.ValidationReason(err); ok {
			return http.StatusBadRequest, reason
		}
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, kindMessage(err, "Conflict")
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, kindMessage(err, "Not found")
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func kindMessage(err error, fallback string) string {
	if msg, ok := errs.KindMessage(err); ok {
		return msg
	}
	return fallback
}
