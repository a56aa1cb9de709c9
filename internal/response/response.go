package response

import (
	"errors"
	"net/http"

	"github.com/Kilat-Pet-Delivery/service-routing/internal/domain"
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON envelope for every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// BadRequest writes a 400 with message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// InternalError writes a 500 with message.
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: message})
}

// Error maps a domain error onto its HTTP status.
func Error(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		BadRequest(c, vErr.Message)
		return
	}

	var uErr *domain.UpstreamError
	if errors.As(err, &uErr) {
		InternalError(c, uErr.Error())
		return
	}

	_ = c.Error(err)
	InternalError(c, "internal server error")
}

// RawJSON writes body verbatim as application/json.
func RawJSON(c *gin.Context, status int, body []byte) {
	c.Data(status, "application/json; charset=utf-8", body)
}
