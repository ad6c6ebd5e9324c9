// Package response holds the envelope every HTTP endpoint answers with.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "villa-service/pkg/errors"
)

// APIResponse is the uniform response envelope. It is built fresh for each
// request and written exactly once.
type APIResponse struct {
	Result        any      `json:"result"`
	StatusCode    int      `json:"statusCode"`
	IsSuccess     bool     `json:"isSuccess"`
	ErrorMessages []string `json:"errorMessages"`
}

// New returns a successful, empty envelope.
func New() *APIResponse {
	return &APIResponse{
		StatusCode:    http.StatusOK,
		IsSuccess:     true,
		ErrorMessages: []string{},
	}
}

// Succeed records a successful outcome. result may be nil for operations
// that return no data.
func (r *APIResponse) Succeed(status int, result any) {
	r.StatusCode = status
	r.IsSuccess = true
	r.Result = result
}

// Fail records a failed outcome. At least one message is always kept.
func (r *APIResponse) Fail(status int, messages ...string) {
	if len(messages) == 0 {
		messages = []string{http.StatusText(status)}
	}
	r.StatusCode = status
	r.IsSuccess = false
	r.Result = nil
	r.ErrorMessages = messages
}

// FromError records a failure derived from err's classification.
func (r *APIResponse) FromError(err error) {
	r.Fail(apperrors.StatusCode(err), apperrors.Messages(err)...)
}

// HTTPStatus is the status line the envelope is sent with. Client errors
// use the envelope's own code. Internal faults are sent as 200 and the
// failure is reported only through statusCode and isSuccess.
func (r *APIResponse) HTTPStatus() int {
	if r.StatusCode >= http.StatusInternalServerError {
		return http.StatusOK
	}
	return r.StatusCode
}

// Write serializes the envelope with HTTPStatus as the HTTP status.
func (r *APIResponse) Write(c *gin.Context) {
	c.JSON(r.HTTPStatus(), r)
}

// Abort writes a failure envelope and stops the handler chain. It is used
// by middleware that rejects a request before it reaches a handler.
func Abort(c *gin.Context, status int, messages ...string) {
	resp := New()
	resp.Fail(status, messages...)
	c.AbortWithStatusJSON(resp.StatusCode, resp)
}
