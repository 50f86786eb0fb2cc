package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Bodies are the bare resource on success. Failures use one of two shapes:
//
//	{"errors": ["...", ...]}  validation and server errors
//	{"error": "..."}          missing resources

// ErrorsBody is the shape of 400 and 500 responses.
type ErrorsBody struct {
	Errors []string `json:"errors"`
}

// ErrorBody is the shape of 404 responses.
type ErrorBody struct {
	Error string `json:"error"`
}

// ── success ──

// OK 200
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Accepted 202, returned by in-place updates.
func Accepted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusAccepted, data)
}

// NoContent 204. No body is written; HTTP does not allow one.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ── failures ──

// BadRequest 400 with one message per failed rule.
func BadRequest(c *gin.Context, messages ...string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorsBody{Errors: nonNil(messages)})
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, ErrorBody{Error: message})
}

// RequestEntityTooLarge 413
func RequestEntityTooLarge(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ErrorsBody{Errors: []string{"request body too large"}})
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorsBody{Errors: []string{"too many requests, slow down"}})
}

// ServiceUnavailable 503
func ServiceUnavailable(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusServiceUnavailable, ErrorsBody{Errors: []string{message}})
}

// InternalError 500. The error is also attached to the gin context so the
// request logger records it.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorsBody{Errors: []string{err.Error()}})
}

func nonNil(messages []string) []string {
	if messages == nil {
		return []string{}
	}
	return messages
}
