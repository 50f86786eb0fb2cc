package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "camping-fun/server/pkg/errors"
	"camping-fun/server/pkg/response"
)

const msgInvalidBody = "invalid request body"

// MustGetID parses the :id path parameter. Anything that is not a positive
// integer cannot name a row, so it is answered with 404 and ok=false.
func MustGetID(c *gin.Context, notFound string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		response.NotFound(c, notFound)
		return 0, false
	}
	return uint(id), true
}

// MustBindJSON decodes the body into req, answering 400 when it is not
// valid JSON for that shape and 413 when it exceeds the body limit.
func MustBindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	_ = c.Error(err)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.RequestEntityTooLarge(c)
		return false
	}
	response.BadRequest(c, msgInvalidBody)
	return false
}

// respondValidation writes a 400 when err carries validation failures.
func respondValidation(c *gin.Context, err error) bool {
	msgs, ok := apperrors.ValidationMessages(err)
	if !ok {
		return false
	}
	response.BadRequest(c, msgs...)
	return true
}
