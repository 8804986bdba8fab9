package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	KindValidation = "validation"
	KindNotFound   = "not_found"
	KindUpstream   = "upstream"
	KindInternal   = "internal"
)

// Kind names the taxonomy entry of err. Business errors report their own code.
func Kind(err error) string {
	var be BusinessError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &be):
		return be.Code
	case IsValidation(err):
		return KindValidation
	case IsUpstream(err):
		return KindUpstream
	default:
		return KindInternal
	}
}

// Status collapses every failure to 400 except lookups of unknown resources.
func Status(err error) int {
	if Kind(err) == KindNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// Fail logs err with its kind and aborts without echoing any detail.
func Fail(c *gin.Context, log logrus.FieldLogger, err error) {
	status := Status(err)
	log.WithFields(logrus.Fields{
		"kind":   Kind(err),
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"status": status,
	}).WithError(err).Error("request failed")

	if status == http.StatusNotFound {
		NotFound(c)
		return
	}
	c.AbortWithStatus(status)
}

// NotFound is the response for unknown routes and unknown table ids.
func NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, "Not Found")
	c.Abort()
}
