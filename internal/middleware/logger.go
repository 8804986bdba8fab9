package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const ContextRequestID = "requestID"

// RequestLogger tags each request with an id and logs one line when it ends.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Header("X-Request-Id", id)

		c.Next()

		entry := log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		if c.Writer.Status() >= 500 {
			entry.Error("request")
			return
		}
		entry.Info("request")
	}
}

// Recovery turns a panic into the generic 400 response.
func Recovery(log logrus.FieldLogger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"panic":  recovered,
		}).Error("panic recovered")
		c.AbortWithStatus(http.StatusBadRequest)
	})
}
