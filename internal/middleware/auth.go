package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-booking/internal/domain/identity"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
)

const (
	ContextSubject = "subject"
	ContextEmail   = "email"
)

// AuthMiddleware requires "Authorization: Bearer <token>" accepted by
// verifier. Rejections use the same opaque 400 as every other failure.
func AuthMiddleware(verifier identity.TokenVerifier, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Fail(c, log, identity.ErrInvalidCredentials)
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Fail(c, log, err)
			return
		}

		c.Set(ContextSubject, claims.Subject)
		c.Set(ContextEmail, claims.Email)

		c.Next()
	}
}
