package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/utils"
)

// SubjectIDKey is the gin context key holding the authenticated subject ID.
const SubjectIDKey = "subject_id"

// subjectIDHeader carries the caller identity asserted by the auth gateway
// in front of this service. The gateway validates the session token and
// forwards only the stable subject identifier.
const subjectIDHeader = "X-Subject-ID"

// RequireIdentity returns a middleware that rejects requests without an
// asserted identity and stores the subject ID in the request context.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		subjectID := c.GetHeader(subjectIDHeader)
		if subjectID == "" {
			utils.ErrorResponseWithError(c, apperrors.NewUnauthorizedError("missing identity"))
			c.Abort()
			return
		}

		c.Set(SubjectIDKey, subjectID)
		c.Next()
	}
}

// SubjectID reads the authenticated subject ID from the request context.
func SubjectID(c *gin.Context) string {
	return c.GetString(SubjectIDKey)
}
