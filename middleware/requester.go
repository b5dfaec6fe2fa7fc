package middleware

import (
	"net/http"
	"strings"

	"skillbridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequesterHeader identifies the acting user. It is trusted as-is.
const RequesterHeader = "X-User-ID"

// RequireRequester rejects requests without a requester id and stores the id
// on both the gin context ("requesterID") and the request context.
func RequireRequester() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequesterHeader))
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing " + RequesterHeader + " header"})
			return
		}
		c.Set("requesterID", id)
		c.Request = c.Request.WithContext(utils.WithRequesterID(c.Request.Context(), id))
		c.Set("logger", getLogger(c).With(zap.String("requesterId", id)))
		c.Next()
	}
}
