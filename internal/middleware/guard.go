package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skirkby/node-auth2-guided-sessions/internal/session"
)

// RequireAuthenticated gates routes behind the session's authenticated
// flag. It passes iff the flag is present and strictly true; anything
// else — no cookie, unknown session, expired session, flag missing —
// short-circuits the same way.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.FromContext(c)

		if !sess.GetBool(session.KeyAuthenticated) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "you shall not pass: log in first",
			})
			return
		}

		c.Next()
	}
}
