package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skirkby/node-auth2-guided-sessions/internal/logger"
	"github.com/skirkby/node-auth2-guided-sessions/internal/session"
)

// Logout destroys the session record and marks the bag destroyed so the
// middleware clears the cookie. Destroying an ID that was never
// persisted is a no-op, so logging out with a fresh session still
// succeeds.
func (h *Handler) Logout(c *gin.Context) {
	sess := session.FromContext(c)

	if err := h.sessions.Destroy(c.Request.Context(), sess.ID()); err != nil {
		logger.Error("session destroy failed", map[string]any{
			"session_id": sess.ID(),
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{"message": "sorry, could not log you out"})
		return
	}

	sess.MarkDestroyed()

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
