package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skirkby/node-auth2-guided-sessions/internal/auth/credentials"
	"github.com/skirkby/node-auth2-guided-sessions/internal/logger"
	"github.com/skirkby/node-auth2-guided-sessions/internal/session"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies the credentials and, only on success, flags the session
// as authenticated. That single mutation is what makes the middleware
// persist a record and issue the cookie.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}

	cred, err := h.creds.Authenticate(c.Request.Context(), req.Username, req.Password)

	if errors.Is(err, credentials.ErrInvalidCredentials) {
		// The bag must stay untouched here. Even setting
		// authenticated=false would mark it dirty, and a dirty bag means
		// a persisted record and a cookie for a login that failed.
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}
	if err != nil {
		logger.Error("login lookup failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sess := session.FromContext(c)
	sess.Set(session.KeyAuthenticated, true)

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome %s! Have a biscuit.", cred.Username),
	})
}
