package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skirkby/node-auth2-guided-sessions/internal/logger"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a credential so later logins have a digest to verify
// against. It has no session side effects: registering does not log the
// user in.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}

	cred, err := h.creds.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Error("registration failed", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cred)
}
