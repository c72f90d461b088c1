package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skirkby/node-auth2-guided-sessions/internal/auth/credentials"
	"github.com/skirkby/node-auth2-guided-sessions/internal/logger"
)

// Handler serves the session-gated user listing, the example consumer of
// the access guard.
type Handler struct {
	creds *credentials.Service
}

func NewHandler(creds *credentials.Service) *Handler {
	return &Handler{creds: creds}
}

func (h *Handler) RegisterRoutes(r gin.IRouter, guard gin.HandlerFunc) {
	r.GET("/users", guard, h.List)
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.creds.List(c.Request.Context())
	if err != nil {
		logger.Error("user listing failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not load users"})
		return
	}

	if users == nil {
		users = []credentials.Credential{}
	}
	c.JSON(http.StatusOK, users)
}
