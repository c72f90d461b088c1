package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/skirkby/node-auth2-guided-sessions/internal/auth/credentials"
	"github.com/skirkby/node-auth2-guided-sessions/internal/session"
)

// Handler owns the authentication endpoints. It talks to the credential
// service for register/login and to the session store for logout; all
// other session effects go through the request's bag.
type Handler struct {
	creds    *credentials.Service
	sessions session.Store
}

func NewHandler(creds *credentials.Service, sessions session.Store) *Handler {
	return &Handler{
		creds:    creds,
		sessions: sessions,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	auth := r.Group("/auth")

	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.DELETE("/logout", h.Logout)
}
