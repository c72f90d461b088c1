package app

import (
	"context"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/skirkby/node-auth2-guided-sessions/internal/auth/credentials"
	"github.com/skirkby/node-auth2-guided-sessions/internal/auth/handler"
	"github.com/skirkby/node-auth2-guided-sessions/internal/config"
	"github.com/skirkby/node-auth2-guided-sessions/internal/middleware"
	"github.com/skirkby/node-auth2-guided-sessions/internal/session"
	"github.com/skirkby/node-auth2-guided-sessions/internal/users"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	gin.SetMode(cfg.GinMode)

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	credentialStore := credentials.NewPostgresStore(infra.DB)
	credentialService := credentials.NewService(credentialStore)

	sessionMiddleware := session.NewMiddleware(
		sessionStore,
		cfg.SessionSecret,
		cfg.SessionTTL,
		session.CookieOptions{
			Name:   cfg.SessionCookieName,
			Secure: cfg.CookieSecure,
		},
	)

	authHandler := handler.NewHandler(credentialService, sessionStore)
	usersHandler := users.NewHandler(credentialService)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.SecureHeaders())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// Session resolution runs for every request, before any handler.
	router.Use(sessionMiddleware.Handler())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"api": "up"})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected Routes
	// ----------------------------

	usersHandler.RegisterRoutes(router, middleware.RequireAuthenticated())

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if err := infra.Redis.Close(); err != nil {
			return err
		}
		return infra.DB.Close()
	}, nil
}
