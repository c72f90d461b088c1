package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/skirkby/node-auth2-guided-sessions/internal/session"
)

const guardCookieName = "test_session"

func newGuardedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	mw := session.NewMiddleware(
		session.NewRedisStore(client),
		"test-secret",
		time.Hour,
		session.CookieOptions{Name: guardCookieName},
	)

	r := gin.New()
	r.Use(mw.Handler())

	r.POST("/login-as-bool", func(c *gin.Context) {
		session.FromContext(c).Set(session.KeyAuthenticated, true)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.POST("/login-as-string", func(c *gin.Context) {
		// A truthy-looking value that is not the boolean true.
		session.FromContext(c).Set(session.KeyAuthenticated, "true")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/protected", RequireAuthenticated(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"secret": "biscuit"})
	})

	return r
}

func request(r *gin.Engine, method, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func issuedCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == guardCookieName {
			return c
		}
	}
	return nil
}

func TestGuardRefusesWithoutSession(t *testing.T) {
	r := newGuardedRouter(t)

	w := request(r, http.MethodGet, "/protected")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGuardPassesAuthenticatedSession(t *testing.T) {
	r := newGuardedRouter(t)

	w := request(r, http.MethodPost, "/login-as-bool")
	cookie := issuedCookie(w)
	if cookie == nil {
		t.Fatal("expected a session cookie")
	}

	w = request(r, http.MethodGet, "/protected", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestGuardRequiresStrictlyBooleanTrue(t *testing.T) {
	r := newGuardedRouter(t)

	w := request(r, http.MethodPost, "/login-as-string")
	cookie := issuedCookie(w)
	if cookie == nil {
		t.Fatal("expected a session cookie")
	}

	w = request(r, http.MethodGet, "/protected", cookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
