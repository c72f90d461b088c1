package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skirkby/node-auth2-guided-sessions/internal/logger"
)

const bagKey = "session.bag"

// FromContext returns the request's session bag. The middleware
// guarantees one exists for every routed request, so callers never get
// nil; running without the middleware installed is a programming error.
func FromContext(c *gin.Context) *Bag {
	v, ok := c.Get(bagKey)
	if !ok {
		panic("session: middleware not installed")
	}
	return v.(*Bag)
}

// Middleware resolves a session bag for every request and, at response
// time, persists it and issues a cookie — but only if the bag was
// mutated. An untouched bag leaves no record and no cookie behind, so
// merely visiting the server never creates server-side state.
type Middleware struct {
	store  Store
	secret string
	ttl    time.Duration
	cookie CookieOptions
}

func NewMiddleware(store Store, secret string, ttl time.Duration, cookie CookieOptions) *Middleware {
	return &Middleware{
		store:  store,
		secret: secret,
		ttl:    ttl,
		cookie: cookie.normalize(),
	}
}

// Handler returns the gin middleware. It must be installed before any
// route that touches sessions, including the access guard.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		bag, err := m.resolve(c)
		if err != nil {
			logger.Error("session resolve failed", map[string]any{
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "session unavailable"})
			return
		}

		c.Set(bagKey, bag)

		// Cookie and store writes have to land before the first byte of
		// the body, so the flush is hooked into the response writer
		// rather than run after the handler chain.
		w := &sessionWriter{
			ResponseWriter: c.Writer,
			mw:             m,
			ctx:            c.Request.Context(),
			bag:            bag,
		}
		c.Writer = w

		c.Next()

		// Handlers that never write a body still need the flush.
		w.flush()
	}
}

// resolve turns the inbound cookie (if any) into a bag. A missing,
// unverifiable, or expired session yields a fresh, empty, unpersisted
// bag with a new ID. A store failure is not "no session": it surfaces
// as an error so the caller can refuse the request instead of treating
// a logged-in user as anonymous.
func (m *Middleware) resolve(c *gin.Context) (*Bag, error) {
	if cookie, err := c.Request.Cookie(m.cookie.Name); err == nil && cookie.Value != "" {
		id, err := VerifyValue(cookie.Value, m.secret)
		if err == nil {
			rec, err := m.store.Load(c.Request.Context(), id)
			if err != nil {
				return nil, fmt.Errorf("session: load failed: %w", err)
			}
			if rec != nil && time.Now().Before(rec.ExpiresAt) {
				return restoreBag(rec), nil
			}
		}
	}

	id, err := GenerateID()
	if err != nil {
		return nil, err
	}
	return newBag(id), nil
}

// sessionWriter intercepts the first write so the session flush happens
// while headers can still be added.
type sessionWriter struct {
	gin.ResponseWriter
	mw   *Middleware
	ctx  context.Context
	bag  *Bag
	done bool
}

func (w *sessionWriter) WriteHeader(code int) {
	w.flush()
	w.ResponseWriter.WriteHeader(code)
}

func (w *sessionWriter) WriteHeaderNow() {
	w.flush()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	w.flush()
	return w.ResponseWriter.Write(b)
}

func (w *sessionWriter) WriteString(s string) (int, error) {
	w.flush()
	return w.ResponseWriter.WriteString(s)
}

func (w *sessionWriter) flush() {
	if w.done {
		return
	}
	w.done = true

	if w.bag.Destroyed() {
		ClearCookie(w.ResponseWriter, w.mw.cookie)
		return
	}

	if !w.bag.Dirty() {
		return
	}

	rec := Record{
		ID:        w.bag.id,
		ExpiresAt: time.Now().Add(w.mw.ttl),
		Data:      w.bag.data,
	}
	if err := w.mw.store.Save(w.ctx, rec, w.mw.ttl); err != nil {
		// The handler already chose its response; the failed save can
		// only be logged. No cookie for a session that was never stored.
		logger.Error("session save failed", map[string]any{
			"session_id": w.bag.id,
			"error":      err.Error(),
		})
		return
	}

	SetCookie(w.ResponseWriter, SignID(w.bag.id, w.mw.secret), w.mw.ttl, w.mw.cookie)
}
