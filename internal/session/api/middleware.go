package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/storefront-bff/internal/platform/logger"
	"github.com/ridloal/storefront-bff/internal/session/domain"
	"github.com/ridloal/storefront-bff/internal/session/service"
)

// TokenHeader dipakai client non-browser sebagai pengganti cookie.
const TokenHeader = "X-Session-Token"

const sessionKey = "storefront.session"

var ErrNoSession = errors.New("no session in request context: session middleware not installed")

// Middleware memastikan setiap request punya session, lalu memperbarui cookie-nya.
func Middleware(svc service.SessionService, cookieName string, maxAge time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			token, _ = c.Cookie(cookieName)
		}

		sess, err := svc.Resolve(c.Request.Context(), token)
		if err != nil {
			logger.Error("Session Mw: resolve failed", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
			return
		}

		signed, err := svc.Token(sess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session token"})
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, signed, int(maxAge.Seconds()), "/", "", false, true)
		c.Header(TokenHeader, signed)

		Attach(c, sess)
		c.Next()
	}
}

// Attach memasang session ke gin context.
func Attach(c *gin.Context, sess *domain.Session) {
	c.Set(sessionKey, sess)
}

// FromContext mengambil session yang dipasang Middleware.
func FromContext(c *gin.Context) (*domain.Session, error) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, ErrNoSession
	}
	sess, ok := v.(*domain.Session)
	if !ok || sess == nil {
		return nil, ErrNoSession
	}
	return sess, nil
}

// WithSession dipakai handler: kalau session tidak ada, request dijawab 500.
func WithSession(c *gin.Context) (*domain.Session, bool) {
	sess, err := FromContext(c)
	if err != nil {
		logger.Error("Handler: session missing", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return sess, true
}
