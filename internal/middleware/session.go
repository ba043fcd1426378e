package middleware

import (
	"net/http"

	"freshmart/internal/storefront"
	"freshmart/internal/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const SessionCookie = "freshmart_session"

// Session resolves the caller's storefront session from the session cookie,
// starting a new one when the cookie is missing, invalid or expired, and
// re-issues the cookie so an active shopper keeps their cart.
func Session(svc *storefront.Service, issuer *token.Issuer, secure bool, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID string
		if raw, err := c.Cookie(SessionCookie); err == nil {
			if id, err := issuer.Validate(raw); err == nil {
				sessionID = id
			} else {
				log.Debug("discarding session cookie", zap.Error(err))
			}
		}

		sess, _, err := svc.Open(sessionID)
		if err != nil {
			log.Error("open session failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session unavailable"})
			return
		}

		signed, err := issuer.Issue(sess.ID())
		if err != nil {
			log.Error("issue session token failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session unavailable"})
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, signed, int(issuer.TTL().Seconds()), "/", "", secure, true)

		// Attach session to request context
		c.Set(storefront.ContextKey, sess)
		c.Next()
	}
}
