package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pine007/pi-todo/internal/core/domain"
	"github.com/pine007/pi-todo/internal/core/ports"
	"github.com/pine007/pi-todo/pkg/apierrors"
)

const identityKey = "identity"

const bearerPrefix = "Bearer "

// AuthRequired extracts and verifies the bearer token before any resource
// handler runs. Missing, malformed and expired tokens all get the same 401
// body; the response never says which check failed.
func AuthRequired(tokens ports.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(apierrors.MsgUnauthenticated, lang),
			)
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		identity, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(apierrors.MsgUnauthenticated, lang),
			)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// GetIdentity returns the identity injected by AuthRequired. Handlers must
// use this, never a user id from the request body.
func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := value.(domain.Identity)
	return identity, ok
}
