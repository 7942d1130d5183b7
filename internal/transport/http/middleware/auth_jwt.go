package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/protim1451/task-12-server/internal/core/auth"
	"github.com/protim1451/task-12-server/internal/domain"
	resp "github.com/protim1451/task-12-server/internal/transport/http/response"
)

const keyClaims = "claims"

// AuthJWT rejects requests without a valid Bearer token before anything
// touches storage. The decoded claims land in the context for handlers.
func AuthJWT(t *auth.Tokener) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.NewErr("unauthorized access"))
			return
		}
		claims, err := t.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.NewErr("unauthorized access"))
			return
		}
		c.Set(keyClaims, claims)
		c.Next()
	}
}

// RequireAdmin runs after AuthJWT and trusts its claims. The role comes
// from storage, not the token, so a promotion takes effect on the next
// request rather than the next login.
func RequireAdmin(users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.NewErr("unauthorized access"))
			return
		}
		u, err := users.FindByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp.NewErr("internal error"))
			return
		}
		if u == nil || !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, resp.NewErr("forbidden access"))
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the claims set by AuthJWT, or nil on an unguarded
// route.
func ClaimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(keyClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
