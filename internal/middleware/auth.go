package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-queue/internal/auth"
	"github.com/BruksfildServices01/salon-queue/internal/httperr"
)

const ContextIdentity = "identity"

// AuthMiddleware requires a valid bearer token and stores the identity on
// the gin context.
func AuthMiddleware(guard auth.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, httperr.UnauthorizedErr("missing_authorization_header", "Unauthorized, no token provided."))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, httperr.UnauthorizedErr("invalid_authorization_header", "Authorization must be a Bearer token."))
			return
		}

		id, err := guard.Authenticate(strings.TrimSpace(parts[1]))
		if err != nil {
			abort(c, err)
			return
		}

		c.Set(ContextIdentity, id)
		c.Next()
	}
}

// AdminOnly must run after AuthMiddleware.
func AdminOnly(guard auth.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			abort(c, httperr.UnauthorizedErr("unauthorized", "Unauthorized."))
			return
		}

		isAdmin, err := guard.IsAdmin(c.Request.Context(), id)
		if err != nil {
			abort(c, err)
			return
		}
		if !isAdmin {
			abort(c, httperr.Forbidden("not_admin", "Forbidden, not an admin."))
			return
		}

		c.Next()
	}
}

func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}

func abort(c *gin.Context, err error) {
	httperr.Respond(c, err)
	c.Abort()
}
