package middleware

import (
	"net/http"

	"heartlink/internal/services"
	"heartlink/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is the token verification gate: it decodes the session
// cookie and loads the authenticated user id into the request context.
func AuthMiddleware(issuer *services.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(services.SessionCookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Unauthorized", "UNAUTHORIZED"))
			c.Abort()
			return
		}

		userID, err := issuer.Parse(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Unauthorized", "UNAUTHORIZED"))
			c.Abort()
			return
		}

		ctx := services.WithUserContext(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
