package middleware

import (
	"feastly.backend/internal/interfaces/graphql"
	"github.com/gin-gonic/gin"
)

// TokenHeader is the header clients place their JWT in.
const TokenHeader = "x-jwt"

// TokenMiddleware copies the raw token from the x-jwt header onto the
// request context. It never rejects a request: authentication decisions
// belong to the access guard, which runs per GraphQL operation.
func TokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := c.GetHeader(TokenHeader); token != "" {
			c.Request = c.Request.WithContext(graphql.WithToken(c.Request.Context(), token))
		}
		c.Next()
	}
}
