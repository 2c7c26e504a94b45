package middleware

import (
	"net/http"
	"strings"

	"anoa.com/casetrack/pkg/auth"
	"anoa.com/casetrack/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokens *auth.TokenManager
}

func NewAuthMiddleware(tokens *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// RequireAuth rejects requests without a valid bearer credential.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "authorization required")
			return
		}

		identity, err := m.tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, err.Error())
			return
		}

		response.SetIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid credential is present and never rejects.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			if identity, err := m.tokens.Parse(tokenString); err == nil {
				response.SetIdentity(c, identity)
			}
		}
		c.Next()
	}
}

// RequireRole must run after RequireAuth. Callers outside the role set get 403.
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := response.GetIdentity(c)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "user not authenticated")
			return
		}

		if !identity.HasRole(roles...) {
			response.Error(c, http.StatusForbidden, "Forbidden")
			return
		}

		c.Next()
	}
}
