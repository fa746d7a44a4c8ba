package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/jwt"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/redis"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/response"
)

// JWTAuth autenticação via Authorization: Bearer <token>.
// cache pode ser nil; nesse caso a blacklist de logout não é consultada.
func JWTAuth(jwtMgr *jwt.Manager, cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "cabeçalho de autenticação ausente")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "cabeçalho de autenticação inválido")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token inválido ou expirado")
			c.Abort()
			return
		}

		if cache != nil {
			blacklisted, err := cache.IsBlacklisted(c.Request.Context(), claims.ID)
			// erro de Redis degrada para aceitar o token
			if err == nil && blacklisted {
				response.Unauthorized(c, 10002, "token revogado")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("matricula", claims.Matricula)
		c.Set("role", claims.Role)
		c.Set("token_jti", claims.ID)
		c.Set("token_exp", claims.ExpiresAt.Time)

		c.Next()
	}
}

// RoleAuth autorização por papel: exige um dos papéis informados
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "não autenticado")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "acesso negado")
		c.Abort()
	}
}
