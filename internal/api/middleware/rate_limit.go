package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/redis"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/response"
)

// RateLimit limite de requisições por IP e rota em janela fixa no Redis.
// rdb nil ou indisponível degrada para liberar a requisição.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "muitas requisições, tente novamente em instantes")
			c.Abort()
			return
		}

		c.Next()
	}
}
