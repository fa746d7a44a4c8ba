package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/config"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/api/handler"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/api/middleware"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/jwt"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/redis"
)

// Setup inicializa o roteador Gin
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	if !cfg.Server.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// ── middlewares globais ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Upload.MaxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// autenticação (sem token)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
		}

		// rotas autenticadas
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/senha", h.Auth.ChangePassword)

			// solicitações de alteração
			solicitacoes := authorized.Group("/solicitacoes")
			{
				solicitacoes.GET("", h.Solicitacao.List)
				solicitacoes.GET("/:id", h.Solicitacao.Get)
				solicitacoes.POST("", h.Solicitacao.Criar)
				solicitacoes.PUT("/:id/avaliar",
					middleware.RoleAuth(model.RoleAnalista, model.RoleGerencia),
					h.Solicitacao.Avaliar)
			}

			// escalas
			escalas := authorized.Group("/escalas")
			{
				escalas.GET("", h.Escala.Listar)
				escalas.GET("/filtros", h.Escala.Filtros)
				escalas.PUT("/alterar",
					middleware.RoleAuth(model.RoleAnalista, model.RoleGerencia),
					h.Escala.Alterar)
				escalas.POST("/upload",
					middleware.RoleAuth(model.RoleAnalista, model.RoleGerencia),
					h.Escala.Upload)
				escalas.GET("/export", h.Escala.Export)
			}

			// painel
			authorized.GET("/dashboard/stats", h.Dashboard.Stats)

			// notificações
			notificacoes := authorized.Group("/notificacoes")
			{
				notificacoes.GET("", h.Notificacao.Listar)
				notificacoes.PUT("/:id/lida", h.Notificacao.MarcarLida)
			}
		}
	}

	return r
}
