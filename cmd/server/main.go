package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/config"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/api/handler"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/api/router"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/repository"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/service"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/database"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/jwt"
	applogger "github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/logger"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/redis"
)

func main() {
	// 1. configuração
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "falha ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "falha ao inicializar logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("iniciando aplicação",
		zap.Int("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env),
	)

	// 3. banco de dados
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("falha ao conectar no banco", zap.Error(err))
	}

	// 3.1 migrações
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("falha ao obter sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("falha ao migrar o banco", zap.Error(err))
	}

	// 4. Redis (opcional: sem ele o logout e o rate limit degradam)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis indisponível, blacklist de tokens e rate limit desativados", zap.Error(err))
		rdb = nil
	}

	// 5. JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. injeção de dependências: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(cfg, svc)

	// 7. rotas
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. servidor HTTP com desligamento gracioso
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP no ar", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("servidor HTTP falhou", zap.Error(err))
		}
	}()

	// 9. sinais do sistema
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("sinal de desligamento recebido", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("falha no desligamento do servidor", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("servidor encerrado")
}
