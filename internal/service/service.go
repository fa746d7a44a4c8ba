package service

import (
	"go.uber.org/zap"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/repository"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/jwt"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/redis"
)

// Service agrega todos os serviços do sistema
type Service struct {
	Auth        AuthService
	Solicitacao SolicitacaoService
	Escala      EscalaService
	Import      ImportService
	Export      ExportService
	Dashboard   DashboardService
	Notificacao NotificacaoService
}

// NewService cria o agregado de serviços. cache pode ser nil quando o
// Redis está indisponível.
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	cache *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(repo, jwtMgr, cache, logger),
		Solicitacao: NewSolicitacaoService(repo, logger),
		Escala:      NewEscalaService(repo, logger),
		Import:      NewImportService(repo, logger),
		Export:      NewExportService(repo, logger),
		Dashboard:   NewDashboardService(repo, logger),
		Notificacao: NewNotificacaoService(repo, logger),
	}
}
