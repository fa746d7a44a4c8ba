package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/dto"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/repository"
)

// DashboardService contadores do painel inicial
type DashboardService interface {
	Stats(ctx context.Context, usuarioID string, mes, ano int) (*dto.DashboardStats, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService cria o DashboardService
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

func (s *dashboardService) Stats(ctx context.Context, usuarioID string, mes, ano int) (*dto.DashboardStats, error) {
	colaboradores, err := s.repo.Colaborador.Count(ctx)
	if err != nil {
		s.logger.Error("falha ao contar colaboradores", zap.Error(err))
		return nil, err
	}

	pendentes, err := s.repo.Solicitacao.CountPendentes(ctx)
	if err != nil {
		s.logger.Error("falha ao contar solicitações pendentes", zap.Error(err))
		return nil, err
	}

	alteracoes, err := s.repo.UsuarioAlteracao.SumByMesAno(ctx, mes, ano)
	if err != nil {
		s.logger.Error("falha ao somar alterações do mês", zap.Error(err))
		return nil, err
	}

	escalas, err := s.repo.Escala.CountByMesAno(ctx, mes, ano)
	if err != nil {
		s.logger.Error("falha ao contar escalas do mês", zap.Error(err))
		return nil, err
	}

	naoLidas, err := s.repo.Notificacao.CountNaoLidas(ctx, usuarioID)
	if err != nil {
		s.logger.Error("falha ao contar notificações não lidas", zap.Error(err))
		return nil, err
	}

	return &dto.DashboardStats{
		TotalColaboradores:    colaboradores,
		SolicitacoesPendentes: pendentes,
		AlteracoesNoMes:       alteracoes,
		EscalasNoMes:          escalas,
		NotificacoesNaoLidas:  naoLidas,
	}, nil
}
