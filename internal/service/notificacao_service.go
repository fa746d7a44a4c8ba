package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/dto"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/repository"
)

var ErrNotificacaoNaoEncontrada = errors.New("notificação não encontrada")

// NotificacaoService listagem e leitura de notificações do usuário
type NotificacaoService interface {
	Listar(ctx context.Context, usuarioID string, req *dto.ListNotificacoesRequest) (*dto.NotificacaoListResponse, error)
	MarcarLida(ctx context.Context, usuarioID, id string) error
}

type notificacaoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotificacaoService cria o NotificacaoService
func NewNotificacaoService(repo *repository.Repository, logger *zap.Logger) NotificacaoService {
	return &notificacaoService{repo: repo, logger: logger}
}

func (s *notificacaoService) Listar(ctx context.Context, usuarioID string, req *dto.ListNotificacoesRequest) (*dto.NotificacaoListResponse, error) {
	itens, total, err := s.repo.Notificacao.ListByUsuario(ctx, usuarioID, req.ApenasNaoLidas, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("falha ao listar notificações", zap.Error(err))
		return nil, err
	}

	naoLidas, err := s.repo.Notificacao.CountNaoLidas(ctx, usuarioID)
	if err != nil {
		s.logger.Error("falha ao contar notificações não lidas", zap.Error(err))
		return nil, err
	}

	return &dto.NotificacaoListResponse{Items: itens, Total: total, NaoLidas: naoLidas}, nil
}

func (s *notificacaoService) MarcarLida(ctx context.Context, usuarioID, id string) error {
	n, err := s.repo.Notificacao.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificacaoNaoEncontrada
		}
		s.logger.Error("falha ao consultar notificação", zap.String("id", id), zap.Error(err))
		return err
	}

	// notificação alheia é tratada como inexistente
	if n.UsuarioID != usuarioID {
		return ErrNotificacaoNaoEncontrada
	}

	return s.repo.Notificacao.MarcarLida(ctx, id)
}
