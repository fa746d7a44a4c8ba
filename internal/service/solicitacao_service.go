package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/dto"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/repository"
)

var (
	ErrSolicitacaoNaoEncontrada = errors.New("solicitação não encontrada")
	ErrSolicitacaoDuplicada     = errors.New("já existe solicitação pendente para este colaborador nesta data")
)

// JaProcessadaError transição sobre solicitação já decidida. Carrega o
// estado atual para o chamador montar a resposta de conflito.
type JaProcessadaError struct {
	Status string
}

func (e *JaProcessadaError) Error() string {
	return "solicitação já processada com status " + e.Status
}

// SolicitacaoService ciclo de vida das solicitações de alteração
type SolicitacaoService interface {
	Criar(ctx context.Context, solicitanteID, role string, req *dto.CriarSolicitacaoRequest) (*model.SolicitacaoAlteracao, error)
	Avaliar(ctx context.Context, avaliadorID, role, id string, req *dto.AvaliarSolicitacaoRequest) (*model.SolicitacaoAlteracao, error)
	Get(ctx context.Context, userID, role, id string) (*model.SolicitacaoAlteracao, error)
	List(ctx context.Context, userID, role string, req *dto.ListSolicitacoesRequest) (*dto.SolicitacaoListResponse, error)
}

type solicitacaoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSolicitacaoService cria o SolicitacaoService
func NewSolicitacaoService(repo *repository.Repository, logger *zap.Logger) SolicitacaoService {
	return &solicitacaoService{repo: repo, logger: logger}
}

func (s *solicitacaoService) Criar(ctx context.Context, solicitanteID, role string, req *dto.CriarSolicitacaoRequest) (*model.SolicitacaoAlteracao, error) {
	valor, err := ParseValor(req.ValorNovo)
	if err != nil {
		return nil, err
	}
	ano, mes, dia, err := ParseDataEscala(req.DataEscala)
	if err != nil {
		return nil, err
	}

	if !RoleCan(role, OpCriarSolicitacao) {
		return nil, ErrSemPermissao
	}
	if !valorPermitidoParaRole(role, valor) {
		return nil, ErrSemPermissao
	}

	colaborador, err := s.repo.Colaborador.GetByID(ctx, req.ColaboradorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColaboradorNaoEncontrado
		}
		s.logger.Error("falha ao consultar colaborador", zap.Error(err))
		return nil, err
	}

	dataCanonica := FormatDataEscala(ano, mes, dia)

	existe, err := s.repo.Solicitacao.ExistsPendente(ctx, colaborador.ID, dataCanonica)
	if err != nil {
		s.logger.Error("falha ao verificar solicitação pendente", zap.Error(err))
		return nil, err
	}
	if existe {
		return nil, ErrSolicitacaoDuplicada
	}

	// snapshot do dia vigente, se já existir
	var valorAtual *string
	var escalaDiaID *string
	if escala, err := s.repo.Escala.GetByColaboradorMesAno(ctx, colaborador.ID, mes, ano); err == nil {
		if d, err := s.repo.EscalaDia.GetByEscalaDia(ctx, escala.ID, dia); err == nil {
			valorAtual = valorVigente(d)
			escalaDiaID = &d.ID
		}
	}

	sol := &model.SolicitacaoAlteracao{
		SolicitanteID: solicitanteID,
		ColaboradorID: colaborador.ID,
		EscalaDiaID:   escalaDiaID,
		DataEscala:    dataCanonica,
		ValorAtual:    valorAtual,
		ValorNovo:     valor.Audit(),
		Motivo:        req.Motivo,
		Justificativa: req.Justificativa,
		Status:        model.SolicitacaoPendente,
	}

	if err := s.repo.Solicitacao.Create(ctx, sol); err != nil {
		// corrida entre a verificação e o insert: o índice único parcial decide
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSolicitacaoDuplicada
		}
		s.logger.Error("falha ao criar solicitação", zap.Error(err))
		return nil, err
	}

	return sol, nil
}

// Avaliar decide uma solicitação pendente. Aprovação, mutação do dia e
// notificação ao solicitante acontecem na mesma transação.
func (s *solicitacaoService) Avaliar(ctx context.Context, avaliadorID, role, id string, req *dto.AvaliarSolicitacaoRequest) (*model.SolicitacaoAlteracao, error) {
	if !RoleCan(role, OpAvaliarSolicitacao) {
		return nil, ErrSemPermissao
	}

	sol, err := s.repo.Solicitacao.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSolicitacaoNaoEncontrada
		}
		s.logger.Error("falha ao consultar solicitação", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if sol.Status != model.SolicitacaoPendente {
		return nil, &JaProcessadaError{Status: sol.Status}
	}

	aprovar := req.Acao == "aprovar"

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("falha ao abrir transação", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	rollback := func() {
		if tx != nil {
			tx.Rollback()
		}
	}

	agoraTs := agora()
	sol.AprovadoPor = &avaliadorID
	sol.AprovadoEm = &agoraTs
	sol.ComentarioAprovador = req.Comentario

	if aprovar {
		sol.Status = model.SolicitacaoAprovada

		valor, err := ParseValor(sol.ValorNovo)
		if err != nil {
			rollback()
			return nil, err
		}
		ano, mes, dia, err := ParseDataEscala(sol.DataEscala)
		if err != nil {
			rollback()
			return nil, err
		}

		diaEscala, err := aplicarDiaEscala(ctx, txRepo, sol.ColaboradorID, ano, mes, dia, valor, avaliadorID)
		if err != nil {
			rollback()
			s.logger.Error("falha ao aplicar dia aprovado", zap.String("id", id), zap.Error(err))
			return nil, err
		}
		sol.EscalaDiaID = &diaEscala.ID
	} else {
		sol.Status = model.SolicitacaoRejeitada
	}

	decidiu, err := txRepo.Solicitacao.UpdateSePendente(ctx, sol)
	if err != nil {
		rollback()
		s.logger.Error("falha ao atualizar solicitação", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if !decidiu {
		// outro avaliador decidiu entre a leitura e o update
		rollback()
		if atual, err := s.repo.Solicitacao.GetByID(ctx, id); err == nil {
			return nil, &JaProcessadaError{Status: atual.Status}
		}
		return nil, &JaProcessadaError{Status: "desconhecido"}
	}

	notificacao := notificacaoDecisao(sol, aprovar)
	if err := txRepo.Notificacao.Create(ctx, notificacao); err != nil {
		rollback()
		s.logger.Error("falha ao criar notificação", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("falha ao confirmar transação", zap.Error(err))
			return nil, err
		}
	}

	return sol, nil
}

func notificacaoDecisao(sol *model.SolicitacaoAlteracao, aprovada bool) *model.Notificacao {
	nome := sol.ColaboradorID
	if sol.Colaborador != nil {
		nome = sol.Colaborador.Nome
	}
	n := &model.Notificacao{
		UsuarioID:     sol.SolicitanteID,
		SolicitacaoID: &sol.ID,
	}
	if aprovada {
		n.Titulo = "Solicitação aprovada"
		n.Tipo = model.NotificacaoAprovacao
		n.Mensagem = fmt.Sprintf("Sua solicitação de alteração para %s em %s foi aprovada.", nome, sol.DataEscala)
	} else {
		n.Titulo = "Solicitação rejeitada"
		n.Tipo = model.NotificacaoRejeicao
		n.Mensagem = fmt.Sprintf("Sua solicitação de alteração para %s em %s foi rejeitada.", nome, sol.DataEscala)
	}
	return n
}

func (s *solicitacaoService) Get(ctx context.Context, userID, role, id string) (*model.SolicitacaoAlteracao, error) {
	sol, err := s.repo.Solicitacao.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSolicitacaoNaoEncontrada
		}
		s.logger.Error("falha ao consultar solicitação", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	apenasProprias, apenasAprovadas, ok := escopoListagem(role)
	if !ok {
		return nil, ErrSemPermissao
	}
	if apenasProprias && sol.SolicitanteID != userID {
		return nil, ErrSemPermissao
	}
	if apenasAprovadas && sol.Status != model.SolicitacaoAprovada {
		return nil, ErrSemPermissao
	}

	return sol, nil
}

func (s *solicitacaoService) List(ctx context.Context, userID, role string, req *dto.ListSolicitacoesRequest) (*dto.SolicitacaoListResponse, error) {
	apenasProprias, apenasAprovadas, ok := escopoListagem(role)
	if !ok {
		return nil, ErrSemPermissao
	}

	filtro := repository.SolicitacaoFilter{
		Status:        req.Status,
		ColaboradorID: req.ColaboradorID,
	}
	if apenasProprias {
		filtro.SolicitanteID = userID
	}
	if apenasAprovadas {
		filtro.Status = model.SolicitacaoAprovada
	}

	if req.Mes != 0 && req.Ano != 0 {
		filtro.DataPrefix = FormatDataEscala(req.Ano, req.Mes, 1)[:7] + "-"
	}

	itens, total, err := s.repo.Solicitacao.List(ctx, filtro, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("falha ao listar solicitações", zap.Error(err))
		return nil, err
	}
	return &dto.SolicitacaoListResponse{Items: itens, Total: total}, nil
}
