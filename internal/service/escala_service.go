package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/dto"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/repository"
)

var (
	ErrSemPermissao            = errors.New("papel sem permissão para esta operação")
	ErrColaboradorNaoEncontrado = errors.New("colaborador não encontrado")
)

// EscalaService visão mensal e aplicação direta de alterações
type EscalaService interface {
	ListarMes(ctx context.Context, req *dto.ListEscalasRequest) (*dto.EscalaListResponse, error)
	OpcoesFiltro(ctx context.Context) (*dto.FiltroOptions, error)
	AlterarDireto(ctx context.Context, autorID, autorRole string, req *dto.AlterarEscalaRequest) (*dto.AlterarEscalaResponse, error)
}

type escalaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEscalaService cria o EscalaService
func NewEscalaService(repo *repository.Repository, logger *zap.Logger) EscalaService {
	return &escalaService{repo: repo, logger: logger}
}

func (s *escalaService) ListarMes(ctx context.Context, req *dto.ListEscalasRequest) (*dto.EscalaListResponse, error) {
	escalas, total, err := s.repo.Escala.ListMes(ctx,
		req.Mes, req.Ano,
		req.Busca, req.Responsavel, req.Departamento,
		req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("falha ao listar escalas do mês",
			zap.Int("mes", req.Mes), zap.Int("ano", req.Ano), zap.Error(err))
		return nil, err
	}
	return &dto.EscalaListResponse{Items: escalas, Total: total}, nil
}

// OpcoesFiltro valores distintos do cadastro ativo para preencher os
// filtros da visão mensal
func (s *escalaService) OpcoesFiltro(ctx context.Context) (*dto.FiltroOptions, error) {
	opts := &dto.FiltroOptions{}
	colunas := []struct {
		nome    string
		destino *[]string
	}{
		{"responsavel", &opts.Responsaveis},
		{"departamento", &opts.Departamentos},
		{"grupo", &opts.Grupos},
		{"funcao", &opts.Funcoes},
		{"cod_escala", &opts.CodEscalas},
	}
	for _, c := range colunas {
		valores, err := s.repo.Colaborador.Distinct(ctx, c.nome)
		if err != nil {
			s.logger.Error("falha ao consultar opções de filtro",
				zap.String("coluna", c.nome), zap.Error(err))
			return nil, err
		}
		*c.destino = valores
	}
	return opts, nil
}

// AlterarDireto aplica o valor no dia sem passar pelo fluxo de aprovação.
// A mutação roda em transação; o registro de auditoria é criado depois,
// em melhor esforço — se falhar, a alteração permanece e o chamador
// recebe um aviso.
func (s *escalaService) AlterarDireto(ctx context.Context, autorID, autorRole string, req *dto.AlterarEscalaRequest) (*dto.AlterarEscalaResponse, error) {
	valor, err := ParseValor(req.ValorNovo)
	if err != nil {
		return nil, err
	}
	ano, mes, dia, err := ParseDataEscala(req.DataEscala)
	if err != nil {
		return nil, err
	}

	if !RoleCan(autorRole, OpAlterarDireto) {
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

	// valor anterior para a trilha de auditoria
	var valorAtual *string
	if escala, err := s.repo.Escala.GetByColaboradorMesAno(ctx, colaborador.ID, mes, ano); err == nil {
		if d, err := s.repo.EscalaDia.GetByEscalaDia(ctx, escala.ID, dia); err == nil {
			valorAtual = valorVigente(d)
		}
	}

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

	diaEscala, err := aplicarDiaEscala(ctx, txRepo, colaborador.ID, ano, mes, dia, valor, autorID)
	if err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("falha ao aplicar alteração direta", zap.Error(err))
		return nil, err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("falha ao confirmar transação", zap.Error(err))
			return nil, err
		}
	}

	resp := &dto.AlterarEscalaResponse{Dia: diaEscala}

	// trilha de auditoria: solicitação já carimbada como aprovada
	motivo := req.Motivo
	if motivo == "" {
		motivo = "Alteração direta por analista"
	}
	justificativa := req.Justificativa
	if justificativa == "" {
		justificativa = "Alteração aplicada diretamente pelo analista"
	}

	agoraTs := agora()
	auditoria := &model.SolicitacaoAlteracao{
		SolicitanteID: autorID,
		ColaboradorID: colaborador.ID,
		EscalaDiaID:   &diaEscala.ID,
		DataEscala:    FormatDataEscala(ano, mes, dia),
		ValorAtual:    valorAtual,
		ValorNovo:     valor.Audit(),
		Motivo:        motivo,
		Justificativa: justificativa,
		Status:        model.SolicitacaoAprovada,
		AprovadoPor:   &autorID,
		AprovadoEm:    &agoraTs,
	}
	if err := s.repo.Solicitacao.Create(ctx, auditoria); err != nil {
		s.logger.Warn("alteração aplicada mas o registro de auditoria falhou",
			zap.String("colaborador_id", colaborador.ID),
			zap.String("data", req.DataEscala),
			zap.Error(err))
		resp.Aviso = "alteração aplicada, mas o registro de auditoria não pôde ser criado"
	}

	return resp, nil
}

// valorVigente valor textual atualmente gravado no dia, para snapshot de auditoria
func valorVigente(d *model.EscalaDia) *string {
	var v string
	switch {
	case d.Status != nil:
		v = *d.Status
	case d.Horario != nil:
		v = *d.Horario
	case d.Alterado:
		v = model.StatusDiaTrabalhado
	default:
		return nil
	}
	return &v
}

// aplicarDiaEscala grava o valor no dia do colaborador, criando a escala do
// mês sob demanda, e incrementa o contador mensal do autor. Deve rodar
// dentro de uma transação (repo já ligado via WithTx).
func aplicarDiaEscala(ctx context.Context, repo *repository.Repository, colaboradorID string, ano, mes, dia int, valor Valor, autorID string) (*model.EscalaDia, error) {
	escala, err := repo.Escala.GetByColaboradorMesAno(ctx, colaboradorID, mes, ano)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		escala = &model.Escala{
			ColaboradorID: colaboradorID,
			Mes:           mes,
			Ano:           ano,
		}
		if err := repo.Escala.Upsert(ctx, escala); err != nil {
			return nil, err
		}
	}

	agoraTs := agora()
	diaEscala := &model.EscalaDia{
		EscalaID:    escala.ID,
		Dia:         dia,
		Status:      valor.StatusPtr(),
		Horario:     valor.HorarioPtr(),
		Alterado:    true,
		AlteradoPor: &autorID,
		AlteradoEm:  &agoraTs,
	}
	if err := repo.EscalaDia.Upsert(ctx, diaEscala); err != nil {
		return nil, err
	}

	if err := repo.UsuarioAlteracao.Incrementar(ctx, autorID, mes, ano); err != nil {
		return nil, err
	}

	return diaEscala, nil
}
