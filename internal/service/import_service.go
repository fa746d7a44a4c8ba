package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/dto"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/repository"
)

var ErrArquivoVazio = errors.New("arquivo deve conter cabeçalho e ao menos uma linha de dados")

// colunas obrigatórias do cabeçalho: a falta de qualquer uma rejeita a
// carga inteira
var colunasObrigatorias = []string{
	"MATRICULA", "NOME", "RESPONSAVEL", "DEPART", "GRUPO", "FUNÇÃO", "COD_ESCALA",
}

// ColunasAusentesError cabeçalho sem alguma das colunas obrigatórias
type ColunasAusentesError struct {
	Colunas []string
}

func (e *ColunasAusentesError) Error() string {
	return "colunas obrigatórias não encontradas: " + strings.Join(e.Colunas, ", ")
}

// ImportService importação mensal de escalas em CSV
type ImportService interface {
	Importar(ctx context.Context, autorID, role string, mes, ano int, nomeArquivo string, conteudo []byte) (*dto.ImportStats, error)
}

type importService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewImportService cria o ImportService
func NewImportService(repo *repository.Repository, logger *zap.Logger) ImportService {
	return &importService{repo: repo, logger: logger}
}

// planilhaImportada resultado do parse do CSV antes de tocar o banco
type planilhaImportada struct {
	linhas []linhaImportada
	erros  []string
}

type linhaImportada struct {
	numero      int
	colaborador model.Colaborador
	// dia do mês → valor bruto da célula
	dias map[int]string
}

// Importar substitui por completo a escala do mês e carrega a planilha
// recebida, tudo em uma única transação. Erros de linha não abortam a
// carga: a linha é pulada e o erro reportado no resumo.
func (s *importService) Importar(ctx context.Context, autorID, role string, mes, ano int, nomeArquivo string, conteudo []byte) (*dto.ImportStats, error) {
	if !RoleCan(role, OpImportarEscala) {
		return nil, ErrSemPermissao
	}

	plan, err := parsePlanilha(conteudo, mes, ano)
	if err != nil {
		return nil, err
	}
	if len(plan.linhas) == 0 {
		return &dto.ImportStats{Success: false, Errors: plan.erros}, nil
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("falha ao abrir transação de importação", zap.Error(err))
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

	stats := &dto.ImportStats{Errors: plan.erros}

	// substituição do mês: solicitações → dias → escalas, nessa ordem
	escalaIDs, err := txRepo.Escala.ListIDsByMesAno(ctx, mes, ano)
	if err != nil {
		rollback()
		return nil, err
	}
	if len(escalaIDs) > 0 {
		diaIDs, err := txRepo.EscalaDia.ListByEscalaIDs(ctx, escalaIDs)
		if err != nil {
			rollback()
			return nil, err
		}
		if err := txRepo.Solicitacao.DeleteByEscalaDiaIDs(ctx, diaIDs); err != nil {
			rollback()
			return nil, err
		}
		if err := txRepo.EscalaDia.DeleteByEscalaIDs(ctx, escalaIDs); err != nil {
			rollback()
			return nil, err
		}
		if err := txRepo.Escala.DeleteByIDs(ctx, escalaIDs); err != nil {
			rollback()
			return nil, err
		}
		stats.ReplacedExisting = true
		stats.RemovedEscalas = len(escalaIDs)
	}

	for _, linha := range plan.linhas {
		colaborador := linha.colaborador
		if err := txRepo.Colaborador.Upsert(ctx, &colaborador); err != nil {
			rollback()
			s.logger.Error("falha ao gravar colaborador",
				zap.String("matricula", colaborador.Matricula), zap.Error(err))
			return nil, err
		}

		escala := &model.Escala{
			ColaboradorID:  colaborador.ID,
			Mes:            mes,
			Ano:            ano,
			UploadFileName: &nomeArquivo,
			UploadedBy:     &autorID,
		}
		if err := txRepo.Escala.Upsert(ctx, escala); err != nil {
			rollback()
			return nil, err
		}

		dias := make([]model.EscalaDia, 0, len(linha.dias))
		for dia, bruto := range linha.dias {
			valor, err := ParseValor(bruto)
			if err != nil {
				stats.Errors = append(stats.Errors,
					fmt.Sprintf("linha %d, dia %d: valor inválido %q", linha.numero, dia, bruto))
				continue
			}
			d := model.EscalaDia{
				EscalaID: escala.ID,
				Dia:      dia,
				Status:   valor.StatusPtr(),
				Horario:  valor.HorarioPtr(),
			}
			// na importação o DT vem escrito na planilha e fica gravado
			// como status literal, diferente do fluxo de alteração
			if valor.IsDT() {
				st := model.StatusDiaTrabalhado
				d.Status = &st
			}
			dias = append(dias, d)
		}

		if err := txRepo.EscalaDia.BatchUpsert(ctx, dias); err != nil {
			rollback()
			return nil, err
		}

		stats.Colaboradores++
		stats.Dias += len(dias)
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("falha ao confirmar importação", zap.Error(err))
			return nil, err
		}
	}

	stats.Success = len(stats.Errors) == 0

	s.logger.Info("importação de escala concluída",
		zap.Int("mes", mes), zap.Int("ano", ano),
		zap.Int("colaboradores", stats.Colaboradores),
		zap.Int("dias", stats.Dias),
		zap.Int("erros", len(stats.Errors)))

	return stats, nil
}

// limparCampo remove aspas e espaços em volta de um campo do CSV
func limparCampo(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}

// parsePlanilha interpreta o CSV. O separador é ponto e vírgula quando
// presente no cabeçalho, senão vírgula; as colunas de dia são os
// cabeçalhos numéricos entre 1 e o último dia do mês.
func parsePlanilha(conteudo []byte, mes, ano int) (*planilhaImportada, error) {
	texto := strings.ReplaceAll(string(conteudo), "\r\n", "\n")

	var linhas []string
	for _, l := range strings.Split(texto, "\n") {
		if strings.TrimSpace(l) != "" {
			linhas = append(linhas, l)
		}
	}
	if len(linhas) < 2 {
		return nil, ErrArquivoVazio
	}

	sep := ","
	if strings.Contains(linhas[0], ";") {
		sep = ";"
	}

	cabecalho := strings.Split(linhas[0], sep)
	indicePorColuna := make(map[string]int, len(cabecalho))
	diaPorIndice := make(map[int]int)
	ultimoDia := diasNoMes(mes, ano)

	for i, c := range cabecalho {
		nome := strings.ToUpper(limparCampo(c))
		if dia, err := strconv.Atoi(nome); err == nil && dia >= 1 && dia <= ultimoDia {
			diaPorIndice[i] = dia
			continue
		}
		indicePorColuna[nome] = i
	}

	var ausentes []string
	for _, obrigatoria := range colunasObrigatorias {
		if _, ok := indicePorColuna[obrigatoria]; !ok {
			ausentes = append(ausentes, obrigatoria)
		}
	}
	if len(ausentes) > 0 {
		return nil, &ColunasAusentesError{Colunas: ausentes}
	}

	plan := &planilhaImportada{}

	campo := func(campos []string, coluna string) *string {
		i, ok := indicePorColuna[coluna]
		if !ok || i >= len(campos) {
			return nil
		}
		v := limparCampo(campos[i])
		if v == "" {
			return nil
		}
		return &v
	}

	for n, linha := range linhas[1:] {
		numero := n + 2
		campos := strings.Split(linha, sep)

		matricula := campo(campos, "MATRICULA")
		nome := campo(campos, "NOME")
		if matricula == nil {
			plan.erros = append(plan.erros, fmt.Sprintf("linha %d: matrícula vazia", numero))
			continue
		}
		if nome == nil {
			plan.erros = append(plan.erros, fmt.Sprintf("linha %d: nome vazio", numero))
			continue
		}

		codEscala := campo(campos, "COD_ESCALA")
		item := linhaImportada{
			numero: numero,
			colaborador: model.Colaborador{
				Matricula:    *matricula,
				Nome:         *nome,
				Responsavel:  campo(campos, "RESPONSAVEL"),
				Departamento: campo(campos, "DEPART"),
				Grupo:        campo(campos, "GRUPO"),
				Funcao:       campo(campos, "FUNÇÃO"),
				CodEscala:    codEscala,
				// o horário nominal vem do código da escala
				HorarioTrabalho: codEscala,
				Ativo:           true,
			},
			dias: make(map[int]string),
		}

		for i, dia := range diaPorIndice {
			if i >= len(campos) {
				continue
			}
			if v := limparCampo(campos[i]); v != "" {
				item.dias[dia] = v
			}
		}

		plan.linhas = append(plan.linhas, item)
	}

	return plan, nil
}
