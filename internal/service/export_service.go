package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/repository"
)

var (
	ErrExportSemEscalas = errors.New("não há escalas para o mês informado")
	ErrExportFalhou     = errors.New("falha ao gerar o arquivo Excel")
)

// ExportService exportação da grade mensal em Excel
//
// O arquivo sai com uma linha por colaborador e uma coluna por dia do
// mês; a célula recebe o status, o horário ou DT. O Handler define os
// cabeçalhos HTTP e escreve o buffer na resposta.
type ExportService interface {
	ExportarMes(ctx context.Context, mes, ano int) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService cria o ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportarMes(ctx context.Context, mes, ano int) (*bytes.Buffer, string, error) {
	// sem paginação: a exportação cobre o mês inteiro
	escalas, total, err := s.repo.Escala.ListMes(ctx, mes, ano, "", "", "", 0, 10000)
	if err != nil {
		s.logger.Error("falha ao consultar escalas para exportação", zap.Error(err))
		return nil, "", err
	}
	if total == 0 {
		return nil, "", ErrExportSemEscalas
	}

	ultimoDia := diasNoMes(mes, ano)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Escala"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 20)
	for d := 1; d <= ultimoDia; d++ {
		col, _ := excelize.ColumnNumberToName(3 + d)
		f.SetColWidth(sheetName, col, col, 8)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// título
	titulo := fmt.Sprintf("Escala %02d/%d", mes, ano)
	f.SetCellValue(sheetName, "A1", titulo)
	ultimaColuna, _ := excelize.ColumnNumberToName(3 + ultimoDia)
	f.MergeCell(sheetName, "A1", ultimaColuna+"1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// cabeçalho
	row := 2
	f.SetCellValue(sheetName, cell("A", row), "MATRICULA")
	f.SetCellValue(sheetName, cell("B", row), "NOME")
	f.SetCellValue(sheetName, cell("C", row), "RESPONSAVEL")
	for d := 1; d <= ultimoDia; d++ {
		col, _ := excelize.ColumnNumberToName(3 + d)
		f.SetCellValue(sheetName, cell(col, row), d)
	}

	// linhas de colaborador
	row = 3
	for _, escala := range escalas {
		if escala.Colaborador == nil {
			continue
		}
		f.SetCellValue(sheetName, cell("A", row), escala.Colaborador.Matricula)
		f.SetCellValue(sheetName, cell("B", row), escala.Colaborador.Nome)
		if escala.Colaborador.Responsavel != nil {
			f.SetCellValue(sheetName, cell("C", row), *escala.Colaborador.Responsavel)
		}

		porDia := make(map[int]model.EscalaDia, len(escala.Dias))
		for _, d := range escala.Dias {
			porDia[d.Dia] = d
		}
		for d := 1; d <= ultimoDia; d++ {
			col, _ := excelize.ColumnNumberToName(3 + d)
			f.SetCellValue(sheetName, cell(col, row), celulaDia(porDia, d))
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("falha ao escrever Excel", zap.Error(err))
		return nil, "", ErrExportFalhou
	}

	filename := fmt.Sprintf("escala_%d_%02d.xlsx", ano, mes)
	return buf, filename, nil
}

// celulaDia texto exibido na célula: status, horário, DT para dias
// alterados sem marcação, vazio para dias sem registro
func celulaDia(porDia map[int]model.EscalaDia, dia int) string {
	d, ok := porDia[dia]
	if !ok {
		return ""
	}
	switch {
	case d.Status != nil:
		return *d.Status
	case d.Horario != nil:
		return *d.Horario
	case d.Alterado:
		return model.StatusDiaTrabalhado
	default:
		return ""
	}
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
