package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/config"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/dto"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/service"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/response"
)

// EscalaHandler visão mensal, alteração direta, importação e exportação
type EscalaHandler struct {
	cfg       *config.Config
	escalaSvc service.EscalaService
	importSvc service.ImportService
	exportSvc service.ExportService
}

// NewEscalaHandler cria o EscalaHandler
func NewEscalaHandler(cfg *config.Config, escalaSvc service.EscalaService, importSvc service.ImportService, exportSvc service.ExportService) *EscalaHandler {
	return &EscalaHandler{
		cfg:       cfg,
		escalaSvc: escalaSvc,
		importSvc: importSvc,
		exportSvc: exportSvc,
	}
}

// Listar visão mensal de escalas
// GET /api/v1/escalas
func (h *EscalaHandler) Listar(c *gin.Context) {
	var req dto.ListEscalasRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	resp, err := h.escalaSvc.ListarMes(c.Request.Context(), &req)
	if err != nil {
		h.handleEscalaError(c, err)
		return
	}

	response.OKPage(c, resp.Items, resp.Total, req.GetPage(), req.GetPageSize())
}

// Filtros valores distintos para os filtros da visão mensal
// GET /api/v1/escalas/filtros
func (h *EscalaHandler) Filtros(c *gin.Context) {
	opts, err := h.escalaSvc.OpcoesFiltro(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, opts)
}

// Alterar aplica um valor direto no dia, sem fluxo de aprovação
// PUT /api/v1/escalas/alterar
func (h *EscalaHandler) Alterar(c *gin.Context) {
	var req dto.AlterarEscalaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	resp, err := h.escalaSvc.AlterarDireto(c.Request.Context(), userID, role, &req)
	if err != nil {
		h.handleEscalaError(c, err)
		return
	}

	response.OK(c, resp)
}

// Upload importa a escala do mês a partir de um CSV (multipart: file, mes, ano)
// POST /api/v1/escalas/upload
func (h *EscalaHandler) Upload(c *gin.Context) {
	mes, errMes := strconv.Atoi(c.PostForm("mes"))
	ano, errAno := strconv.Atoi(c.PostForm("ano"))
	if errMes != nil || errAno != nil || mes < 1 || mes > 12 || ano < 2000 || ano > 2100 {
		response.BadRequest(c, 10001, "mes e ano são obrigatórios e devem ser válidos")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "arquivo não enviado")
		return
	}
	if fileHeader.Size > h.cfg.Upload.MaxBodyBytes {
		response.BadRequest(c, 13001, "arquivo excede o tamanho máximo permitido")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c)
		return
	}
	defer file.Close()

	conteudo, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(c)
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	stats, err := h.importSvc.Importar(c.Request.Context(), userID, role, mes, ano, fileHeader.Filename, conteudo)
	if err != nil {
		h.handleEscalaError(c, err)
		return
	}

	response.OK(c, stats)
}

// Export baixa a grade do mês em Excel
// GET /api/v1/escalas/export
func (h *EscalaHandler) Export(c *gin.Context) {
	mes, errMes := strconv.Atoi(c.Query("mes"))
	ano, errAno := strconv.Atoi(c.Query("ano"))
	if errMes != nil || errAno != nil || mes < 1 || mes > 12 || ano < 2000 || ano > 2100 {
		response.BadRequest(c, 10001, "mes e ano são obrigatórios e devem ser válidos")
		return
	}

	buf, filename, err := h.exportSvc.ExportarMes(c.Request.Context(), mes, ano)
	if err != nil {
		h.handleEscalaError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// handleEscalaError mapeia erros de negócio do módulo de escalas
func (h *EscalaHandler) handleEscalaError(c *gin.Context, err error) {
	var colunasAusentes *service.ColunasAusentesError
	switch {
	case errors.Is(err, service.ErrValorInvalido), errors.Is(err, service.ErrDataInvalida),
		errors.Is(err, service.ErrArquivoVazio):
		response.BadRequest(c, 13002, err.Error())
	case errors.As(err, &colunasAusentes):
		response.BadRequest(c, 13006, colunasAusentes.Error())
	case errors.Is(err, service.ErrSemPermissao):
		response.Forbidden(c, 13003, "papel sem permissão para esta operação")
	case errors.Is(err, service.ErrColaboradorNaoEncontrado):
		response.NotFound(c, 13004, "colaborador não encontrado")
	case errors.Is(err, service.ErrExportSemEscalas):
		response.NotFound(c, 13005, "não há escalas para o mês informado")
	case errors.Is(err, service.ErrExportFalhou):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
