package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/dto"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/service"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/response"
)

// SolicitacaoHandler solicitações de alteração de escala
type SolicitacaoHandler struct {
	solicitacaoSvc service.SolicitacaoService
}

// NewSolicitacaoHandler cria o SolicitacaoHandler
func NewSolicitacaoHandler(solicitacaoSvc service.SolicitacaoService) *SolicitacaoHandler {
	return &SolicitacaoHandler{solicitacaoSvc: solicitacaoSvc}
}

// Criar abre uma solicitação de alteração
// POST /api/v1/solicitacoes
func (h *SolicitacaoHandler) Criar(c *gin.Context) {
	var req dto.CriarSolicitacaoRequest
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

	sol, err := h.solicitacaoSvc.Criar(c.Request.Context(), userID, role, &req)
	if err != nil {
		h.handleSolicitacaoError(c, err)
		return
	}

	response.Created(c, sol)
}

// Avaliar aprova ou rejeita uma solicitação pendente
// PUT /api/v1/solicitacoes/:id/avaliar
func (h *SolicitacaoHandler) Avaliar(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "id da solicitação não pode ser vazio")
		return
	}

	var req dto.AvaliarSolicitacaoRequest
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

	sol, err := h.solicitacaoSvc.Avaliar(c.Request.Context(), userID, role, id, &req)
	if err != nil {
		h.handleSolicitacaoError(c, err)
		return
	}

	response.OK(c, sol)
}

// Get detalhe de uma solicitação
// GET /api/v1/solicitacoes/:id
func (h *SolicitacaoHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "id da solicitação não pode ser vazio")
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

	sol, err := h.solicitacaoSvc.Get(c.Request.Context(), userID, role, id)
	if err != nil {
		h.handleSolicitacaoError(c, err)
		return
	}

	response.OK(c, sol)
}

// List lista solicitações com o recorte do papel
// GET /api/v1/solicitacoes
func (h *SolicitacaoHandler) List(c *gin.Context) {
	var req dto.ListSolicitacoesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
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

	resp, err := h.solicitacaoSvc.List(c.Request.Context(), userID, role, &req)
	if err != nil {
		h.handleSolicitacaoError(c, err)
		return
	}

	response.OKPage(c, resp.Items, resp.Total, req.GetPage(), req.GetPageSize())
}

// handleSolicitacaoError mapeia erros de negócio do módulo de solicitações
func (h *SolicitacaoHandler) handleSolicitacaoError(c *gin.Context, err error) {
	var jaProcessada *service.JaProcessadaError
	switch {
	case errors.Is(err, service.ErrValorInvalido), errors.Is(err, service.ErrDataInvalida):
		response.BadRequest(c, 12001, err.Error())
	case errors.Is(err, service.ErrSemPermissao):
		response.Forbidden(c, 12002, "papel sem permissão para esta operação")
	case errors.Is(err, service.ErrColaboradorNaoEncontrado):
		response.NotFound(c, 12003, "colaborador não encontrado")
	case errors.Is(err, service.ErrSolicitacaoNaoEncontrada):
		response.NotFound(c, 12004, "solicitação não encontrada")
	case errors.Is(err, service.ErrSolicitacaoDuplicada):
		response.Conflict(c, 12005, "já existe solicitação pendente para este colaborador nesta data")
	case errors.As(err, &jaProcessada):
		response.Conflict(c, 12006, "solicitação já processada com status "+jaProcessada.Status)
	default:
		response.InternalError(c)
	}
}
