package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/dto"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/service"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/response"
)

// NotificacaoHandler notificações do usuário autenticado
type NotificacaoHandler struct {
	notificacaoSvc service.NotificacaoService
}

// NewNotificacaoHandler cria o NotificacaoHandler
func NewNotificacaoHandler(notificacaoSvc service.NotificacaoService) *NotificacaoHandler {
	return &NotificacaoHandler{notificacaoSvc: notificacaoSvc}
}

// Listar notificações do usuário autenticado
// GET /api/v1/notificacoes
func (h *NotificacaoHandler) Listar(c *gin.Context) {
	var req dto.ListNotificacoesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	resp, err := h.notificacaoSvc.Listar(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{
		"list":      resp.Items,
		"total":     resp.Total,
		"nao_lidas": resp.NaoLidas,
	})
}

// MarcarLida marca uma notificação como lida
// PUT /api/v1/notificacoes/:id/lida
func (h *NotificacaoHandler) MarcarLida(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "id da notificação não pode ser vazio")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.notificacaoSvc.MarcarLida(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrNotificacaoNaoEncontrada) {
			response.NotFound(c, 14001, "notificação não encontrada")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
