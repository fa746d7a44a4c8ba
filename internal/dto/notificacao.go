package dto

import "github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"

// ListNotificacoesRequest filtros de listagem de notificações
type ListNotificacoesRequest struct {
	PaginationRequest
	ApenasNaoLidas bool `form:"apenas_nao_lidas"`
}

// NotificacaoListResponse página de notificações com contagem de não lidas
type NotificacaoListResponse struct {
	Items    []*model.Notificacao `json:"items"`
	Total    int64                `json:"total"`
	NaoLidas int64                `json:"nao_lidas"`
}
