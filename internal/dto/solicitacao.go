package dto

import "github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"

// CriarSolicitacaoRequest abertura de solicitação de alteração de escala
type CriarSolicitacaoRequest struct {
	ColaboradorID string `json:"colaborador_id" binding:"required,uuid"`
	DataEscala    string `json:"data_escala" binding:"required"`
	ValorNovo     string `json:"valor_novo"`
	Motivo        string `json:"motivo" binding:"required,max=100"`
	Justificativa string `json:"justificativa" binding:"required"`
}

// AvaliarSolicitacaoRequest decisão do aprovador
type AvaliarSolicitacaoRequest struct {
	Acao       string  `json:"acao" binding:"required,oneof=aprovar rejeitar"`
	Comentario *string `json:"comentario"`
}

// ListSolicitacoesRequest filtros de listagem de solicitações
type ListSolicitacoesRequest struct {
	PaginationRequest
	Status        string `form:"status" binding:"omitempty,oneof=pendente aprovado rejeitado"`
	ColaboradorID string `form:"colaborador_id" binding:"omitempty,uuid"`
	Mes           int    `form:"mes" binding:"omitempty,min=1,max=12"`
	Ano           int    `form:"ano" binding:"omitempty,min=2000,max=2100"`
}

// SolicitacaoListResponse página de solicitações
type SolicitacaoListResponse struct {
	Items []*model.SolicitacaoAlteracao `json:"items"`
	Total int64                         `json:"total"`
}
