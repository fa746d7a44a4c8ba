package dto

import "github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"

// ListEscalasRequest filtros da visão mensal de escalas
type ListEscalasRequest struct {
	PaginationRequest
	Mes          int    `form:"mes" binding:"required,min=1,max=12"`
	Ano          int    `form:"ano" binding:"required,min=2000,max=2100"`
	Busca        string `form:"busca"`
	Responsavel  string `form:"responsavel"`
	Departamento string `form:"departamento"`
}

// AlterarEscalaRequest aplicação direta de valor em um dia de escala.
// Motivo e justificativa são opcionais: a alteração direta recebe textos
// padrão de auditoria quando omitidos.
type AlterarEscalaRequest struct {
	ColaboradorID string `json:"colaborador_id" binding:"required,uuid"`
	DataEscala    string `json:"data_escala" binding:"required"`
	ValorNovo     string `json:"valor_novo"`
	Motivo        string `json:"motivo" binding:"max=100"`
	Justificativa string `json:"justificativa"`
}

// AlterarEscalaResponse resultado da aplicação direta. Aviso é preenchido
// quando a mutação foi aplicada mas o registro de auditoria falhou.
type AlterarEscalaResponse struct {
	Dia   *model.EscalaDia `json:"dia"`
	Aviso string           `json:"aviso,omitempty"`
}

// FiltroOptions valores distintos disponíveis para os filtros da visão mensal
type FiltroOptions struct {
	Responsaveis  []string `json:"responsaveis"`
	Departamentos []string `json:"departamentos"`
	Grupos        []string `json:"grupos"`
	Funcoes       []string `json:"funcoes"`
	CodEscalas    []string `json:"cod_escalas"`
}

// EscalaListResponse página da visão mensal
type EscalaListResponse struct {
	Items []*model.Escala `json:"items"`
	Total int64           `json:"total"`
}

// ImportStats resumo da importação mensal
type ImportStats struct {
	Success          bool     `json:"success"`
	Colaboradores    int      `json:"colaboradores"`
	Dias             int      `json:"dias"`
	RemovedEscalas   int      `json:"removedEscalas"`
	ReplacedExisting bool     `json:"replacedExisting"`
	Errors           []string `json:"errors,omitempty"`
}
