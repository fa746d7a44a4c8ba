package dto

// DashboardStats contadores exibidos no painel inicial
type DashboardStats struct {
	TotalColaboradores    int64 `json:"total_colaboradores"`
	SolicitacoesPendentes int64 `json:"solicitacoes_pendentes"`
	AlteracoesNoMes       int64 `json:"alteracoes_no_mes"`
	EscalasNoMes          int64 `json:"escalas_no_mes"`
	NotificacoesNaoLidas  int64 `json:"notificacoes_nao_lidas"`
}
