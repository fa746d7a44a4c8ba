package handler

import (
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/config"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/service"
)

// Handler agrega todos os handlers HTTP
type Handler struct {
	Auth        *AuthHandler
	Solicitacao *SolicitacaoHandler
	Escala      *EscalaHandler
	Dashboard   *DashboardHandler
	Notificacao *NotificacaoHandler
}

// NewHandler cria o agregado de handlers
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		Solicitacao: NewSolicitacaoHandler(svc.Solicitacao),
		Escala:      NewEscalaHandler(cfg, svc.Escala, svc.Import, svc.Export),
		Dashboard:   NewDashboardHandler(svc.Dashboard),
		Notificacao: NewNotificacaoHandler(svc.Notificacao),
	}
}
