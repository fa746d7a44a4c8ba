package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/service"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/response"
)

// DashboardHandler painel inicial
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler cria o DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Stats contadores do painel; mes e ano opcionais, padrão mês corrente
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	agora := time.Now()
	mes := int(agora.Month())
	ano := agora.Year()

	if v := c.Query("mes"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			response.BadRequest(c, 10001, "mes inválido")
			return
		}
		mes = m
	}
	if v := c.Query("ano"); v != "" {
		a, err := strconv.Atoi(v)
		if err != nil || a < 2000 || a > 2100 {
			response.BadRequest(c, 10001, "ano inválido")
			return
		}
		ano = a
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	stats, err := h.dashboardSvc.Stats(c.Request.Context(), userID, mes, ano)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}
