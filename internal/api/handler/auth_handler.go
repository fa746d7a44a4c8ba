package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/dto"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/service"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/response"
)

// AuthHandler autenticação e conta própria
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler cria o AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login autentica por matrícula e senha
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	resp, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, resp)
}

// Logout invalida o token atual
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("token_jti")
	exp, _ := c.Get("token_exp")
	expiraEm, ok := exp.(time.Time)
	if jti == "" || !ok {
		response.Unauthorized(c, 10002, "não autenticado")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, expiraEm); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Me dados do usuário autenticado
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, user)
}

// ChangePassword troca a senha do usuário autenticado
// PUT /api/v1/auth/senha
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleAuthError mapeia erros de negócio do módulo de autenticação
func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCredenciaisInvalidas):
		response.Unauthorized(c, 11001, "matrícula ou senha incorreta")
	case errors.Is(err, service.ErrUsuarioInativo):
		response.Forbidden(c, 11002, "usuário desativado")
	case errors.Is(err, service.ErrSenhaAtualIncorreta):
		response.BadRequest(c, 11003, "senha atual incorreta")
	case errors.Is(err, service.ErrUsuarioNaoEncontrado):
		response.NotFound(c, 11004, "usuário não encontrado")
	default:
		response.InternalError(c)
	}
}
