package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/response"
)

// MustGetUserID extrai o user_id injetado pelo middleware JWT.
// Retorna false e escreve 401 quando ausente; o chamador deve retornar.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	return s, true
}

// MustGetRole extrai o papel do usuário autenticado.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	return s, true
}
