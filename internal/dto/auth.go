package dto

// LoginRequest credenciais de acesso
type LoginRequest struct {
	Matricula string `json:"matricula" binding:"required"`
	Senha     string `json:"senha" binding:"required"`
}

// LoginResponse resultado do login
type LoginResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// UserInfo dados públicos do usuário autenticado
type UserInfo struct {
	ID             string `json:"id"`
	Matricula      string `json:"matricula"`
	Nome           string `json:"nome"`
	Role           string `json:"role"`
	PrimeiroAcesso bool   `json:"primeiro_acesso"`
}

// ChangePasswordRequest troca de senha do próprio usuário
type ChangePasswordRequest struct {
	SenhaAtual string `json:"senha_atual" binding:"required"`
	SenhaNova  string `json:"senha_nova" binding:"required,min=8"`
}
