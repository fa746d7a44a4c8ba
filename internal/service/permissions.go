package service

import "github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"

// Operações sujeitas a controle de papel
const (
	OpCriarSolicitacao   = "solicitacao:criar"
	OpAvaliarSolicitacao = "solicitacao:avaliar"
	OpAlterarDireto      = "escala:alterar"
	OpImportarEscala     = "escala:importar"
)

// permissoes tabela consolidada papel × operação. Papéis ausentes de uma
// operação não a executam; leitura é controlada por escopoListagem.
var permissoes = map[string]map[string]bool{
	// analista e gerencia não criam solicitação: usam a alteração direta
	OpCriarSolicitacao: {
		model.RoleSupervisor:  true,
		model.RoleTreinamento: true,
	},
	OpAvaliarSolicitacao: {
		model.RoleAnalista: true,
		model.RoleGerencia: true,
	},
	OpAlterarDireto: {
		model.RoleAnalista: true,
		model.RoleGerencia: true,
	},
	OpImportarEscala: {
		model.RoleAnalista: true,
		model.RoleGerencia: true,
	},
}

// RoleCan verifica se o papel executa a operação
func RoleCan(role, operacao string) bool {
	return permissoes[operacao][role]
}

// escopoListagem define o recorte de solicitações visível ao papel:
// supervisor e treinamento veem as próprias; ponto vê apenas aprovadas;
// analista e gerencia veem tudo. Qualquer outro papel não lê solicitações.
func escopoListagem(role string) (apenasProprias, apenasAprovadas, ok bool) {
	switch role {
	case model.RoleSupervisor, model.RoleTreinamento:
		return true, false, true
	case model.RolePonto:
		return false, true, true
	case model.RoleAnalista, model.RoleGerencia:
		return false, false, true
	default:
		return false, false, false
	}
}

// valorPermitidoParaRole restringe os valores que o papel treinamento pode
// propor: apenas TR e DT.
func valorPermitidoParaRole(role string, v Valor) bool {
	if role != model.RoleTreinamento {
		return true
	}
	return v.IsDT() || (v.IsStatus() && *v.StatusPtr() == model.StatusTreinamento)
}
