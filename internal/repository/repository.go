package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository agrega todos os repositórios do sistema
type Repository struct {
	db *gorm.DB

	User             UserRepository
	Colaborador      ColaboradorRepository
	Escala           EscalaRepository
	EscalaDia        EscalaDiaRepository
	Solicitacao      SolicitacaoRepository
	Notificacao      NotificacaoRepository
	UsuarioAlteracao UsuarioAlteracaoRepository
}

// NewRepository cria o agregado de repositórios
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:               db,
		User:             NewUserRepo(db),
		Colaborador:      NewColaboradorRepo(db),
		Escala:           NewEscalaRepo(db),
		EscalaDia:        NewEscalaDiaRepo(db),
		Solicitacao:      NewSolicitacaoRepo(db),
		Notificacao:      NewNotificacaoRepo(db),
		UsuarioAlteracao: NewUsuarioAlteracaoRepo(db),
	}
}

// BeginTx abre uma transação explícita. Sem conexão (agregado montado à
// mão em teste) retorna nil e as operações seguem fora de transação.
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx retorna um agregado ligado à transação informada. Os repositórios
// do agregado original permanecem intactos.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}
