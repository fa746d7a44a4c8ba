package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"
)

// UsuarioAlteracaoRepository acesso ao contador mensal de alterações
type UsuarioAlteracaoRepository interface {
	Incrementar(ctx context.Context, usuarioID string, mes, ano int) error
	SumByMesAno(ctx context.Context, mes, ano int) (int64, error)
}

type usuarioAlteracaoRepo struct {
	db *gorm.DB
}

// NewUsuarioAlteracaoRepo cria a implementação GORM de UsuarioAlteracaoRepository
func NewUsuarioAlteracaoRepo(db *gorm.DB) UsuarioAlteracaoRepository {
	return &usuarioAlteracaoRepo{db: db}
}

// Incrementar soma 1 ao contador do usuário no mês, criando a linha se necessário
func (r *usuarioAlteracaoRepo) Incrementar(ctx context.Context, usuarioID string, mes, ano int) error {
	registro := model.UsuarioAlteracao{
		UsuarioID:       usuarioID,
		Mes:             mes,
		Ano:             ano,
		TotalAlteracoes: 1,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "usuario_id"}, {Name: "mes"}, {Name: "ano"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_alteracoes": gorm.Expr("usuario_alteracoes.total_alteracoes + 1"),
			}),
		}).
		Create(&registro).Error
}

func (r *usuarioAlteracaoRepo) SumByMesAno(ctx context.Context, mes, ano int) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.UsuarioAlteracao{}).
		Where("mes = ? AND ano = ?", mes, ano).
		Select("COALESCE(SUM(total_alteracoes), 0)").
		Scan(&total).Error
	return total, err
}
