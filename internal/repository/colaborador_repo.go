package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"
)

// ColaboradorRepository acesso a dados de colaboradores
type ColaboradorRepository interface {
	GetByID(ctx context.Context, id string) (*model.Colaborador, error)
	GetByMatricula(ctx context.Context, matricula string) (*model.Colaborador, error)
	Upsert(ctx context.Context, colaborador *model.Colaborador) error
	Count(ctx context.Context) (int64, error)
	Distinct(ctx context.Context, coluna string) ([]string, error)
}

type colaboradorRepo struct {
	db *gorm.DB
}

// NewColaboradorRepo cria a implementação GORM de ColaboradorRepository
func NewColaboradorRepo(db *gorm.DB) ColaboradorRepository {
	return &colaboradorRepo{db: db}
}

func (r *colaboradorRepo) GetByID(ctx context.Context, id string) (*model.Colaborador, error) {
	var col model.Colaborador
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&col).Error
	if err != nil {
		return nil, err
	}
	return &col, nil
}

func (r *colaboradorRepo) GetByMatricula(ctx context.Context, matricula string) (*model.Colaborador, error) {
	var col model.Colaborador
	err := r.db.WithContext(ctx).
		Where("matricula = ?", matricula).
		First(&col).Error
	if err != nil {
		return nil, err
	}
	return &col, nil
}

// Upsert insere ou atualiza pelo conflito em matricula, preenchendo o ID
// gerado de volta na struct.
func (r *colaboradorRepo) Upsert(ctx context.Context, colaborador *model.Colaborador) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "matricula"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"nome", "responsavel", "departamento", "grupo",
				"funcao", "cod_escala", "horario_trabalho", "ativo", "updated_at",
			}),
		}, clause.Returning{}).
		Create(colaborador).Error
}

func (r *colaboradorRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Colaborador{}).
		Where("ativo = ?", true).
		Count(&total).Error
	return total, err
}

// Distinct valores distintos não-nulos de uma coluna entre os ativos.
// coluna deve vir de um conjunto fixo do chamador, nunca de entrada externa.
func (r *colaboradorRepo) Distinct(ctx context.Context, coluna string) ([]string, error) {
	var valores []string
	err := r.db.WithContext(ctx).
		Model(&model.Colaborador{}).
		Where("ativo = ?", true).
		Where(coluna + " IS NOT NULL").
		Distinct().
		Order(coluna).
		Pluck(coluna, &valores).Error
	return valores, err
}
