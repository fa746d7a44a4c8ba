package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"
)

// SolicitacaoFilter filtros de listagem aplicados a consulta e contagem
type SolicitacaoFilter struct {
	Status        string
	ColaboradorID string
	SolicitanteID string
	// DataPrefix restringe data_escala por prefixo YYYY-MM
	DataPrefix string
}

// SolicitacaoRepository acesso a dados de solicitações de alteração
type SolicitacaoRepository interface {
	Create(ctx context.Context, sol *model.SolicitacaoAlteracao) error
	GetByID(ctx context.Context, id string) (*model.SolicitacaoAlteracao, error)
	UpdateSePendente(ctx context.Context, sol *model.SolicitacaoAlteracao) (bool, error)
	List(ctx context.Context, filter SolicitacaoFilter, offset, limit int) ([]*model.SolicitacaoAlteracao, int64, error)
	ExistsPendente(ctx context.Context, colaboradorID, dataEscala string) (bool, error)
	CountPendentes(ctx context.Context) (int64, error)
	DeleteByEscalaDiaIDs(ctx context.Context, diaIDs []string) error
}

type solicitacaoRepo struct {
	db *gorm.DB
}

// NewSolicitacaoRepo cria a implementação GORM de SolicitacaoRepository
func NewSolicitacaoRepo(db *gorm.DB) SolicitacaoRepository {
	return &solicitacaoRepo{db: db}
}

func (r *solicitacaoRepo) Create(ctx context.Context, sol *model.SolicitacaoAlteracao) error {
	return r.db.WithContext(ctx).Create(sol).Error
}

func (r *solicitacaoRepo) GetByID(ctx context.Context, id string) (*model.SolicitacaoAlteracao, error) {
	var sol model.SolicitacaoAlteracao
	err := r.db.WithContext(ctx).
		Preload("Solicitante").
		Preload("Colaborador").
		Preload("Aprovador").
		Where("id = ?", id).
		First(&sol).Error
	if err != nil {
		return nil, err
	}
	return &sol, nil
}

// UpdateSePendente grava a decisão apenas se a solicitação ainda estiver
// pendente. Devolve false quando outro avaliador já decidiu antes — o
// WHERE condicional é o que fecha a corrida entre dois avaliadores.
func (r *solicitacaoRepo) UpdateSePendente(ctx context.Context, sol *model.SolicitacaoAlteracao) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(sol).
		Where("id = ? AND status = ?", sol.ID, model.SolicitacaoPendente).
		Updates(map[string]interface{}{
			"status":               sol.Status,
			"escala_dia_id":        sol.EscalaDiaID,
			"aprovado_por":         sol.AprovadoPor,
			"aprovado_em":          sol.AprovadoEm,
			"comentario_aprovador": sol.ComentarioAprovador,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// aplicarFiltro monta a mesma cláusula WHERE para contagem e listagem
func aplicarFiltro(db *gorm.DB, f SolicitacaoFilter) *gorm.DB {
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.ColaboradorID != "" {
		db = db.Where("colaborador_id = ?", f.ColaboradorID)
	}
	if f.SolicitanteID != "" {
		db = db.Where("solicitante_id = ?", f.SolicitanteID)
	}
	if f.DataPrefix != "" {
		db = db.Where("data_escala LIKE ?", f.DataPrefix+"%")
	}
	return db
}

func (r *solicitacaoRepo) List(ctx context.Context, filter SolicitacaoFilter, offset, limit int) ([]*model.SolicitacaoAlteracao, int64, error) {
	var sols []*model.SolicitacaoAlteracao
	var total int64

	db := aplicarFiltro(r.db.WithContext(ctx).Model(&model.SolicitacaoAlteracao{}), filter)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Solicitante").
		Preload("Colaborador").
		Preload("Aprovador").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&sols).Error
	if err != nil {
		return nil, 0, err
	}
	return sols, total, nil
}

func (r *solicitacaoRepo) ExistsPendente(ctx context.Context, colaboradorID, dataEscala string) (bool, error) {
	var sol model.SolicitacaoAlteracao
	err := r.db.WithContext(ctx).
		Where("colaborador_id = ? AND data_escala = ? AND status = ?",
			colaboradorID, dataEscala, model.SolicitacaoPendente).
		First(&sol).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *solicitacaoRepo) CountPendentes(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.SolicitacaoAlteracao{}).
		Where("status = ?", model.SolicitacaoPendente).
		Count(&total).Error
	return total, err
}

func (r *solicitacaoRepo) DeleteByEscalaDiaIDs(ctx context.Context, diaIDs []string) error {
	for _, lote := range chunk(diaIDs, deleteBatchSize) {
		if err := r.db.WithContext(ctx).
			Where("escala_dia_id IN ?", lote).
			Delete(&model.SolicitacaoAlteracao{}).Error; err != nil {
			return err
		}
	}
	return nil
}
