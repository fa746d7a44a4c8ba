package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"
)

// tamanho dos lotes de exclusão em massa, evita listas IN gigantes
const deleteBatchSize = 50

// EscalaRepository acesso a dados de escalas mensais
type EscalaRepository interface {
	GetByColaboradorMesAno(ctx context.Context, colaboradorID string, mes, ano int) (*model.Escala, error)
	Upsert(ctx context.Context, escala *model.Escala) error
	ListMes(ctx context.Context, mes, ano int, busca, responsavel, departamento string, offset, limit int) ([]*model.Escala, int64, error)
	ListIDsByMesAno(ctx context.Context, mes, ano int) ([]string, error)
	DeleteByIDs(ctx context.Context, ids []string) error
	CountByMesAno(ctx context.Context, mes, ano int) (int64, error)
}

// EscalaDiaRepository acesso a dados dos dias de escala
type EscalaDiaRepository interface {
	GetByEscalaDia(ctx context.Context, escalaID string, dia int) (*model.EscalaDia, error)
	GetByID(ctx context.Context, id string) (*model.EscalaDia, error)
	Upsert(ctx context.Context, dia *model.EscalaDia) error
	BatchUpsert(ctx context.Context, dias []model.EscalaDia) error
	ListByEscalaIDs(ctx context.Context, escalaIDs []string) ([]string, error)
	DeleteByEscalaIDs(ctx context.Context, escalaIDs []string) error
}

// ── Escala ──

type escalaRepo struct {
	db *gorm.DB
}

// NewEscalaRepo cria a implementação GORM de EscalaRepository
func NewEscalaRepo(db *gorm.DB) EscalaRepository {
	return &escalaRepo{db: db}
}

func (r *escalaRepo) GetByColaboradorMesAno(ctx context.Context, colaboradorID string, mes, ano int) (*model.Escala, error) {
	var escala model.Escala
	err := r.db.WithContext(ctx).
		Where("colaborador_id = ? AND mes = ? AND ano = ?", colaboradorID, mes, ano).
		First(&escala).Error
	if err != nil {
		return nil, err
	}
	return &escala, nil
}

func (r *escalaRepo) Upsert(ctx context.Context, escala *model.Escala) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "colaborador_id"}, {Name: "mes"}, {Name: "ano"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}, clause.Returning{}).
		Create(escala).Error
}

func (r *escalaRepo) ListMes(ctx context.Context, mes, ano int, busca, responsavel, departamento string, offset, limit int) ([]*model.Escala, int64, error) {
	var escalas []*model.Escala
	var total int64

	db := r.db.WithContext(ctx).
		Model(&model.Escala{}).
		Joins("JOIN colaboradores c ON c.id = escalas.colaborador_id").
		Where("escalas.mes = ? AND escalas.ano = ?", mes, ano)

	if busca != "" {
		like := "%" + busca + "%"
		db = db.Where("c.nome ILIKE ? OR c.matricula ILIKE ?", like, like)
	}
	if responsavel != "" {
		db = db.Where("c.responsavel = ?", responsavel)
	}
	if departamento != "" {
		db = db.Where("c.departamento = ?", departamento)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Colaborador").
		Preload("Dias", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("dia ASC")
		}).
		Order("c.nome ASC").
		Offset(offset).Limit(limit).
		Find(&escalas).Error
	if err != nil {
		return nil, 0, err
	}
	return escalas, total, nil
}

func (r *escalaRepo) ListIDsByMesAno(ctx context.Context, mes, ano int) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Escala{}).
		Where("mes = ? AND ano = ?", mes, ano).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *escalaRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	for _, lote := range chunk(ids, deleteBatchSize) {
		if err := r.db.WithContext(ctx).
			Where("id IN ?", lote).
			Delete(&model.Escala{}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *escalaRepo) CountByMesAno(ctx context.Context, mes, ano int) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Escala{}).
		Where("mes = ? AND ano = ?", mes, ano).
		Count(&total).Error
	return total, err
}

// ── EscalaDia ──

type escalaDiaRepo struct {
	db *gorm.DB
}

// NewEscalaDiaRepo cria a implementação GORM de EscalaDiaRepository
func NewEscalaDiaRepo(db *gorm.DB) EscalaDiaRepository {
	return &escalaDiaRepo{db: db}
}

func (r *escalaDiaRepo) GetByEscalaDia(ctx context.Context, escalaID string, dia int) (*model.EscalaDia, error) {
	var d model.EscalaDia
	err := r.db.WithContext(ctx).
		Where("escala_id = ? AND dia = ?", escalaID, dia).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *escalaDiaRepo) GetByID(ctx context.Context, id string) (*model.EscalaDia, error) {
	var d model.EscalaDia
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *escalaDiaRepo) Upsert(ctx context.Context, dia *model.EscalaDia) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "escala_id"}, {Name: "dia"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "horario", "alterado", "alterado_por", "alterado_em", "updated_at",
			}),
		}, clause.Returning{}).
		Create(dia).Error
}

func (r *escalaDiaRepo) BatchUpsert(ctx context.Context, dias []model.EscalaDia) error {
	if len(dias) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "escala_id"}, {Name: "dia"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "horario", "alterado", "alterado_por", "alterado_em", "updated_at",
			}),
		}).
		Create(&dias).Error
}

func (r *escalaDiaRepo) ListByEscalaIDs(ctx context.Context, escalaIDs []string) ([]string, error) {
	var ids []string
	for _, lote := range chunk(escalaIDs, deleteBatchSize) {
		var parcial []string
		if err := r.db.WithContext(ctx).
			Model(&model.EscalaDia{}).
			Where("escala_id IN ?", lote).
			Pluck("id", &parcial).Error; err != nil {
			return nil, err
		}
		ids = append(ids, parcial...)
	}
	return ids, nil
}

func (r *escalaDiaRepo) DeleteByEscalaIDs(ctx context.Context, escalaIDs []string) error {
	for _, lote := range chunk(escalaIDs, deleteBatchSize) {
		if err := r.db.WithContext(ctx).
			Where("escala_id IN ?", lote).
			Delete(&model.EscalaDia{}).Error; err != nil {
			return err
		}
	}
	return nil
}

// chunk fatia ids em lotes de até n elementos
func chunk(ids []string, n int) [][]string {
	if len(ids) == 0 {
		return nil
	}
	var lotes [][]string
	for i := 0; i < len(ids); i += n {
		fim := i + n
		if fim > len(ids) {
			fim = len(ids)
		}
		lotes = append(lotes, ids[i:fim])
	}
	return lotes
}
