package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"
)

// NotificacaoRepository acesso a dados de notificações
type NotificacaoRepository interface {
	Create(ctx context.Context, n *model.Notificacao) error
	GetByID(ctx context.Context, id string) (*model.Notificacao, error)
	ListByUsuario(ctx context.Context, usuarioID string, apenasNaoLidas bool, offset, limit int) ([]*model.Notificacao, int64, error)
	CountNaoLidas(ctx context.Context, usuarioID string) (int64, error)
	MarcarLida(ctx context.Context, id string) error
}

type notificacaoRepo struct {
	db *gorm.DB
}

// NewNotificacaoRepo cria a implementação GORM de NotificacaoRepository
func NewNotificacaoRepo(db *gorm.DB) NotificacaoRepository {
	return &notificacaoRepo{db: db}
}

func (r *notificacaoRepo) Create(ctx context.Context, n *model.Notificacao) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificacaoRepo) GetByID(ctx context.Context, id string) (*model.Notificacao, error) {
	var n model.Notificacao
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificacaoRepo) ListByUsuario(ctx context.Context, usuarioID string, apenasNaoLidas bool, offset, limit int) ([]*model.Notificacao, int64, error) {
	var itens []*model.Notificacao
	var total int64

	db := r.db.WithContext(ctx).
		Model(&model.Notificacao{}).
		Where("usuario_id = ?", usuarioID)
	if apenasNaoLidas {
		db = db.Where("lida = ?", false)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&itens).Error
	if err != nil {
		return nil, 0, err
	}
	return itens, total, nil
}

func (r *notificacaoRepo) CountNaoLidas(ctx context.Context, usuarioID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Notificacao{}).
		Where("usuario_id = ? AND lida = ?", usuarioID, false).
		Count(&total).Error
	return total, err
}

func (r *notificacaoRepo) MarcarLida(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.Notificacao{}).
		Where("id = ?", id).
		Update("lida", true).Error
}
