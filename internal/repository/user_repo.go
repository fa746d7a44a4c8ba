package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/model"
)

// UserRepository acesso a dados de usuários
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByMatricula(ctx context.Context, matricula string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateSenha(ctx context.Context, id, senhaHash string, primeiroAcesso bool) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo cria a implementação GORM de UserRepository
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByMatricula(ctx context.Context, matricula string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("matricula = ?", matricula).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) UpdateSenha(ctx context.Context, id, senhaHash string, primeiroAcesso bool) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"senha_hash":      senhaHash,
			"primeiro_acesso": primeiroAcesso,
		}).Error
}
