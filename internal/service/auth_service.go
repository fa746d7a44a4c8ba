package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/dto"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/internal/repository"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/jwt"
	"github.com/Oliveir4Matheus/Sistema-gestao-escalas/pkg/redis"
)

var (
	ErrCredenciaisInvalidas = errors.New("matrícula ou senha incorreta")
	ErrUsuarioInativo       = errors.New("usuário desativado")
	ErrSenhaAtualIncorreta  = errors.New("senha atual incorreta")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
)

// AuthService autenticação e gestão da própria conta
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, jti string, expiraEm time.Time) error
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserInfo, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	cache  *redis.Client
	logger *zap.Logger
}

// NewAuthService cria o AuthService. cache pode ser nil quando o Redis
// está indisponível; nesse caso o logout degrada para no-op.
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, cache *redis.Client, logger *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		jwtMgr: jwtMgr,
		cache:  cache,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.User.GetByMatricula(ctx, req.Matricula)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciaisInvalidas
		}
		s.logger.Error("falha ao consultar usuário no login", zap.Error(err))
		return nil, err
	}

	if !user.Ativo {
		return nil, ErrUsuarioInativo
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(req.Senha)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	token, err := s.jwtMgr.GenerateToken(user.ID, user.Matricula, user.Role)
	if err != nil {
		s.logger.Error("falha ao gerar token", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: &dto.UserInfo{
			ID:             user.ID,
			Matricula:      user.Matricula,
			Nome:           user.Nome,
			Role:           user.Role,
			PrimeiroAcesso: user.PrimeiroAcesso,
		},
	}, nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiraEm time.Time) error {
	if s.cache == nil {
		s.logger.Warn("logout sem Redis, token permanece válido até expirar")
		return nil
	}
	return s.cache.BlacklistToken(ctx, jti, time.Until(expiraEm))
}

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserInfo, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNaoEncontrado
		}
		s.logger.Error("falha ao consultar usuário", zap.String("id", userID), zap.Error(err))
		return nil, err
	}
	return &dto.UserInfo{
		ID:             user.ID,
		Matricula:      user.Matricula,
		Nome:           user.Nome,
		Role:           user.Role,
		PrimeiroAcesso: user.PrimeiroAcesso,
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUsuarioNaoEncontrado
		}
		s.logger.Error("falha ao consultar usuário", zap.String("id", userID), zap.Error(err))
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(req.SenhaAtual)); err != nil {
		return ErrSenhaAtualIncorreta
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.SenhaNova), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// a troca de senha encerra o primeiro acesso
	if err := s.repo.User.UpdateSenha(ctx, userID, string(hash), false); err != nil {
		s.logger.Error("falha ao atualizar senha", zap.String("id", userID), zap.Error(err))
		return err
	}
	return nil
}
