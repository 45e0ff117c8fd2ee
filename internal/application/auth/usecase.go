package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/ports"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// TokenType tipo de token devuelto al cliente.
const TokenType = "bearer"

// AuthUseCase intercambio de credenciales por token de acceso.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens}
}

// Login verifica usuario (email o username) y password y emite un token con el email como subject.
// Usuario inexistente y password incorrecta devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.lookup(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.issue(user)
}

func (uc *AuthUseCase) lookup(ctx context.Context, login string) (*entity.User, error) {
	if login == "" {
		return nil, nil
	}
	if strings.Contains(login, "@") {
		user, err := uc.users.GetByEmail(ctx, login)
		if err != nil || user != nil {
			return user, err
		}
	}
	return uc.users.GetByUsername(ctx, login)
}

// Refresh emite un token nuevo para un principal ya autenticado.
func (uc *AuthUseCase) Refresh(user *entity.User) (*dto.TokenResponse, error) {
	if user == nil {
		return nil, domain.ErrInvalidToken
	}
	return uc.issue(user)
}

func (uc *AuthUseCase) issue(user *entity.User) (*dto.TokenResponse, error) {
	token, err := uc.tokens.Issue(user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: TokenType}, nil
}
