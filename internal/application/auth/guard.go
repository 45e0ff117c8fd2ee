package auth

import (
	"context"
	"slices"

	"github.com/jhoicas/comercio-api/internal/application/ports"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

// Guard resuelve el principal de un token y verifica roles.
// Cualquier fallo del token o del store sale como domain.ErrInvalidToken (401).
type Guard struct {
	tokens ports.TokenService
	users  repository.UserRepository
	log    *logger.Logger
}

// NewGuard construye el guard. log puede ser nil.
func NewGuard(tokens ports.TokenService, users repository.UserRepository, log *logger.Logger) *Guard {
	if log == nil {
		log = logger.Nop()
	}
	return &Guard{tokens: tokens, users: users, log: log.Component("auth")}
}

// Authenticate valida el token y carga el usuario cuyo email es el subject.
func (g *Guard) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}
	subject, err := g.tokens.Validate(token)
	if err != nil {
		g.log.Debug().Err(err).Msg("token rechazado")
		return nil, domain.ErrInvalidToken
	}
	user, err := g.users.GetByEmail(ctx, subject)
	if err != nil {
		g.log.Error().Err(err).Msg("lookup del principal")
		return nil, domain.ErrInvalidToken
	}
	if user == nil {
		// usuario borrado después de emitir el token
		return nil, domain.ErrInvalidToken
	}
	return user, nil
}

// RequireRole exige que user tenga uno de roles. Un conjunto vacío deniega a todos.
func (g *Guard) RequireRole(user *entity.User, roles ...string) error {
	if user == nil {
		return domain.ErrInvalidToken
	}
	if !slices.Contains(roles, user.Role) {
		return domain.ErrNotEnoughRights
	}
	return nil
}
