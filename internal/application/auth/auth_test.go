package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/comercio-api/internal/application/auth"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/jhoicas/comercio-api/internal/infrastructure/memory"
	"github.com/jhoicas/comercio-api/pkg/jwt"
	"github.com/jhoicas/comercio-api/pkg/password"
)

type env struct {
	users  repository.UserRepository
	tokens *jwt.Service
	guard  *auth.Guard
	login  *auth.AuthUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	hasher := password.NewHasher(bcrypt.MinCost)
	tokens, err := jwt.NewService(jwt.Config{Secret: "test-secret", TTL: 30 * time.Minute, Issuer: "test"})
	require.NoError(t, err)

	users := memory.NewStore().Repositories().Users
	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &entity.User{
		Username: "alice", Email: "alice@x.com", PasswordHash: hash, Role: entity.RoleGuest,
	}))

	return &env{
		users:  users,
		tokens: tokens,
		guard:  auth.NewGuard(tokens, users, nil),
		login:  auth.NewAuthUseCase(users, hasher, tokens),
	}
}

func TestLogin_PorEmailOUsername(t *testing.T) {
	e := newEnv(t)
	for _, login := range []string{"alice@x.com", "alice"} {
		out, err := e.login.Login(context.Background(), dto.LoginRequest{Username: login, Password: "secret"})
		require.NoError(t, err, login)
		assert.Equal(t, "bearer", out.TokenType)

		subject, err := e.tokens.Validate(out.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "alice@x.com", subject, "el subject es el email")
	}
}

func TestLogin_CredencialesIncorrectas(t *testing.T) {
	e := newEnv(t)
	_, err := e.login.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = e.login.Login(context.Background(), dto.LoginRequest{Username: "nadie@x.com", Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestGuard_Authenticate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	token, err := e.tokens.Issue("alice@x.com")
	require.NoError(t, err)

	user, err := e.guard.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = e.guard.Authenticate(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = e.guard.Authenticate(ctx, "no.es.jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	ghost, err := e.tokens.Issue("borrado@x.com")
	require.NoError(t, err)
	_, err = e.guard.Authenticate(ctx, ghost)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "usuario inexistente es 401, no 404")
}

func TestGuard_TokenExpirado(t *testing.T) {
	e := newEnv(t)
	issuedAt := time.Now().Add(-31 * time.Minute)
	old, err := jwt.NewService(jwt.Config{Secret: "test-secret", TTL: 30 * time.Minute, Issuer: "test"})
	require.NoError(t, err)
	token, err := old.WithClock(func() time.Time { return issuedAt }).Issue("alice@x.com")
	require.NoError(t, err)

	_, err = e.guard.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGuard_RequireRole(t *testing.T) {
	e := newEnv(t)
	admin := &entity.User{Role: entity.RoleAdmin}

	assert.NoError(t, e.guard.RequireRole(admin, entity.RoleAdmin))
	assert.NoError(t, e.guard.RequireRole(admin, entity.RoleGuest, entity.RoleAdmin))
	assert.ErrorIs(t, e.guard.RequireRole(admin, entity.RoleGuest), domain.ErrForbidden)
	assert.ErrorIs(t, e.guard.RequireRole(admin), domain.ErrForbidden, "conjunto vacío deniega")
	assert.ErrorIs(t, e.guard.RequireRole(nil, entity.RoleAdmin), domain.ErrUnauthorized)
}

func TestRefresh_EmiteTokenNuevo(t *testing.T) {
	e := newEnv(t)
	out, err := e.login.Refresh(&entity.User{Email: "alice@x.com"})
	require.NoError(t, err)
	subject, err := e.tokens.Validate(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", subject)

	_, err = e.login.Refresh(nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
