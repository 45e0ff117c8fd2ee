package http_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain/filter"
	apphttp "github.com/jhoicas/comercio-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware + RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: admin accede a ruta sólo admin → 200.
func TestRequireRole_AdminAccedeUsuarios(t *testing.T) {
	api := newTestAPI(t, false)
	resp := api.do(t, http.MethodGet, "/users", api.bearer(t, adminEmail), nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.UserListResponse
	decode(t, resp, &body)
	assert.Len(t, body.Users, 2)
}

// Caso 2: guest en ruta sólo admin → 403 FORBIDDEN.
func TestRequireRole_GuestBloqueadoEnUsuarios(t *testing.T) {
	api := newTestAPI(t, false)
	resp := api.do(t, http.MethodGet, "/users", api.bearer(t, guestEmail), nil)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, apphttp.CodeForbidden, body.Code)
}

// Caso 3: sin header Authorization → 401 (distinto de 403).
func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	api := newTestAPI(t, false)
	resp := api.do(t, http.MethodGet, "/clients", "", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, apphttp.CodeUnauthorized, body.Code)
}

// Caso 4: token malformado o con otro esquema → 401.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	api := newTestAPI(t, false)
	for _, header := range []string{"Bearer token.invalido.aqui", "Basic dXNlcjpwYXNz", "Bearer"} {
		resp := api.do(t, http.MethodGet, "/clients", header, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, header)
	}
}

// Caso 5: token válido de un usuario borrado → 401.
func TestAuthMiddleware_UsuarioBorrado_Retorna401(t *testing.T) {
	api := newTestAPI(t, false)
	header := api.bearer(t, guestEmail)

	repos := api.store.Repositories()
	users, err := repos.Users.List(context.Background(), filter.New().Equals(filter.UserRole, strPtr("guest")).Build())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.NoError(t, repos.Users.Delete(context.Background(), users[0].ID))

	resp := api.do(t, http.MethodGet, "/clients", header, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests /auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthToken_FormConEmail(t *testing.T) {
	api := newTestAPI(t, false)
	resp := api.postForm(t, "/auth/token", url.Values{"username": {adminEmail}, "password": {testPassword}})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tok dto.TokenResponse
	decode(t, resp, &tok)
	assert.Equal(t, "bearer", tok.TokenType)

	// el token emitido abre las rutas protegidas
	resp = api.do(t, http.MethodGet, "/users", "Bearer "+tok.AccessToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthToken_PasswordIncorrecta(t *testing.T) {
	api := newTestAPI(t, false)
	resp := api.postForm(t, "/auth/token", url.Values{"username": {"admin"}, "password": {"otra"}})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "Incorrect email or password", body.Message)
}

func TestAuthRefresh_RequiereToken(t *testing.T) {
	api := newTestAPI(t, false)
	resp := api.do(t, http.MethodPost, "/auth/refresh_token", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = api.do(t, http.MethodPost, "/auth/refresh_token", api.bearer(t, guestEmail), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tok dto.TokenResponse
	decode(t, resp, &tok)
	assert.NotEmpty(t, tok.AccessToken)
}

func strPtr(s string) *string { return &s }
