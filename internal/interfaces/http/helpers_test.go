package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/comercio-api/internal/application/auth"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/comercio-api/internal/interfaces/http"
	"github.com/jhoicas/comercio-api/pkg/jwt"
	"github.com/jhoicas/comercio-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testPassword  = "secret"
	adminEmail    = "admin@x.com"
	guestEmail    = "guest@x.com"
)

// testAPI app completa sobre el store en memoria, con un admin y un guest ya creados.
type testAPI struct {
	app    *fiber.App
	tokens *jwt.Service
	store  *memory.Store
}

func newTestAPI(t *testing.T, strictProducts bool) *testAPI {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repositories()
	hasher := password.NewHasher(bcrypt.MinCost)
	tokens, err := jwt.NewService(jwt.Config{Secret: testJWTSecret, TTL: 30 * time.Minute, Issuer: "test"})
	require.NoError(t, err)

	for _, u := range []struct{ username, email, role string }{
		{"admin", adminEmail, entity.RoleAdmin},
		{"guest", guestEmail, entity.RoleGuest},
	} {
		hash, err := hasher.Hash(testPassword)
		require.NoError(t, err)
		require.NoError(t, repos.Users.Create(context.Background(), &entity.User{
			Username: u.username, Email: u.email, PasswordHash: hash, Role: u.role,
		}))
	}

	app := apphttp.NewApp("comercio-api-test", apphttp.RouterDeps{
		UserUC:    usecase.NewUserUseCase(repos.Users, hasher),
		ClientUC:  usecase.NewClientUseCase(repos.Clients),
		ProductUC: usecase.NewProductUseCase(repos.Products),
		OrderUC:   usecase.NewOrderUseCase(memory.NewTxRunner(store), repos.Orders, strictProducts),
		AuthUC:    auth.NewAuthUseCase(repos.Users, hasher, tokens),
		Guard:     auth.NewGuard(tokens, repos.Users, nil),
		Metrics:   apphttp.NewMetrics(),
	})
	return &testAPI{app: app, tokens: tokens, store: store}
}

// bearer genera el header Authorization para el usuario con ese email.
func (a *testAPI) bearer(t *testing.T, email string) string {
	t.Helper()
	tok, err := a.tokens.Issue(email)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// do lanza una petición con body JSON opcional y devuelve la respuesta.
func (a *testAPI) do(t *testing.T, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// postForm envía un form urlencoded.
func (a *testAPI) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode lee el body JSON de resp en out y cierra el body.
func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}
