package jwt_test

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/comercio-api/pkg/jwt"
)

const (
	testSecret  = "test-secret-key-for-unit-tests"
	testSubject = "test0@test.com"
	testIssuer  = "comercio-api-test"
)

func newService(t *testing.T, now func() time.Time) *pkgjwt.Service {
	t.Helper()
	svc, err := pkgjwt.NewService(pkgjwt.Config{Secret: testSecret, TTL: 30 * time.Minute, Issuer: testIssuer})
	require.NoError(t, err)
	if now != nil {
		svc.WithClock(now)
	}
	return svc
}

func TestNewService_SecretVacio(t *testing.T) {
	_, err := pkgjwt.NewService(pkgjwt.Config{})
	assert.Error(t, err)
}

func TestNewService_TTLPorDefecto(t *testing.T) {
	svc, err := pkgjwt.NewService(pkgjwt.Config{Secret: testSecret})
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.DefaultTTL, svc.TTL())
}

func TestService_IssueYValidate(t *testing.T) {
	svc := newService(t, nil)

	tok, err := svc.Issue(testSubject)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sub, err := svc.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, testSubject, sub)
}

func TestService_IssueSubjectVacio(t *testing.T) {
	svc := newService(t, nil)
	_, err := svc.Issue("")
	assert.Error(t, err)
}

func TestService_TokenExpirado(t *testing.T) {
	issuedAt := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	svc := newService(t, func() time.Time { return clock })

	tok, err := svc.Issue(testSubject)
	require.NoError(t, err)

	clock = issuedAt.Add(29 * time.Minute)
	_, err = svc.Validate(tok)
	require.NoError(t, err, "antes del TTL el token es válido")

	clock = issuedAt.Add(30*time.Minute + time.Second)
	_, err = svc.Validate(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken, "después del TTL el token expira sin margen")
}

func TestService_SecretIncorrecto(t *testing.T) {
	svc := newService(t, nil)
	tok, err := svc.Issue(testSubject)
	require.NoError(t, err)

	other, err := pkgjwt.NewService(pkgjwt.Config{Secret: "otro-secret-completamente-distinto"})
	require.NoError(t, err)

	_, err = other.Validate(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestService_TokenAlterado(t *testing.T) {
	svc := newService(t, nil)
	tok, err := svc.Issue(testSubject)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	// Cambiar un byte de la firma.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Validate(tampered)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestService_TokenMalFormado(t *testing.T) {
	svc := newService(t, nil)
	for _, tok := range []string{"", "token.invalido.aqui", "abc"} {
		_, err := svc.Validate(tok)
		assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken, "token %q", tok)
	}
}

func TestService_RechazaAlgoritmoNone(t *testing.T) {
	svc := newService(t, nil)
	claims := gojwt.RegisteredClaims{
		Subject:   testSubject,
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestService_RechazaTokenSinExpiracion(t *testing.T) {
	svc := newService(t, nil)
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{Subject: testSubject}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Validate(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}
