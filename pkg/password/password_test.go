package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/comercio-api/pkg/password"
)

func TestHasher_HashYVerify(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	for _, plain := range []string{"testtest", "", "contraseña-ñ", "a very long passphrase with spaces"} {
		digest, err := h.Hash(plain)
		require.NoError(t, err)
		assert.NotEqual(t, plain, digest, "el digest nunca es el texto plano")
		assert.True(t, h.Verify(plain, digest), "verify(p, hash(p)) debe ser true para %q", plain)
	}
}

func TestHasher_SalAleatoria(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	a, err := h.Hash("secret")
	require.NoError(t, err)
	b, err := h.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "dos hashes de la misma entrada deben diferir")
	assert.True(t, h.Verify("secret", a))
	assert.True(t, h.Verify("secret", b))
}

func TestHasher_ContraseñaDistintaNoVerifica(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("p1")
	require.NoError(t, err)
	assert.False(t, h.Verify("p2", digest))
}

func TestHasher_DigestMalFormado(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	assert.NotPanics(t, func() {
		assert.False(t, h.Verify("secret", "no-es-un-hash"))
		assert.False(t, h.Verify("secret", ""))
	})
}

func TestNewHasher_CostoInvalidoUsaDefault(t *testing.T) {
	h := password.NewHasher(0)
	digest, err := h.Hash("x")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
