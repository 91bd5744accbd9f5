package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

func TestGenerateEParse(t *testing.T) {
	tok, err := Generate(testSecret, "user-1", "ALUNO", "portal-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ALUNO", claims.Role)
	assert.Equal(t, "portal-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID, "todo token deve carregar um jti para a revogação")
}

func TestParse_SecretErradoFalha(t *testing.T) {
	tok, err := Generate(testSecret, "user-1", "ADM", "portal-test", 60)
	require.NoError(t, err)

	_, err = Parse("outro-segredo", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpiradoFalha(t *testing.T) {
	tok, err := Generate(testSecret, "user-1", "ALUNO", "portal-test", -1)
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVazioFalha(t *testing.T) {
	_, err := Generate("", "user-1", "ALUNO", "portal-test", 60)
	assert.Error(t, err)
}

func TestGenerate_JTIUnicoPorToken(t *testing.T) {
	a, err := Generate(testSecret, "user-1", "ALUNO", "portal-test", 60)
	require.NoError(t, err)
	b, err := Generate(testSecret, "user-1", "ALUNO", "portal-test", 60)
	require.NoError(t, err)

	ca, err := Parse(testSecret, a)
	require.NoError(t, err)
	cb, err := Parse(testSecret, b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestRemainingTTL(t *testing.T) {
	tok, err := Generate(testSecret, "user-1", "ALUNO", "portal-test", 60)
	require.NoError(t, err)
	claims, err := Parse(testSecret, tok)
	require.NoError(t, err)

	ttl := claims.RemainingTTL(time.Now())
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, 60*time.Minute)

	assert.Zero(t, claims.RemainingTTL(time.Now().Add(2*time.Hour)))
}
