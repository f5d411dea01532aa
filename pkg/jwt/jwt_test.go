package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "tortas-api-test"
)

var testIdentity = Identity{UserID: "u-1", Email: "ana@example.com", Name: "Ana", Role: "admin"}

func TestGenerateAndParse_ConservaIdentidad(t *testing.T) {
	tok, err := Generate(testSecret, testIssuer, 60, testIdentity)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, id)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := Generate(testSecret, testIssuer, -1, testIdentity)
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := Generate(testSecret, testIssuer, 60, testIdentity)
	require.NoError(t, err)

	_, err = Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestSecretVacio_RetornaError(t *testing.T) {
	_, err := Generate("", testIssuer, 60, testIdentity)
	assert.Error(t, err)
	_, err = Parse("", "x.y.z")
	assert.Error(t, err)
}
